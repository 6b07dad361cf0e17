// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// checks.go — construction-time self-checks.
//
// NewScaleIndexer returns an indexer only if all of the following hold:
//
//	bijection  — coding and decoding are inverse maps over 0..P.
//	ordering   — sorting all paths by ComparePaths reproduces index order,
//	             with no duplicates.
//	tables     — per-order index tables are the consecutive index ranges of
//	             their path tables.
//	collapse   — (all densities = 1) dropping the last coordinate of the
//	             order-r paths and deduplicating gives exactly the order r-1
//	             paths that do not end with the low-pass filter.

package scale

import (
	"slices"

	"github.com/samber/lo"
)

// checkBijection verifies decoding[coding[k]] round-trips for every entry.
func checkBijection(coding map[string]int, decoding []Path) error {
	// Sizes first: a collision in pathKey would shrink the map.
	if len(coding) != len(decoding) {
		return consistencyErrorf("bijection", "%d keys for %d indices", len(coding), len(decoding))
	}
	// Index → path → index must be the identity.
	for i, p := range decoding {
		if got, ok := coding[pathKey(p)]; !ok || got != i {
			return consistencyErrorf("bijection", "index %d decodes to %v which codes to %d", i, p, got)
		}
	}
	return nil
}

// checkOrdering verifies the order-then-lexicographic numbering exhaustively.
func checkOrdering(decoding []Path) error {
	// Reference order: an independent sort of the same paths.
	sorted := slices.Clone(decoding)
	slices.SortStableFunc(sorted, ComparePaths)
	for i := range decoding {
		if !sorted[i].Equal(decoding[i]) {
			return consistencyErrorf("ordering", "index %d holds %v, sorted order expects %v", i, decoding[i], sorted[i])
		}
		// Strict increase also rules out duplicates.
		if i > 0 && ComparePaths(decoding[i-1], decoding[i]) >= 0 {
			return consistencyErrorf("ordering", "indices %d and %d are not strictly increasing", i-1, i)
		}
	}
	return nil
}

// checkIndexTables verifies each order's indices continue where the
// previous order stopped, in path-table order.
func checkIndexTables(tables [][]Path, indices [][]int) error {
	// Index 0 is the empty path; order 1 starts at 1.
	next := 1
	for o := range tables {
		if len(indices[o]) != len(tables[o]) {
			return consistencyErrorf("tables", "order %d has %d paths but %d indices", o+1, len(tables[o]), len(indices[o]))
		}
		for i, idx := range indices[o] {
			if idx != next {
				return consistencyErrorf("tables", "order %d position %d has index %d, want %d", o+1, i, idx, next)
			}
			next++
		}
	}
	return nil
}

// collapseOrders returns the orders r for which the collapse check runs.
func collapseOrders(densities []int, maxOrder int, mode CollapseMode) []int {
	if !lo.EveryBy(densities[:maxOrder], func(q int) bool { return q == 1 }) {
		return nil
	}
	top := maxOrder
	if mode == CollapseSecondOrder {
		top = min(2, maxOrder)
	}
	var orders []int
	for r := 2; r <= top; r++ {
		orders = append(orders, r)
	}
	return orders
}

// checkCollapse verifies, for order r, that the deduplicated (r-1)-prefixes
// of the order-r table equal the non-low-pass order r-1 table.
func checkCollapse(tables [][]Path, masks [][]bool, r int) error {
	// Drop the last coordinate, keep the first occurrence of each prefix.
	prefixes := lo.Map(tables[r-1], func(p Path, _ int) Path { return p[:r-1] })
	collapsed := lo.UniqBy(prefixes, func(p Path) string { return pathKey(p) })

	// Low-pass paths have no admissible successor.
	previous := lo.Filter(tables[r-2], func(_ Path, i int) bool { return !masks[r-2][i] })

	if !slices.EqualFunc(collapsed, previous, Path.Equal) {
		return consistencyErrorf("collapse", "order %d collapses to %d paths, order %d has %d non-low-pass paths",
			r, len(collapsed), r-1, len(previous))
	}
	return nil
}
