// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// indexer.go — ScaleIndexer construction and read-only queries.

package scale

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// ScaleIndexer numbers every admissible scale path of order 1..maxOrder.
// It is built once by NewScaleIndexer and never mutated afterwards.
type ScaleIndexer struct {
	octaveCount int
	densities   []int
	maxOrder    int

	paths   [][]Path // paths[r-1]: order-r table, lexicographic
	indices [][]int  // indices[r-1]: index of paths[r-1][i]
	lowPass [][]bool // lowPass[r-1][i]: paths[r-1][i] ends with JQ(r)

	coding   map[string]int // pathKey → index
	decoding []Path         // index → path; decoding[0] is ()
}

// NewScaleIndexer enumerates and numbers the scale paths of a filter bank with
// octaveCount octaves, densities[k-1] wavelets per octave at order k, and
// orders 1..maxOrder.
//
// Steps, in dependency order:
//  1. validate the configuration           (ErrConfiguration)
//  2. enumerate admissible paths per order (ErrConfiguration/ErrPathLimit)
//  3. build coding/decoding maps
//  4. build per-order index tables
//  5. compute per-order low-pass masks
//  6. run the self-checks                  (ErrConsistency)
//
// densities is copied; later changes by the caller have no effect.
func NewScaleIndexer(octaveCount int, densities []int, maxOrder int, opts ...Option) (*ScaleIndexer, error) {
	o := gatherOptions(opts...)

	// 1. Validate, then own a private copy of densities.
	if err := validateConfig(octaveCount, densities, maxOrder); err != nil {
		return nil, err
	}
	densities = slices.Clone(densities)

	// 2. Enumerate.
	tables, err := createScalePaths(octaveCount, densities, maxOrder, o.pathLimit)
	if err != nil {
		return nil, err
	}
	for r, t := range tables {
		o.logger.Debug("enumerated scale paths", "order", r+1, "jq", waveletCount(octaveCount, densities, r+1), "paths", len(t))
	}

	// 3-4. Number the paths and derive per-order index tables.
	coding, decoding := buildCoding(tables)
	indices, err := createScaleIndices(tables, coding)
	if err != nil {
		return nil, err
	}

	sc := &ScaleIndexer{
		octaveCount: octaveCount,
		densities:   densities,
		maxOrder:    maxOrder,
		paths:       tables,
		indices:     indices,
		lowPass:     computeLowPassMask(octaveCount, densities, tables), // 5.
		coding:      coding,
		decoding:    decoding,
	}
	// 6. Self-checks; any failure is ErrConsistency.
	if err = sc.selfCheck(o.collapse, o.logger); err != nil {
		return nil, err
	}
	return sc, nil
}

// selfCheck runs every construction-time check; the first failure wins.
func (sc *ScaleIndexer) selfCheck(mode CollapseMode, logger *log.Logger) error {
	if err := checkBijection(sc.coding, sc.decoding); err != nil {
		return err
	}
	if err := checkOrdering(sc.decoding); err != nil {
		return err
	}
	if err := checkIndexTables(sc.paths, sc.indices); err != nil {
		return err
	}
	orders := collapseOrders(sc.densities, sc.maxOrder, mode)
	for _, r := range orders {
		if err := checkCollapse(sc.paths, sc.lowPass, r); err != nil {
			return err
		}
	}
	logger.Debug("scale indexer self-check passed", "paths", len(sc.decoding), "collapse_orders", orders)
	return nil
}

// OctaveCount returns J.
func (sc *ScaleIndexer) OctaveCount() int { return sc.octaveCount }

// Densities returns a copy of the wavelets-per-octave sequence.
func (sc *ScaleIndexer) Densities() []int { return slices.Clone(sc.densities) }

// MaxOrder returns the highest enumerated scattering order.
func (sc *ScaleIndexer) MaxOrder() int { return sc.maxOrder }

// PathCount returns the number of indices, the empty path included.
func (sc *ScaleIndexer) PathCount() int { return len(sc.decoding) }

// WaveletCount returns JQ(order) = J·Q_order, the low-pass coordinate at order.
func (sc *ScaleIndexer) WaveletCount(order int) (int, error) {
	if err := sc.checkOrder(order); err != nil {
		return 0, err
	}
	return waveletCount(sc.octaveCount, sc.densities, order), nil
}

// IsAdmissible reports whether p is one of the enumerated paths: order at
// most maxOrder, coordinates within 0..JQ(k), and strictly coarsening
// octaves between neighbors. The empty path is admissible.
func (sc *ScaleIndexer) IsAdmissible(p Path) bool {
	if len(p) > sc.maxOrder {
		return false
	}
	// Range per coordinate, then the pair rule against its predecessor.
	for k, j := range p {
		if j < 0 || j > waveletCount(sc.octaveCount, sc.densities, k+1) {
			return false
		}
		if k > 0 && !admissiblePair(sc.densities, k, p[k-1], j) {
			return false
		}
	}
	return true
}

// PathToIndex returns the index of path. The input may be a padded Row:
// it is truncated at its first Unused slot before lookup.
// Unknown paths, including rows with a coordinate after an Unused slot,
// fail with ErrKeyNotFound.
func (sc *ScaleIndexer) PathToIndex(path []int) (int, error) {
	// Strip Unused padding; a real coordinate after padding is malformed.
	p, ok := Row(path).Path()
	if !ok {
		return 0, notFoundf(methodPathToIndex, "malformed row %v", path)
	}
	// Negative coordinates would collide with Unused in a Row; never valid.
	if slices.ContainsFunc(p, func(j int) bool { return j < 0 }) {
		return 0, notFoundf(methodPathToIndex, "path %v", p)
	}
	idx, found := sc.coding[pathKey(p)]
	if !found {
		return 0, notFoundf(methodPathToIndex, "path %v", p)
	}
	return idx, nil
}

// IndexToPath returns a copy of the path numbered idx.
// NoIndex (-1) yields the empty path. Other unassigned indices fail with
// ErrKeyNotFound.
func (sc *ScaleIndexer) IndexToPath(idx int) (Path, error) {
	p, err := sc.decode(methodIndexToPath, idx)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// IndexToRow is IndexToPath padded with Unused to width maxOrder, for
// fixed-width tables.
func (sc *ScaleIndexer) IndexToRow(idx int) (Row, error) {
	p, err := sc.decode(methodIndexToRow, idx)
	if err != nil {
		return nil, err
	}
	return p.Row(sc.maxOrder), nil
}

// R returns the scattering order of the path numbered idx (0 for the empty
// path and for NoIndex).
func (sc *ScaleIndexer) R(idx int) (int, error) {
	p, err := sc.decode(methodR, idx)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// IsLowPass reports whether the path numbered idx ends with the low-pass
// coordinate JQ(r), r its order. The empty path has no last coordinate:
// idx 0 and NoIndex fail with ErrEmptyPath.
func (sc *ScaleIndexer) IsLowPass(idx int) (bool, error) {
	p, err := sc.decode(methodIsLowPass, idx)
	if err != nil {
		return false, err
	}
	if len(p) == 0 {
		return false, fmt.Errorf("%s: %w: index %d", methodIsLowPass, ErrEmptyPath, idx)
	}
	return p[len(p)-1] == waveletCount(sc.octaveCount, sc.densities, len(p)), nil
}

// AllPaths lists every path in index order, the empty path first.
func (sc *ScaleIndexer) AllPaths() []Path {
	out := make([]Path, len(sc.decoding))
	for i, p := range sc.decoding {
		out[i] = p.Clone()
	}
	return out
}

// AllIndices lists every assigned index in ascending order: 0..PathCount()-1.
func (sc *ScaleIndexer) AllIndices() []int {
	out := make([]int, len(sc.decoding))
	for i := range out {
		out[i] = i
	}
	return out
}

// Rows returns the full path table in index order as fixed-width rows.
func (sc *ScaleIndexer) Rows() []Row {
	out := make([]Row, len(sc.decoding))
	for i, p := range sc.decoding {
		out[i] = p.Row(sc.maxOrder)
	}
	return out
}

// Paths returns a copy of the order-r path table.
func (sc *ScaleIndexer) Paths(order int) ([]Path, error) {
	if err := sc.checkOrder(order); err != nil {
		return nil, err
	}
	out := make([]Path, len(sc.paths[order-1]))
	for i, p := range sc.paths[order-1] {
		out[i] = p.Clone()
	}
	return out, nil
}

// Indices returns a copy of the order-r index table, aligned with Paths(order).
func (sc *ScaleIndexer) Indices(order int) ([]int, error) {
	if err := sc.checkOrder(order); err != nil {
		return nil, err
	}
	return slices.Clone(sc.indices[order-1]), nil
}

// LowPassMask returns a copy of the order-r low-pass mask, aligned with
// Paths(order).
func (sc *ScaleIndexer) LowPassMask(order int) ([]bool, error) {
	if err := sc.checkOrder(order); err != nil {
		return nil, err
	}
	return slices.Clone(sc.lowPass[order-1]), nil
}

// OrderRange returns the contiguous index range [first, last] of order r.
// Order 0 is [0, 0]. An order with no admissible path yields count 0 and
// first = last+1.
func (sc *ScaleIndexer) OrderRange(order int) (first, last int, err error) {
	if order == 0 {
		return 0, 0, nil
	}
	if err = sc.checkOrder(order); err != nil {
		return 0, 0, err
	}
	// Orders are numbered back to back after index 0.
	first = 1
	for o := 0; o < order-1; o++ {
		first += len(sc.paths[o])
	}
	return first, first + len(sc.paths[order-1]) - 1, nil
}

// decode resolves idx to the stored path, without copying.
func (sc *ScaleIndexer) decode(method string, idx int) (Path, error) {
	// NoIndex stands for the empty path, same as index 0.
	if idx == NoIndex {
		return Path{}, nil
	}
	if idx < 0 || idx >= len(sc.decoding) {
		return nil, notFoundf(method, "index %d", idx)
	}
	return sc.decoding[idx], nil
}

// checkOrder validates a 1-based order for the per-order accessors.
func (sc *ScaleIndexer) checkOrder(order int) error {
	if order < 1 || order > sc.maxOrder {
		return fmt.Errorf("%s: %w: %d not in 1..%d", methodOrder, ErrOrderRange, order, sc.maxOrder)
	}
	return nil
}
