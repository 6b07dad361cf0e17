// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// enumerate.go — admissibility and per-order path enumeration.
//
// Algorithm (createScalePaths):
//  1. Order 1 is the range 0..JQ(1), the low-pass value JQ(1) included.
//  2. Order r extends every order r-1 path p, in table order, with each
//     j in 0..JQ(r) such that (p[r-2], j) is an admissible pair.
//
// Admissibility only constrains adjacent pairs, so a path is admissible iff
// its prefix is admissible and its last pair is. Step 2 therefore yields
// exactly the admissible subset of range(JQ(1)+1) × … × range(JQ(r)+1), and
// since the prefixes arrive in lexicographic order and j ascends within a
// prefix, the output is in the same product order.
//
// For a fixed last coordinate i at order k the admissible successors form
// one contiguous run: j/Q_{k+1} > i/Q_k holds exactly for
// j >= (i/Q_k + 1)·Q_{k+1}. Step 2 starts there, so the work is O(P·r)
// and never scans inadmissible candidates.
//
// Complexity: O(P·r) time and memory, P = total number of admissible paths.

package scale

// waveletCount returns JQ(order) = J·Q_order for a 1-based order.
// The value itself is the low-pass coordinate at that order.
// validateConfig guarantees the product (and product+1) fits in an int.
func waveletCount(octaveCount int, densities []int, order int) int {
	return octaveCount * densities[order-1]
}

// admissiblePair reports whether coordinate i at order k (1-based) may be
// followed by coordinate j at order k+1: i/Q_k < j/Q_{k+1}.
func admissiblePair(densities []int, k, i, j int) bool {
	return i/densities[k-1] < j/densities[k]
}

// firstSuccessor returns the smallest coordinate j at order k+1 admissible
// after coordinate i at order k, and false when none exists within 0..J·Q_{k+1}.
func firstSuccessor(octaveCount int, densities []int, k, i int) (int, bool) {
	// Octave of j must exceed the octave of i.
	octave := i/densities[k-1] + 1
	// j/Q_{k+1} <= J for every j <= JQ(k+1); a higher octave is unreachable.
	if octave > octaveCount {
		return 0, false
	}
	// octave <= J, so octave·Q_{k+1} <= JQ(k+1) cannot overflow.
	return octave * densities[k], true
}

// createScalePaths returns one lexicographically ordered table per order
// 1..maxOrder. It fails with ErrPathLimit once more than limit paths exist.
func createScalePaths(octaveCount int, densities []int, maxOrder, limit int) ([][]Path, error) {
	tables := make([][]Path, maxOrder)
	total := 0

	// Order 1: size is known up front, so check the limit before allocating.
	jq1 := waveletCount(octaveCount, densities, 1)
	if jq1+1 > limit {
		return nil, configErrorf(methodNew, ErrPathLimit, "%d paths at order 1 exceed %d", jq1+1, limit)
	}
	first := make([]Path, 0, jq1+1)
	for j := 0; j <= jq1; j++ {
		first = append(first, Path{j})
	}
	total += len(first)
	tables[0] = first

	// Orders 2..maxOrder: extend each prefix by its admissible run.
	for r := 2; r <= maxOrder; r++ {
		jq := waveletCount(octaveCount, densities, r)
		var table []Path
		for _, prefix := range tables[r-2] {
			// Skip prefixes with no admissible continuation (low-pass ends, top octave).
			start, ok := firstSuccessor(octaveCount, densities, r-1, prefix[r-2])
			if !ok {
				continue
			}
			for j := start; j <= jq; j++ {
				// Count before allocating so the limit bounds memory.
				total++
				if total > limit {
					return nil, configErrorf(methodNew, ErrPathLimit, "more than %d paths at order %d", limit, r)
				}
				p := make(Path, r)
				copy(p, prefix)
				p[r-1] = j
				table = append(table, p)
			}
		}
		tables[r-1] = table
	}

	return tables, nil
}
