// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// coding.go — the path ↔ index bijection.
//
// Numbering:
//
//	()                                    → 0
//	order-1 table, in table order         → 1, 2, …
//	order-2 table, in table order         → next consecutive integers
//	…                                     up to maxOrder
//
// The forward map is keyed by pathKey; the inverse is a dense slice since
// indices are exactly 0..P.

package scale

// buildCoding assigns consecutive indices to the empty path and then to every
// table entry, order by order.
func buildCoding(tables [][]Path) (coding map[string]int, decoding []Path) {
	// Size both maps once: the empty path plus every table entry.
	total := 1
	for _, t := range tables {
		total += len(t)
	}

	coding = make(map[string]int, total)
	decoding = make([]Path, 0, total)

	// () owns index 0; tables follow in order.
	coding[pathKey(nil)] = 0
	decoding = append(decoding, Path{})
	for _, t := range tables {
		for _, p := range t {
			coding[pathKey(p)] = len(decoding)
			decoding = append(decoding, p)
		}
	}
	return coding, decoding
}

// createScaleIndices maps every per-order path table through coding.
// A missing key is a consistency failure: the tables and the coding map were
// built from the same data and must agree.
func createScaleIndices(tables [][]Path, coding map[string]int) ([][]int, error) {
	indices := make([][]int, len(tables))
	for o, t := range tables {
		row := make([]int, len(t))
		for i, p := range t {
			idx, ok := coding[pathKey(p)]
			if !ok {
				return nil, consistencyErrorf("index tables", "path %v of order %d has no index", p, o+1)
			}
			row[i] = idx
		}
		indices[o] = row
	}
	return indices, nil
}
