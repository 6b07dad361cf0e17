// SPDX-License-Identifier: MIT

// Package scale enumerates the admissible scale paths of a multi-order
// wavelet scattering transform and numbers them with stable integer indices.
//
// 🚀 What is a scale path?
//
//	A scale path (j1, j2, …, jr) records which wavelet was applied at each
//	of the r cascaded layers of a scattering network. At order k the values
//	0..JQ(k)-1 select a proper wavelet and the value JQ(k) = J·Q_k selects
//	the low-pass filter. A path is admissible when every layer works at a
//	strictly coarser octave than the previous one:
//
//	  j_k / Q_k < j_{k+1} / Q_{k+1}   (integer division)
//
// ✨ What the ScaleIndexer gives you:
//   - every admissible path of order 1..maxOrder, enumerated once
//   - a bijection path ↔ index, with () ↔ 0
//   - order-then-lexicographic numbering, so each order owns a contiguous
//     index range that tensor code can slice directly
//   - per-order path tables, index tables and low-pass masks
//   - a self-check run at construction (ordering + collapse), so a broken
//     enumeration never yields a usable indexer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scatspectra/scale"
//
//	sc, err := scale.NewScaleIndexer(4, []int{1, 1}, 2)
//	if err != nil {
//	  // errors.Is(err, scale.ErrConfiguration) or scale.ErrConsistency
//	}
//	idx, err := sc.PathToIndex(scale.Path{1, 3})
//	path, _ := sc.IndexToPath(idx)
//	low, _ := sc.IsLowPass(idx)
//
// Two path representations:
//
//	Path — variable length, exactly the real coordinates.
//	Row  — fixed width maxOrder, trailing slots set to Unused (-1).
//	       Convert with Path.Row(width) and Row.Path().
//
// Concurrency:
//
//	A ScaleIndexer is immutable after NewScaleIndexer returns. All query
//	methods are safe for concurrent use without locking, and every slice
//	they return is a fresh copy.
//
// Complexity:
//
//   - Construction: O(P·r) time and memory, P = number of admissible paths,
//     bounded by (J·Q+1)^maxOrder.
//   - PathToIndex: O(r). IndexToPath, R, IsLowPass: O(1) plus the copy.
package scale
