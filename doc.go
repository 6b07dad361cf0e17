// Package scatspectra indexes the scale paths of a multi-order wavelet
// scattering transform.
//
// 🚀 What is in here?
//
//	scale/               — ScaleIndexer: admissible path enumeration, path ↔ index
//	                       coding, per-order tables, low-pass masks, self-checks
//	cmd/scaleindex/      — CLI to print the index table and look paths up
//	internal/config/     — CLI configuration (flags, env, YAML/TOML file)
//	internal/render/     — text, YAML and TOML renderings of the index table
//	internal/cli/        — the cobra command tree
//
// ✨ Why an indexer?
//
//   - Downstream tensor code slices scattering coefficients by integer index;
//     a path numbered one slot off yields numerically plausible but wrong
//     results with no runtime signal.
//   - Numbering is order-then-lexicographic, so every scattering order owns a
//     contiguous index range.
//   - Construction fails loudly when the enumeration does not check out.
//
// Quick example (J=2, Q=[1,1], r_max=2):
//
//	0 ()
//	1 (0)   2 (1)   3 (2)★
//	4 (0, 1)   5 (0, 2)★   6 (1, 2)★          ★ ends with the low-pass filter
//
//	go get github.com/katalvlaran/scatspectra/scale
package scatspectra
