// Package vector computes pure, double-precision kernels over []float64
// sequences: addition, dot products, magnitude, normalization and norms.
//
// 🚀 What is vector?
//
//	The 1-D companion of the matrix package. Every function is pure: inputs
//	are read-only and results are freshly allocated, so concurrent callers
//	never interfere. Reductions run through viterin/vek, whose partitioned
//	SIMD accumulation is associative-consistent — floating-point order may
//	differ from a naive loop within documented tolerance.
//
// ✨ Key contracts:
//   - Add and Dot are fallible: mismatched lengths return
//     ErrDimensionMismatch (checked via errors.Is), never a panic.
//   - Normalize is zero-safe: a vector with zero magnitude comes back as an
//     unchanged copy — defined behavior, not a failure.
//   - Zero-length inputs reduce to 0.0 rather than tripping the SIMD layer.
//
// ⚙️ Usage:
//
//	v := vector.Normalize([]float64{3, 4}) // [0.6, 0.8]
//	d, err := vector.Dot(v, v)             // 1.0
//
// Performance: all kernels are O(n) time, O(n) or O(1) space.
package vector
