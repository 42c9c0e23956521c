// Package matrix offers dense, row-major, double-precision matrices and the
// core linear-algebra kernels that operate on them.
//
// The matrix package provides:
//
//   - Dense, a flat-slice row-major container implementing the Matrix
//     interface (Rows/Cols/At/Set/Clone), plus builders: NewDense,
//     NewDenseFromRows, NewDenseFromSlice, Identity, Zero.
//   - Arithmetic & structural kernels: Add, Sub, Scale, Mul, Transpose,
//     Kronecker, MatVec.
//   - Reductions: L1Norm, L2Norm, InfinityNorm, Trace.
//   - Det — determinant via recursive cofactor expansion (textbook Laplace
//     expansion along row 0; factorial complexity is an explicit choice).
//   - Inverse — adjugate method on top of the determinant engine.
//   - LU — unpivoted Doolittle factorization into unit-lower L and upper U.
//
// Contracts are uniform across the package: operands are never mutated,
// every kernel validates its preconditions eagerly and returns sentinel
// errors matched via errors.Is, and all loops run in a fixed i→j order so
// results are deterministic. Row products in Mul/MatVec and cell cofactors
// in Inverse fan out across worker goroutines and merge strictly by index,
// which keeps the output bit-for-bit identical to a sequential run.
//
// Matrices are best for small or moderately sized dense problems where
// O(r·c) memory and exact, reproducible arithmetic are what matters.
//
// See the examples in this package for usage patterns.
package matrix
