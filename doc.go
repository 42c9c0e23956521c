// Package linalg is your in-memory playground for dense numerical linear
// algebra — from matrix and vector primitives to decompositions and an
// iterative dominant-eigenpair solver.
//
// 🚀 What is linalg?
//
//	A deterministic, double-precision library that brings together:
//		• Dense containers: row-major float64 matrices & vectors
//		• Arithmetic: add, subtract, scale, multiply, transpose, Kronecker
//		• Reductions: L1/L2/∞ norms, trace, dot products
//		• Determinant: textbook recursive cofactor expansion
//		• Inversion: adjugate construction over the determinant engine
//		• Factorization: unpivoted Doolittle LU
//		• Spectral: power iteration + Rayleigh-quotient eigenvalues
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic by construction – fixed loop orders, merge-by-index fan-out
//   - Pure functions – operands are never mutated; every op allocates fresh
//   - Typed failures – sentinel errors matched via errors.Is, never panics
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — Dense container, arithmetic kernels, norms, Det/Inverse/LU
//	vector/ — []float64 kernels: add, dot, magnitude, normalize, norms
//	power/  — dominant eigenpair via power iteration + Rayleigh quotient
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
//	res, err := power.Dominant(a, nil) // dominant eigenpair, default options
//
// Row-parallel multiplication and cell-parallel cofactor evaluation fan out
// across worker goroutines and merge results strictly by index, so outputs
// are bit-for-bit identical to the sequential reference.
//
// Dive into the package docs (matrix/doc.go, vector/doc.go, power/doc.go)
// for contracts, edge cases and complexity notes.
//
//	go get github.com/katalvlaran/linalg
package linalg
