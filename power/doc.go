// Package power computes the dominant eigenpair of a square matrix via
// power iteration, with Rayleigh-quotient eigenvalue estimation.
//
// 🚀 What is power iteration?
//
//	Repeated matrix–vector multiplication with renormalization converges to
//	the eigenvector of the eigenvalue with the largest magnitude.  It's
//	widely used in:
//	  • Spectral ranking (PageRank-style scores)
//	  • Principal component extraction
//	  • Connectivity / centrality analysis of dense adjacency structures
//
// ✨ Key features:
//   - deterministic iterate: b₀ = (1, 1, …, 1), b_{k+1} = normalize(A·b_k)
//   - componentwise convergence test: every |b_{k+1}[i] − b_k[i]| < Tolerance
//   - bounded work: at most MaxIterations transitions, then ErrNotConverged
//   - Rayleigh quotient (A·v)·v / (v·v) for the eigenvalue, with a typed
//     ErrDegenerateQuotient on an exactly-zero denominator
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
//
//	opts := power.DefaultOptions() // Tolerance 1e-10, MaxIterations 1000
//	res, err := power.Dominant(a, &opts)
//	if err != nil {
//	  // handle ErrNotConverged / ErrBadOptions / matrix sentinels
//	}
//	fmt.Println(res.Eigenvalue, res.Eigenvector, res.Iterations)
//
// Performance:
//
//   - Time:   O(I·n²) for a dense n×n matrix, I = iterations used
//   - Memory: O(n) beyond the input
//
// The only "timeout" is the caller-supplied MaxIterations count — never
// wall-clock. Retries with a larger budget are a caller concern.
package power
