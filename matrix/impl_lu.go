// SPDX-License-Identifier: MIT
// Package matrix: unpivoted Doolittle LU factorization.

package matrix

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// and no pivoting.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateSquare(m); allocate Dense L and U.
//   - Stage 2: for each pivot row i in fixed order, build row i of U
//     (U[i,k] = A[i,k] − Σ_{j<i} L[i,j]·U[j,k] for k ≥ i), set L[i,i] = 1,
//     then column i of L (L[k,i] = (A[k,i] − Σ_{j<i} L[k,j]·U[j,i]) / U[i,i]
//     for k > i).
//
// Behavior highlights:
//   - Deterministic loop orders; no row exchanges of any kind.
//
// Inputs:
//   - m: square Matrix (n×n).
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular); on success L·U approximates m within
//     floating-point tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Notes:
//   - Zero pivots are NOT detected: a zero U[i,i] propagates ±Inf/NaN into
//     column i of L and everything it feeds, rather than raising a typed
//     failure. That is the documented contract of this unpivoted scheme;
//     callers needing stability must precondition their inputs upstream.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (Matrix, Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	d, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U.
	n := d.r
	lower, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	upper, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		// Row i of U for k >= i.
		for k = i; k < n; k++ {
			sum = ZeroSum
			for j = 0; j < i; j++ {
				sum += lower.data[i*n+j] * upper.data[j*n+k]
			}
			upper.data[i*n+k] = d.data[i*n+k] - sum
		}

		// Unit diagonal of L.
		lower.data[i*n+i] = 1.0

		// Column i of L for k > i. A zero U[i,i] divides through to ±Inf/NaN
		// here; see the Notes above.
		for k = i + 1; k < n; k++ {
			sum = ZeroSum
			for j = 0; j < i; j++ {
				sum += lower.data[k*n+j] * upper.data[j*n+i]
			}
			lower.data[k*n+i] = (d.data[k*n+i] - sum) / upper.data[i*n+i]
		}
	}

	// Return L and U.
	return lower, upper, nil
}
