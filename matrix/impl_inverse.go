// SPDX-License-Identifier: MIT
// Package matrix: the inversion engine — adjugate construction over the
// determinant engine, with cell-parallel cofactor evaluation.

package matrix

// Inverse computes A⁻¹ via the adjugate method: inv[i,j] = adj[i,j] / det(A),
// where adj is the transpose of the cofactor matrix.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateSquare(m); compute det(A) through
//     the determinant engine and reject det == 0.0 with ErrSingular. The
//     singularity check is bit-exact equality to zero — no near-singularity
//     tolerance is applied.
//   - Stage 2: fan the n² independent cofactor computations out via
//     forEachIndex; unit k owns cell (i,j) = (k/n, k%n) and writes only
//     adj[j,i] (the transposed placement), then divide elementwise by det.
//
// Behavior highlights:
//   - cof(i,j) = det(minor(A,i,j)) · (−1)^(i+j); merge is by index, never by
//     completion order, so the result is deterministic under any scheduling.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - Matrix: fresh Dense(n×n) containing A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n² · (n−1)!) — each cofactor is a recursive determinant; the
//     factorial engine is shared with Det on purpose (see Det notes).
//
// AI-Hints:
//   - For repeated solves prefer LU + triangular solves outside this
//     package; forming A⁻¹ explicitly is the textbook path kept here.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Determinant gate: exactly-zero determinant means no inverse exists.
	det := detRecursive(d)
	if det == ZeroDet {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := d.r
	adj, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Per-cell units: unit k owns source cell (i,j) and writes adj[j,i] only.
	err = forEachIndex(n*n, func(k int) error {
		i, j := k/n, k%n
		cof := detRecursive(minorOf(d, i, j)) // signed below
		if (i+j)%2 != 0 {
			cof = -cof // (−1)^(i+j)
		}
		adj.data[j*n+i] = cof // transposed placement builds the adjugate

		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Elementwise division by the determinant, fixed flat order.
	for idx := range adj.data {
		adj.data[idx] /= det
	}

	return adj, nil
}
