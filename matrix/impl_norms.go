// SPDX-License-Identifier: MIT
// Package matrix: norm and reduction kernels — L1, L2 and infinity norms plus
// the trace. All are read-only over their operand and deterministic.

package matrix

import "github.com/viterin/vek"

// L1Norm returns the sum of absolute values over all cells.
// Complexity: O(r*c).
func L1Norm(m Matrix) (float64, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	// Vectorized |x| then sum over the flat slice.
	return vek.Sum(vek.Abs(d.data)), nil
}

// L2Norm returns the square root of the sum of squared cells (the Frobenius
// norm of the dense grid).
// Complexity: O(r*c).
func L2Norm(m Matrix) (float64, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	// vek.Norm is the Euclidean norm of the flat slice.
	return vek.Norm(d.data), nil
}

// InfinityNorm returns the maximum over rows of the row's L1 norm (sum of
// absolute values in that row). The accumulator starts at 0.0, which doubles
// as the safe default for degenerate row sets.
// Complexity: O(r*c).
func InfinityNorm(m Matrix) (float64, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	maxRow := NormZero // 0.0 is the documented degenerate default
	var i int
	var rowSum float64
	for i = 0; i < d.r; i++ { // iterate rows in fixed order
		// Row slice shares the backing array; vek reads it without mutation.
		rowSum = vek.Sum(vek.Abs(d.data[i*d.c : (i+1)*d.c]))
		if rowSum > maxRow {
			maxRow = rowSum
		}
	}

	return maxRow, nil
}

// Trace returns the sum of diagonal entries. Defined for any shape using the
// min(rows, cols) diagonal length, though square use is the common case.
// Complexity: O(min(r,c)).
func Trace(m Matrix) (float64, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	// Diagonal length for rectangular inputs.
	n := d.r
	if d.c < n {
		n = d.c
	}
	sum := ZeroSum
	for i := 0; i < n; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}
