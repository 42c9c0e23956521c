// SPDX-License-Identifier: MIT
// Package matrix: the determinant engine — recursive cofactor (Laplace)
// expansion along row 0, plus minor extraction. Both Det and Inverse build
// on the helpers in this file.

package matrix

// Det computes the determinant of m via recursive cofactor expansion.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). A non-square input yields (0, false, nil):
//     the determinant is mathematically undefined there, which is a typed
//     absence, NOT a failure.
//   - Stage 2: materialize flat storage and run detRecursive.
//
// Behavior highlights:
//   - Base case 1×1 → the single entry; recursive case expands along row 0
//     with alternating sign starting at +1 for column 0.
//
// Returns:
//   - float64: the determinant value (meaningful only when ok is true).
//   - bool:    ok — false when m is not square.
//   - error:   nil unless the operand is nil or a hidden implementation
//     fails during materialization.
//
// Determinism:
//   - Fixed column order in the expansion; identical inputs give identical
//     bit patterns.
//
// Complexity:
//   - Time O(n!) — the textbook recursive definition is kept intentionally;
//     substituting an LU-based determinant would change the exact sign and
//     ordering semantics this package documents and tests.
//
// AI-Hints:
//   - Keep n small (≤ ~10); the factorial cost dominates everything else.
func Det(m Matrix) (float64, bool, error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return 0, false, matrixErrorf(opDet, err)
	}
	// Non-square → undefined, a typed absence rather than an error.
	if m.Rows() != m.Cols() {
		return 0, false, nil
	}

	d, err := toDense(m)
	if err != nil {
		return 0, false, matrixErrorf(opDet, err)
	}

	return detRecursive(d), true, nil
}

// detRecursive is the cofactor-expansion core over flat Dense storage.
// Precondition: d is square (enforced by every caller).
//
// The 0×0 determinant is deliberately 1.0 (the product over an empty index
// set). An accumulator seeded at zero would report 0.0 here, and the 1×1
// adjugate in Inverse — whose sole cofactor is a 0×0 minor — would then be
// [0], turning Inverse([[a]]) into [[0]] instead of the true reciprocal
// [[1/a]]. The empty-product convention keeps the adjugate identity
// A·adj(A) = det(A)·I valid at every order, n = 1 included.
func detRecursive(d *Dense) float64 {
	n := d.r
	// Empty matrix: the product over an empty index set.
	if n == 0 {
		return 1.0
	}
	// Base case: single entry.
	if n == 1 {
		return d.data[0]
	}

	// Laplace expansion along row 0 with alternating sign, +1 first.
	det := ZeroSum
	sign := 1.0
	for col := 0; col < n; col++ {
		det += sign * d.data[col] * detRecursive(minorOf(d, 0, col))
		sign = -sign
	}

	return det
}

// minorOf builds the (r−1)×(c−1) minor of d that omits excludeRow and
// excludeCol, preserving the relative order of the remaining rows/columns.
// The result is a fresh Dense; d is never touched. Internal: bypasses the
// NewDense shape guard so the 1×1 → 0×0 case stays representable.
// Complexity: O(r*c).
func minorOf(d *Dense, excludeRow, excludeCol int) *Dense {
	rows, cols := d.r-1, d.c-1
	minor := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	var row, col, minorRow, minorCol int
	for row = 0; row < d.r; row++ {
		if row == excludeRow {
			continue // skip the excluded row entirely
		}
		minorCol = 0
		for col = 0; col < d.c; col++ {
			if col == excludeCol {
				continue // skip the excluded column
			}
			minor.data[minorRow*cols+minorCol] = d.data[row*d.c+col]
			minorCol++
		}
		minorRow++
	}

	return minor
}
