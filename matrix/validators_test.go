// Package matrix_test: unit tests for the central validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linalg/matrix"
)

func TestValidateNotNil(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m := mustFromRows(t, [][]float64{{1}})
	assert.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateSameShape(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	assert.NoError(t, matrix.ValidateSameShape(a, b))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
}

func TestValidateSquare(t *testing.T) {
	square := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	assert.NoError(t, matrix.ValidateSquare(square))
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

func TestValidateMulCompat(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := mustFromRows(t, [][]float64{{1}, {2}, {3}})        // 3×1

	assert.NoError(t, matrix.ValidateMulCompat(a, b))
	assert.ErrorIs(t, matrix.ValidateMulCompat(b, a), matrix.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2, 3}, 3))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1, 2}, 3), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 3), matrix.ErrNilMatrix)
}
