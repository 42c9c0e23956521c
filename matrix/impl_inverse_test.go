// Package matrix_test: unit tests for the inversion engine.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// assertMatrixInDelta compares cells within tol.
func assertMatrixInDelta(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], mustAt(t, got, i, j), tol, "cell [%d,%d]", i, j)
		}
	}
}

func TestInverse2x2(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	assertMatrixInDelta(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-10)
}

func TestInverse1x1(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4}})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	assert.Equal(t, 0.25, mustAt(t, inv, 0, 0))
}

// A · A⁻¹ must reproduce the identity within floating-point tolerance.
func TestInverseRoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	product, err := matrix.Mul(m, inv)
	require.NoError(t, err)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, mustAt(t, id, i, j), mustAt(t, product, i, j), 1e-10, "cell [%d,%d]", i, j)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	// det exactly 0 → ErrSingular, no tolerance applied
	m := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverseNonSquare(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverseNilOperand(t *testing.T) {
	_, err := matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverseDoesNotMutateOperand(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	_, err := matrix.Inverse(m)
	require.NoError(t, err)
	assertMatrixInDelta(t, [][]float64{{4, 7}, {2, 6}}, m, 0)
}
