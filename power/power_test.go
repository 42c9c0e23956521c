// Package power_test contains unit tests for the dominant-eigenpair solver.
package power_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/power"
)

// mustFromRows builds a Dense from literal rows or stops the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestDominantSymmetric2x2 checks the classic [[2,1],[1,2]] case: dominant
// eigenvalue 3 with eigenvector (1/√2, 1/√2) up to sign.
func TestDominantSymmetric2x2(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	res, err := power.Dominant(m, nil)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, res.Eigenvalue, 1e-10)

	invSqrt2 := 1.0 / math.Sqrt2
	require.Len(t, res.Eigenvector, 2)
	// eigenvectors are defined up to sign
	assert.InDelta(t, invSqrt2, math.Abs(res.Eigenvector[0]), 1e-10)
	assert.InDelta(t, invSqrt2, math.Abs(res.Eigenvector[1]), 1e-10)

	assert.GreaterOrEqual(t, res.Iterations, 1)
	assert.LessOrEqual(t, res.Iterations, power.DefaultMaxIterations)
}

// The converged eigenvector must have unit L2 length.
func TestDominantEigenvectorNormalized(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})

	res, err := power.Dominant(m, nil)
	require.NoError(t, err)

	var sum float64
	for _, x := range res.Eigenvector {
		sum += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-10)
}

func TestDominantNotConverged(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	opts := power.DefaultOptions()
	opts.MaxIterations = 1 // the first transition cannot satisfy the test yet

	_, err := power.Dominant(m, &opts)
	assert.ErrorIs(t, err, power.ErrNotConverged)
}

func TestDominantNonSquare(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := power.Dominant(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDominantNilMatrix(t *testing.T) {
	_, err := power.Dominant(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDominantBadOptions(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	for name, opts := range map[string]power.Options{
		"zero tolerance":     {Tolerance: 0, MaxIterations: 10},
		"negative tolerance": {Tolerance: -1e-9, MaxIterations: 10},
		"NaN tolerance":      {Tolerance: math.NaN(), MaxIterations: 10},
		"Inf tolerance":      {Tolerance: math.Inf(1), MaxIterations: 10},
		"zero iterations":    {Tolerance: 1e-10, MaxIterations: 0},
	} {
		o := opts
		_, err := power.Dominant(m, &o)
		assert.ErrorIs(t, err, power.ErrBadOptions, "case %q", name)
	}
}

func TestRayleigh(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	invSqrt2 := 1.0 / math.Sqrt2

	lambda, err := power.Rayleigh(m, []float64{invSqrt2, invSqrt2})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, lambda, 1e-10)
}

func TestRayleighDegenerateQuotient(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	_, err := power.Rayleigh(m, []float64{0, 0})
	assert.ErrorIs(t, err, power.ErrDegenerateQuotient)
}

func TestRayleighDimensionMismatch(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	_, err := power.Rayleigh(m, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
