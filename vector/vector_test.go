// Package vector_test contains unit tests for the []float64 kernels.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/vector"
)

func TestAdd(t *testing.T) {
	sum, err := vector.Add([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum)
}

func TestAddDimensionMismatch(t *testing.T) {
	_, err := vector.Add([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}

	_, err := vector.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, a)
	assert.Equal(t, []float64{3, 4}, b)
}

func TestDot(t *testing.T) {
	dot, err := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)
}

func TestDotDimensionMismatch(t *testing.T) {
	_, err := vector.Dot([]float64{1, 2, 3}, []float64{4, 5})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, vector.Magnitude([]float64{3, 4}), 1e-12)
	assert.Zero(t, vector.Magnitude(nil))
}

func TestNorms(t *testing.T) {
	v := []float64{1, -2, 3}

	assert.Equal(t, 6.0, vector.L1Norm(v))
	assert.InDelta(t, 3.7416573867739413, vector.L2Norm(v), 1e-12)
}

// Normalize divides each component by the magnitude, so 3/5 rounds to the
// exact double 0.6. Pinned with exact equality, not a delta.
func TestNormalize(t *testing.T) {
	got := vector.Normalize([]float64{3, 4})
	assert.Equal(t, []float64{0.6, 0.8}, got)
}

// A zero vector normalizes to an unchanged copy — defined zero-safe
// behavior, not a failure.
func TestNormalizeZeroVector(t *testing.T) {
	src := []float64{0, 0, 0}

	got := vector.Normalize(src)
	assert.Equal(t, []float64{0, 0, 0}, got)

	// the copy must be independent of the source
	got[0] = 1
	assert.Equal(t, []float64{0, 0, 0}, src)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	src := []float64{3, 4}
	_ = vector.Normalize(src)
	assert.Equal(t, []float64{3, 4}, src)
}

func TestScale(t *testing.T) {
	assert.Equal(t, []float64{2, -4, 6}, vector.Scale([]float64{1, -2, 3}, 2))
	assert.Empty(t, vector.Scale(nil, 2))
}

func TestOnes(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, vector.Ones(3))
	assert.Empty(t, vector.Ones(0))
}

func TestClone(t *testing.T) {
	src := []float64{1, 2}
	dup := vector.Clone(src)
	dup[0] = 9
	assert.Equal(t, []float64{1, 2}, src)
}
