// SPDX-License-Identifier: MIT
// Package vector: kernel implementations. Reductions and elementwise passes
// delegate to viterin/vek behind explicit zero-length guards, since the SIMD
// layer assumes non-empty, equal-length slices.

package vector

import (
	"errors"
	"fmt"

	"github.com/viterin/vek"
)

// ErrDimensionMismatch indicates that two vectors of different lengths were
// combined (Add, Dot). Matched via errors.Is.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// vectorErrorf wraps err with an operation tag for uniform reporting.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags (no magic strings at call sites).
const (
	opAdd = "Add"
	opDot = "Dot"
)

// Add returns the elementwise sum a + b as a fresh slice.
// Fails with ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Add(a, b []float64) ([]float64, error) {
	// Validate equal lengths before any allocation.
	if len(a) != len(b) {
		return nil, vectorErrorf(opAdd, ErrDimensionMismatch)
	}
	// Guard the SIMD layer against empty input.
	if len(a) == 0 {
		return []float64{}, nil
	}

	return vek.Add(a, b), nil
}

// Dot returns Σ a[i]·b[i].
// Fails with ErrDimensionMismatch when lengths differ. The reduction may be
// partitioned by the SIMD layer; the accumulation order is fixed per build,
// so results are reproducible.
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	// Validate equal lengths first.
	if len(a) != len(b) {
		return 0, vectorErrorf(opDot, ErrDimensionMismatch)
	}
	// Empty sum is zero.
	if len(a) == 0 {
		return 0, nil
	}

	return vek.Dot(a, b), nil
}

// Magnitude returns the Euclidean (L2) length of v. Zero-length input
// reduces to 0.0. Used internally by Normalize and by power iteration.
// Complexity: O(n).
func Magnitude(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return vek.Norm(v)
}

// L1Norm returns the sum of absolute components.
// Complexity: O(n).
func L1Norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return vek.Sum(vek.Abs(v))
}

// L2Norm returns the square root of the sum of squared components.
// It is the exported name for Magnitude on the norm surface.
// Complexity: O(n).
func L2Norm(v []float64) float64 {
	return Magnitude(v)
}

// Normalize returns a copy of v divided by its magnitude.
// When the magnitude is exactly zero the original values come back as an
// unchanged copy — zero-safe behavior, not a failure. v is never mutated.
//
// Notes:
//   - Division is performed per component (x / mag), not as a
//     reciprocal-multiply. vek.DivNumber computes v * (1/mag), which drifts
//     one ulp on values like 3/5; true division rounds 3.0/5.0 to the exact
//     double 0.6.
//
// Complexity: O(n).
func Normalize(v []float64) []float64 {
	mag := Magnitude(v)
	// Zero magnitude: return an independent copy with the same values.
	if mag == 0 {
		return Clone(v)
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / mag
	}

	return out
}

// Scale returns alpha * v as a fresh slice. Total for any finite alpha.
// Complexity: O(n).
func Scale(v []float64, alpha float64) []float64 {
	if len(v) == 0 {
		return []float64{}
	}

	return vek.MulNumber(v, alpha)
}

// Ones returns a length-n vector of ones — the canonical power-iteration
// seed. n <= 0 yields an empty slice.
// Complexity: O(n).
func Ones(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}

	return v
}

// Clone returns an independent copy of v.
// Complexity: O(n).
func Clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
