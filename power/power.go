// SPDX-License-Identifier: MIT
// Package power: solver kernels. Dominant drives the iterate state machine;
// Rayleigh estimates the eigenvalue of a given vector.

package power

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Operation tags for uniform error wrapping.
const (
	opDominant = "Dominant"
	opRayleigh = "Rayleigh"
)

// powerErrorf wraps err with an operation tag, preserving the cause via %w.
func powerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateOptions enforces the documented Options invariants.
// Returns ErrBadOptions on violation. O(1).
func validateOptions(o Options) error {
	// Tolerance must be a positive finite threshold.
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return ErrBadOptions
	}
	// At least one transition must be allowed.
	if o.MaxIterations < 1 {
		return ErrBadOptions
	}

	return nil
}

// Dominant runs power iteration on a square matrix m and returns the
// dominant eigenpair.
//
// Implementation:
//   - Stage 1: resolve options (nil → DefaultOptions) and validate them;
//     validate m non-nil and square. All checks happen before any work.
//   - Stage 2: iterate b₀ = (1,…,1); b_{k+1} = normalize(A·b_k); stop as
//     soon as every |b_{k+1}[i] − b_k[i]| < Tolerance, then estimate the
//     eigenvalue via Rayleigh on the converged vector.
//
// Behavior highlights:
//   - The matrix–vector step uses the row-parallel MatVec kernel, so large
//     matrices fan out across workers while staying bit-for-bit
//     deterministic (merge by row index).
//   - The eigenvector is defined up to sign, as usual for eigenpairs.
//
// Inputs:
//   - m:    non-nil square Matrix; its row count fixes the iterate length.
//   - opts: solver configuration; nil selects DefaultOptions().
//
// Returns:
//   - Result: eigenvector, Rayleigh eigenvalue and the iteration count.
//
// Errors:
//   - ErrBadOptions, matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     ErrNotConverged (budget exhausted), plus anything Rayleigh reports.
//
// Complexity:
//   - Time O(I·n²), Space O(n).
func Dominant(m matrix.Matrix, opts *Options) (Result, error) {
	// Resolve and validate options first — bad configuration must not start
	// any iteration work.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return Result{}, powerErrorf(opDominant, err)
	}

	// Validate the matrix eagerly: non-nil, square.
	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, powerErrorf(opDominant, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return Result{}, powerErrorf(opDominant, err)
	}

	// Initial iterate: the all-ones vector of matching length.
	b := vector.Ones(m.Rows())

	var k int
	var next []float64
	var err error
	for k = 1; k <= o.MaxIterations; k++ {
		// Transition: b_{k} = normalize(A · b_{k-1}).
		next, err = matrix.MatVec(m, b)
		if err != nil {
			return Result{}, powerErrorf(opDominant, err)
		}
		next = vector.Normalize(next)

		// Convergence: every componentwise delta strictly below tolerance.
		if withinTolerance(next, b, o.Tolerance) {
			lambda, rqErr := Rayleigh(m, next)
			if rqErr != nil {
				return Result{}, powerErrorf(opDominant, rqErr)
			}

			return Result{Eigenvector: next, Eigenvalue: lambda, Iterations: k}, nil
		}
		b = next
	}

	// Budget exhausted without meeting the tolerance.
	return Result{}, powerErrorf(opDominant, ErrNotConverged)
}

// Rayleigh computes the Rayleigh quotient (A·v)·v / (v·v) — the eigenvalue
// estimate associated with eigenvector v.
//
// Errors:
//   - ErrDegenerateQuotient when v·v is exactly 0.0.
//   - matrix.ErrDimensionMismatch when v does not match the column count.
//
// Complexity: O(n²) for the matrix–vector product, O(n) for the dots.
func Rayleigh(m matrix.Matrix, v []float64) (float64, error) {
	// Numerator: (A·v)·v.
	av, err := matrix.MatVec(m, v)
	if err != nil {
		return 0, powerErrorf(opRayleigh, err)
	}
	num, err := vector.Dot(av, v)
	if err != nil {
		return 0, powerErrorf(opRayleigh, err)
	}

	// Denominator: v·v, rejected when exactly zero.
	den, err := vector.Dot(v, v)
	if err != nil {
		return 0, powerErrorf(opRayleigh, err)
	}
	if den == 0.0 {
		return 0, powerErrorf(opRayleigh, ErrDegenerateQuotient)
	}

	return num / den, nil
}

// withinTolerance reports whether every |a[i] − b[i]| < tol.
// Precondition: len(a) == len(b) (both come from the same iterate). O(n).
func withinTolerance(a, b []float64, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= tol {
			return false
		}
	}

	return true
}
