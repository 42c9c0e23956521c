// Package power defines options, results and sentinel errors for the
// dominant-eigenpair solver.
package power

import "errors"

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultTolerance is the componentwise convergence threshold.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations bounds the number of iterate transitions.
	DefaultMaxIterations = 1000
)

// Sentinel errors, matched via errors.Is. Dimension failures from the
// underlying matrix/vector kernels propagate with their own sentinels.
var (
	// ErrNotConverged indicates MaxIterations transitions happened without
	// meeting the tolerance. Re-running with a larger budget is the caller's
	// decision; the solver never retries on its own.
	ErrNotConverged = errors.New("power: iteration did not converge")

	// ErrDegenerateQuotient indicates a Rayleigh quotient whose denominator
	// v·v is exactly 0.0.
	ErrDegenerateQuotient = errors.New("power: degenerate Rayleigh quotient")

	// ErrBadOptions indicates a nonsensical Options value (non-positive or
	// non-finite Tolerance, MaxIterations < 1).
	ErrBadOptions = errors.New("power: invalid options")
)

// Options configures the solver.
//
// Fields:
//   - Tolerance     — componentwise convergence threshold; must be finite
//     and > 0.
//   - MaxIterations — upper bound on iterate transitions; must be ≥ 1.
//
// Example:
//
//	opts := power.DefaultOptions()
//	opts.MaxIterations = 5000 // stubborn spectra need a bigger budget
//	res, err := power.Dominant(a, &opts)
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result carries the converged eigenpair.
//
// Fields:
//   - Eigenvector — the normalized dominant eigenvector (unit L2 length, up
//     to sign).
//   - Eigenvalue  — the Rayleigh-quotient estimate for Eigenvector.
//   - Iterations  — how many transitions ran before convergence (≥ 1).
type Result struct {
	Eigenvector []float64
	Eigenvalue  float64
	Iterations  int
}
