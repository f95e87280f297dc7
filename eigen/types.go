// Package eigen: options for the power iteration.
package eigen

// Defaults for Power. Conservative picks: the ∞-norm of successive unit
// iterates shrinks geometrically with the eigenvalue-gap ratio, so 200
// steps cover even poorly separated spectra before the silent cap applies.
const (
	// DefaultTol is the ∞-norm iterate-difference tolerance that stops the
	// power iteration.
	DefaultTol = 1e-6

	// DefaultMaxIter caps the number of iterations; hitting the cap is not
	// an error, the current estimate is returned.
	DefaultMaxIter = 200
)

// Options configures Power.
//
// Fields:
//   - Tol     — convergence threshold on ‖x_{t+1} − x_t‖∞; must be > 0.
//   - MaxIter — iteration cap; must be ≥ 1. Hitting it returns the current
//     estimate silently (slow convergence is not a precondition failure).
//
// Example:
//
//	opts := eigen.DefaultOptions()
//	opts.MaxIter = 1000 // tight eigenvalue gap expected
//
//	eigval, eigvec, err := eigen.Power(A, &opts)
type Options struct {
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the documented defaults: Tol=1e-6, MaxIter=200.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}
