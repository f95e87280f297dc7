package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Power returns the dominant-magnitude eigenvalue of the D×D matrix A and
// its unit eigenvector. A nil opts selects DefaultOptions.
//
// Algorithm:
//  1. Validate A square and the options sane.
//  2. Start from the all-ones vector scaled to unit 2-norm (deterministic:
//     repeated calls on the same matrix are bit-identical).
//  3. Iterate x ← A·x/‖A·x‖₂ until ‖x_{t+1} − x_t‖∞ ≤ Tol or MaxIter.
//  4. Return the Rayleigh quotient λ = xᵀ·A·x and the final iterate.
//
// If an iterate is annihilated (A·x = 0) the loop stops early: the current
// direction lies in the null space and the Rayleigh quotient reports 0.
//
// Errors:
//   - ErrNotSquare if A is not square.
//   - ErrBadOptions if Tol ≤ 0 or MaxIter < 1.
func Power(A mat.Matrix, opts *Options) (float64, *mat.VecDense, error) {
	r, c := A.Dims()
	if r != c {
		return 0, nil, fmt.Errorf("%w (got %d×%d)", ErrNotSquare, r, c)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tol <= 0 || o.MaxIter < 1 {
		return 0, nil, fmt.Errorf("%w (Tol=%g, MaxIter=%d)", ErrBadOptions, o.Tol, o.MaxIter)
	}

	d := r
	start := make([]float64, d)
	v := 1 / math.Sqrt(float64(d))
	for i := range start {
		start[i] = v
	}
	x := mat.NewVecDense(d, start)
	y := mat.NewVecDense(d, nil)

	for iter := 0; iter < o.MaxIter; iter++ {
		y.MulVec(A, x)
		norm := mat.Norm(y, 2)
		if norm == 0 {
			// A annihilates the current direction; λ = 0 for this iterate.
			break
		}
		y.ScaleVec(1/norm, y)
		done := floats.Distance(y.RawVector().Data, x.RawVector().Data, math.Inf(1)) <= o.Tol
		x.CopyVec(y)
		if done {
			break
		}
	}

	// Rayleigh quotient of the unit iterate: λ = xᵀ·A·x.
	var ax mat.VecDense
	ax.MulVec(A, x)

	return mat.Dot(x, &ax), x, nil
}
