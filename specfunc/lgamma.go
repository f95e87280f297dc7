package specfunc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lgamma returns log Γ(X[i,j]) for every element of X, in a fresh matrix of
// the same shape. The sign of Γ is discarded, as with math.Lgamma; for the
// x > 0 domain of pseudo-count matrices Γ is positive anyway.
func Lgamma(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		lg, _ := math.Lgamma(v)

		return lg
	}, X)

	return out
}
