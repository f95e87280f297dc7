package specfunc

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

// Digamma returns ψ(X[i,j]) for every element of X, in a fresh matrix of
// the same shape. ψ is the logarithmic derivative of the gamma function,
// d/dx log Γ(x).
func Digamma(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return mathext.Digamma(v) }, X)

	return out
}
