package logspace

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LogSumExp returns the length-N vector r with r[i] = log(Σ_k exp(X[i,k]))
// for an N×K matrix X.
//
// Each row is reduced by floats.LogSumExp, which shifts by the row maximum
// a_i and returns a_i + log(Σ_k exp(X[i,k] − a_i)): exact for rows of −∞
// (result −∞), rows containing +∞ (result +∞), and free of overflow for
// every finite input.
//
// Errors:
//   - ErrEmptyMatrix if X has no rows or no columns.
func LogSumExp(X mat.Matrix) (*mat.VecDense, error) {
	n, k := X.Dims()
	if n < 1 || k < 1 {
		return nil, fmt.Errorf("%w (got %d×%d)", ErrEmptyMatrix, n, k)
	}

	out := make([]float64, n)
	row := make([]float64, k)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		out[i] = floats.LogSumExp(row)
	}

	return mat.NewVecDense(n, out), nil
}
