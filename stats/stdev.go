package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Stdev returns the unbiased column standard deviations of X as a length-D
// vector: s[d] = sqrt( (1/(N−1)) · Σ_i (X[i,d] − m[d])² ).
//
// Algorithm:
//  1. Validate N ≥ 2.
//  2. One pass for the column means, a second for the squared deviations.
//  3. Scale by 1/(N−1) and take the square root.
//
// The squares of the result equal the diagonal of Cov(X).
//
// Errors:
//   - ErrFewObservations if X has fewer than two rows.
func Stdev(X mat.Matrix) (*mat.VecDense, error) {
	n, d := X.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d row(s))", ErrFewObservations, n)
	}

	m := colMeans(X)
	acc := make([]float64, d)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		floats.Sub(row, m)
		for j, v := range row {
			acc[j] += v * v
		}
	}
	inv := 1 / float64(n-1)
	for j := range acc {
		acc[j] = math.Sqrt(acc[j] * inv)
	}

	return mat.NewVecDense(d, acc), nil
}
