package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Cov returns the D×D covariance of X: center the columns about their means
// to get C = X − 1·m, then form CᵀC/(N−1).
//
// Algorithm:
//  1. Validate N ≥ 2.
//  2. Build the centered copy C (one pass, broadcasting the means over rows).
//  3. Rank-N symmetric update: Cov = (1/(N−1)) · Cᵀ·C.
//
// The result is symmetric by construction (*mat.SymDense) and positive
// semi-definite for real inputs.
//
// Errors:
//   - ErrFewObservations if X has fewer than two rows.
func Cov(X mat.Matrix) (*mat.SymDense, error) {
	n, _ := X.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d row(s))", ErrFewObservations, n)
	}

	C := centerRows(X, colMeans(X))

	var cov mat.SymDense
	cov.SymOuterK(1/float64(n-1), C.T())

	return &cov, nil
}

// PooledCov returns the D×D covariance of a group of matrices {X_j}, all
// centered about the single pooled mean of the whole group:
//
//	Cov = Σ_j C_jᵀ·C_j / (T−1),  C_j = X_j − 1·m,  T = Σ_j N_j.
//
// Pooling the mean (rather than centering each group on its own) yields the
// total covariance of the vertical concatenation, which is what mixture
// priors seeded from grouped data require.
//
// Errors:
//   - ErrEmptyGroup if the group is empty.
//   - ErrEmptyMatrix if any member has no rows or no columns.
//   - ErrDimMismatch if members disagree on the column count.
//   - ErrFewObservations if the pooled row count T is below two.
func PooledCov(groups []mat.Matrix) (*mat.SymDense, error) {
	sum, total, err := pooledColSums(groups)
	if err != nil {
		return nil, err
	}
	if total < 2 {
		return nil, fmt.Errorf("%w (got %d pooled row(s))", ErrFewObservations, total)
	}
	floats.Scale(1/float64(total), sum)

	d := len(sum)
	cov := mat.NewSymDense(d, nil)
	var part mat.SymDense
	inv := 1 / float64(total-1)
	for _, X := range groups {
		C := centerRows(X, sum)
		part.SymOuterK(inv, C.T())
		cov.AddSym(cov, &part)
	}

	return cov, nil
}

// centerRows returns X − 1·m as a fresh Dense, subtracting the length-D
// means vector from every row.
func centerRows(X mat.Matrix, m []float64) *mat.Dense {
	n, d := X.Dims()
	C := mat.NewDense(n, d, nil)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		floats.Sub(row, m)
		C.SetRow(i, row)
	}

	return C
}
