package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mean returns the column means of X as a length-D vector:
// m[d] = (1/N) · Σ_i X[i,d].
//
// Algorithm:
//  1. Validate N ≥ 1, D ≥ 1.
//  2. Accumulate row sums in one deterministic pass (top row first).
//  3. Scale by 1/N.
//
// Errors:
//   - ErrEmptyMatrix if X has no rows or no columns.
func Mean(X mat.Matrix) (*mat.VecDense, error) {
	n, d := X.Dims()
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w (got %d×%d)", ErrEmptyMatrix, n, d)
	}

	sum := make([]float64, d)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		floats.Add(sum, row)
	}
	floats.Scale(1/float64(n), sum)

	return mat.NewVecDense(d, sum), nil
}

// PooledMean returns the column means of a group of matrices {X_j}, each
// N_j×D with a common D, pooled over all rows:
// m[d] = (Σ_j Σ_i X_j[i,d]) / (Σ_j N_j).
//
// The result equals Mean of the vertical concatenation of the group.
//
// Errors:
//   - ErrEmptyGroup if the group is empty.
//   - ErrEmptyMatrix if any member has no rows or no columns.
//   - ErrDimMismatch if members disagree on the column count.
func PooledMean(groups []mat.Matrix) (*mat.VecDense, error) {
	sum, total, err := pooledColSums(groups)
	if err != nil {
		return nil, err
	}
	floats.Scale(1/float64(total), sum)

	return mat.NewVecDense(len(sum), sum), nil
}

// colMeans computes column means into a fresh slice. Callers validate shape.
func colMeans(X mat.Matrix) []float64 {
	n, d := X.Dims()
	sum := make([]float64, d)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		floats.Add(sum, row)
	}
	floats.Scale(1/float64(n), sum)

	return sum
}

// pooledColSums accumulates column sums and the total row count across the
// group, validating the shared column count as it goes.
func pooledColSums(groups []mat.Matrix) (sum []float64, total int, err error) {
	if len(groups) == 0 {
		return nil, 0, ErrEmptyGroup
	}

	_, d := groups[0].Dims()
	sum = make([]float64, d)
	row := make([]float64, d)
	for j, X := range groups {
		nj, dj := X.Dims()
		if nj < 1 || dj < 1 {
			return nil, 0, fmt.Errorf("%w (group %d is %d×%d)", ErrEmptyMatrix, j, nj, dj)
		}
		if dj != d {
			return nil, 0, fmt.Errorf("%w (group 0 has %d columns, group %d has %d)", ErrDimMismatch, d, j, dj)
		}
		for i := 0; i < nj; i++ {
			mat.Row(row, i, X)
			floats.Add(sum, row)
		}
		total += nj
	}

	return sum, total, nil
}
