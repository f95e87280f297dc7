package gauss

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mahalanobis returns the length-N vector of weighted squared distances
// d[i] = (X[i,:] − μ) · A⁻¹ · (X[i,:] − μ)ᵀ for an N×D observation matrix
// X, a length-D mean μ, and a D×D symmetric positive-definite weight A.
//
// Algorithm:
//  1. Validate shapes: A square, μ and A sized to the columns of X.
//  2. Cholesky-factor A once; failure to factor is the PSD check.
//  3. Center C = X − 1·μ and solve A·W = Cᵀ against all rows at once.
//  4. d[i] = Σ_k C[i,k]·W[k,i] (row-wise dot); A⁻¹ is never formed.
//
// When A is not already a mat.Symmetric, only its upper triangle is
// referenced — the matrix is declared symmetric by contract.
//
// Errors:
//   - ErrNotSquare if A is not square.
//   - ErrDimMismatch if μ or A disagree with the column count of X.
//   - ErrNotPSD if the factorization fails (e.g. a singular weight matrix).
func Mahalanobis(X mat.Matrix, mu mat.Vector, A mat.Matrix) (*mat.VecDense, error) {
	n, d := X.Dims()
	ar, ac := A.Dims()
	if ar != ac {
		return nil, fmt.Errorf("%w (got %d×%d)", ErrNotSquare, ar, ac)
	}
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w (X is %d×%d, need at least one observation)", ErrDimMismatch, n, d)
	}
	if mu.Len() != d || ar != d {
		return nil, fmt.Errorf("%w (X is %d×%d, μ has length %d, A is %d×%d)", ErrDimMismatch, n, d, mu.Len(), ar, ac)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(asSym(A)); !ok {
		return nil, ErrNotPSD
	}

	// C = X − 1·μ, broadcasting the mean over rows.
	C := mat.NewDense(n, d, nil)
	m := make([]float64, d)
	for j := 0; j < d; j++ {
		m[j] = mu.AtVec(j)
	}
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		floats.Sub(row, m)
		C.SetRow(i, row)
	}

	// Solve A·W = Cᵀ for all observations in one triangular solve.
	var W mat.Dense
	if err := chol.SolveTo(&W, C.T()); err != nil {
		return nil, fmt.Errorf("%w (solve: %v)", ErrNotPSD, err)
	}

	out := make([]float64, n)
	col := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, C)
		mat.Col(col, i, &W)
		out[i] = floats.Dot(row, col)
	}

	return mat.NewVecDense(n, out), nil
}

// asSym adapts a square matrix to mat.Symmetric, copying the upper triangle
// when the dynamic type does not already satisfy the interface.
func asSym(A mat.Matrix) mat.Symmetric {
	if s, ok := A.(mat.Symmetric); ok {
		return s
	}
	n, _ := A.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, A.At(i, j))
		}
	}

	return s
}
