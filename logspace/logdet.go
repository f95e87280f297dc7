package logspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LogDet returns log(det(A)) for a symmetric positive-definite D×D matrix,
// computed from the Cholesky factor A = L·Lᵀ as 2·Σ_k log(L[k,k]).
//
// The factorization doubles as the PSD check: a matrix that fails to factor
// (asymmetric spectra, negative eigenvalues, or singular inputs such as the
// all-zero matrix) is rejected. When A is not already a mat.Symmetric, only
// its upper triangle is referenced.
//
// Errors:
//   - ErrNotSquare if A is not square.
//   - ErrNotPSD if the Cholesky factorization fails.
func LogDet(A mat.Matrix) (float64, error) {
	r, c := A.Dims()
	if r != c {
		return 0, fmt.Errorf("%w (got %d×%d)", ErrNotSquare, r, c)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(asSym(A)); !ok {
		return 0, ErrNotPSD
	}

	return chol.LogDet(), nil
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
