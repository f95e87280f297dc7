package gauss

import (
	"fmt"

	"github.com/vbayes/probkit"
)

var (
	// ErrNotSquare indicates a weight matrix that is not square.
	ErrNotSquare = fmt.Errorf("gauss: weight matrix must be square: %w", probkit.ErrInvalidArgument)

	// ErrDimMismatch indicates observation, mean, and weight dimensions
	// that do not agree.
	ErrDimMismatch = fmt.Errorf("gauss: incompatible dimensions: %w", probkit.ErrInvalidArgument)

	// ErrNotPSD indicates a weight matrix whose Cholesky factorization
	// failed; the matrix is not (strictly) positive definite.
	ErrNotPSD = fmt.Errorf("gauss: weight matrix is not positive definite: %w", probkit.ErrInvalidArgument)
)
