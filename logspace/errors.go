package logspace

import (
	"fmt"

	"github.com/vbayes/probkit"
)

var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns where at
	// least one element per row is required.
	ErrEmptyMatrix = fmt.Errorf("logspace: matrix must have at least one row and one column: %w", probkit.ErrInvalidArgument)

	// ErrNotSquare indicates a non-square matrix where a square one is required.
	ErrNotSquare = fmt.Errorf("logspace: matrix must be square: %w", probkit.ErrInvalidArgument)

	// ErrNotPSD indicates a matrix whose Cholesky factorization failed; the
	// matrix is not (strictly) positive definite.
	ErrNotPSD = fmt.Errorf("logspace: matrix is not positive definite: %w", probkit.ErrInvalidArgument)
)
