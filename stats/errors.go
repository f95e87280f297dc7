package stats

import (
	"fmt"

	"github.com/vbayes/probkit"
)

var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns where at
	// least one observation is required.
	ErrEmptyMatrix = fmt.Errorf("stats: matrix must have at least one row and one column: %w", probkit.ErrInvalidArgument)

	// ErrFewObservations indicates fewer than two observations (rows) where
	// the unbiased N−1 denominator needs at least two.
	ErrFewObservations = fmt.Errorf("stats: need at least two observations: %w", probkit.ErrInvalidArgument)

	// ErrEmptyGroup indicates a pooled form received a group with no matrices.
	ErrEmptyGroup = fmt.Errorf("stats: group must contain at least one matrix: %w", probkit.ErrInvalidArgument)

	// ErrDimMismatch indicates group members with inconsistent column counts.
	ErrDimMismatch = fmt.Errorf("stats: inconsistent column count across group: %w", probkit.ErrInvalidArgument)
)
