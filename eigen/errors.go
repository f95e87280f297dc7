package eigen

import (
	"fmt"

	"github.com/vbayes/probkit"
)

var (
	// ErrNotSquare indicates a non-square matrix where a square one is required.
	ErrNotSquare = fmt.Errorf("eigen: matrix must be square: %w", probkit.ErrInvalidArgument)

	// ErrBadOptions indicates a non-positive tolerance or an iteration cap
	// below one.
	ErrBadOptions = fmt.Errorf("eigen: tolerance must be positive and MaxIter at least one: %w", probkit.ErrInvalidArgument)
)
