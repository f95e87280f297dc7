// Package probkit: shared sentinel error.
// The library surface raises exactly one error kind — invalid argument.
// Subpackages define their own per-constraint sentinels (ErrNotSquare,
// ErrNotPSD, …) and every one of them wraps ErrInvalidArgument, so callers
// can match the whole module with a single errors.Is while tests still pin
// the precise constraint that failed.

package probkit

import "errors"

// ErrInvalidArgument is the root error kind for every precondition failure
// in probkit: shape mismatches, insufficient observations, non-square
// inputs, failed PSD factorizations, and inconsistent grouped dimensions.
//
// Callers that do not care which constraint failed should match this:
//
//	if errors.Is(err, probkit.ErrInvalidArgument) { ... }
var ErrInvalidArgument = errors.New("probkit: invalid argument")
