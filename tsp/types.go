package tsp

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the umbrella for construction-time validation failures:
	// malformed distance matrices, empty city sets, bad kernel or schedule parameters.
	ErrValidation = errors.New("tsp: validation failed")

	// ErrInvalidInput is returned when a move is requested on a route that cannot
	// support it (too few cities, out-of-range or coinciding positions).
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrNotImplemented marks intentionally unsupported conversions.
	ErrNotImplemented = errors.New("tsp: not implemented")

	// ErrNotPermutation is returned when a sequence is not a permutation of [0,n).
	ErrNotPermutation = fmt.Errorf("%w: not a permutation", ErrValidation)

	// ErrUnknownWarmStart is returned for an unrecognised warm-start name.
	ErrUnknownWarmStart = fmt.Errorf("%w: unknown warm start", ErrValidation)
)
