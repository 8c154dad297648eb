// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and validators return these sentinels, possibly wrapped
// with a call-site tag; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (including ragged [][]float64 input).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrTooSmall signals a distance table with fewer than two cities.
	ErrTooSmall = errors.New("matrix: at least two cities required")

	// ErrAsymmetry signals that a[i][j] and a[j][i] differ beyond symTol.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals |a[i][i]| > symTol.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative distance.
	ErrNegative = errors.New("matrix: negative distance")
)
