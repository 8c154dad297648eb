// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-table checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still use errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - ValidateDistance follows a fixed sequence:
//    NotNil → Square → Size → Diagonal → Entries → Symmetry.
//    The first failure wins, so error priority is stable and tested.

package matrix

import (
	"fmt"
	"math"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m != nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ tol over the upper triangle.
// Assumes m is non-nil and square.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance runs the full distance-table contract:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 within symTol,
//   - every entry finite and non-negative,
//   - symmetric within symTol.
//
// Returns n (the number of cities) on success.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	if err := ValidateSquare(m); err != nil {
		return 0, err
	}
	var n = m.Rows()
	if n < 2 {
		return 0, validatorErrorf("ValidateDistance", ErrTooSmall)
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, validatorErrorf("ValidateDistance", err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, i), ErrNaNInf)
		}
		if math.Abs(v) > symTol {
			return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return 0, validatorErrorf("ValidateDistance", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNaNInf)
			}
			if v < 0 {
				return 0, validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegative)
			}
		}
	}
	if err = ValidateSymmetric(m, symTol); err != nil {
		return 0, err
	}

	return n, nil
}
