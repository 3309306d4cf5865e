// SPDX-License-Identifier: MIT

// Package matrix - structural validators.
//
// Validators are read-only and allocation-free. They return sentinels wrapped
// with the validator name so callers can still match them via errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
//
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
// A negative tol is treated as its absolute value; NaN/Inf tol is rejected.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // in range after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks every entry is finite and ≥ 0.
//
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNonNegative", ErrNilMatrix)
	}

	var (
		r, c = m.Rows(), m.Cols()
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateNonNegative", ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf("ValidateNonNegative", ErrNegative)
			}
		}
	}

	return nil
}
