// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Return plain sentinel errors tagged with the validator name so call
//    sites can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Scalar](m *Square[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b are non-nil and have equal size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub/Mul and their in-place variants.
func ValidateSameSize[T Scalar](a, b *Square[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameSize", ErrNilMatrix)
	}
	if a.size != b.size {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the matrix size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Scalar](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateRows checks that rows is a rectangular n×n block.
func validateRows[T Scalar](rows [][]T) error {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("validateRows: row %d has %d cells, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return nil
}
