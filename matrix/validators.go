// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape and nil checks.
//   - Keep kernels and facades minimal by delegating guards here.
//   - Return sentinels wrapped with the validator tag so call sites can wrap
//     again uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// nilable is implemented by matrix types whose typed-nil pointer still
// satisfies Shape.
type nilable interface{ isNil() bool }

// ValidateNotNil ensures s is neither a nil interface nor a typed nil matrix.
//
// Returns ErrNilMatrix when nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(s Shape) error {
	if s == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if n, ok := s.(nilable); ok && n.isNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// AI-Hints: Use for Add/Sub/Hadamard kernels.
func ValidateSameShape(a, b Shape) error {
	if a.Height() != b.Height() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Width() != b.Width() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that s is square (Width == Height).
// Errors: ErrNonSquare.
func ValidateSquare(s Shape) error {
	if s.Width() != s.Height() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompat checks a.Width == b.Height for the product a·b.
// Errors: ErrDimensionMismatch.
func ValidateMulCompat(a, b Shape) error {
	if a.Width() != b.Height() {
		return validatorErrorf("ValidateMulCompat", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Shape) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateDeterminable is the composite NonEmpty → Square required by
// Determinant and everything built on it. A 0×0 matrix fails with
// ErrInvalidDimension before the squareness check.
func ValidateDeterminable(s Shape) error {
	if s.Width() == 0 || s.Height() == 0 {
		return validatorErrorf("ValidateDeterminable", ErrInvalidDimension)
	}
	if err := ValidateSquare(s); err != nil {
		return validatorErrorf("ValidateDeterminable", err)
	}

	return nil
}

// ValidateWindow checks the half-open window [r0,r1) × [c0,c1) lies inside s,
// is non-empty and square.
// Errors: ErrOutOfRange for bad bounds, ErrNonSquare for a rectangular window.
func ValidateWindow(s Shape, r0, c0, r1, c1 int) error {
	if r0 < 0 || c0 < 0 || r1 > s.Height() || c1 > s.Width() || r0 >= r1 || c0 >= c1 {
		return validatorErrorf("ValidateWindow", ErrOutOfRange)
	}
	if r1-r0 != c1-c0 {
		return validatorErrorf("ValidateWindow", ErrNonSquare)
	}

	return nil
}
