// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns one of these sentinels, wrapped with an operation tag
// through matrixErrorf; tests match them via errors.Is. Public surfaces never
// panic on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with matrixErrorf(tag, ErrX) so the rendered error reads "Tag: matrix: ...".
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> squareness -> numeric (singular).

var (
	// ErrInvalidDimension is returned when a requested size is negative, or when
	// an operation needs a non-empty matrix (Determinant on 0×0).
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrNonRectangular signals ragged input rows.
	ErrNonRectangular = errors.New("matrix: rows have different lengths")

	// ErrNullValue signals a missing cell where nulls are not allowed, either at
	// construction (nil entry) or on read of a never-populated cell.
	ErrNullValue = errors.New("matrix: null value not allowed")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Width != b.Height.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the determinant is exactly zero (real) or of
	// zero magnitude (complex), so no inverse exists.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidTolerance signals a negative, NaN or infinite equality tolerance.
	ErrInvalidTolerance = errors.New("matrix: invalid equality tolerance")

	// ErrComplexOperand signals a scalar with a nonzero imaginary part applied to
	// a real matrix. Lift with ToComplex first.
	ErrComplexOperand = errors.New("matrix: complex operand on real matrix")
)
