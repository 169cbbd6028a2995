// SPDX-License-Identifier: MIT

// Package matrix: the numeric matrix contract and the per-cell arithmetic used
// by the shared kernels.
// This file contains ONLY the Numeric interface and the cell field tables.
// Errors live in errors.go, kernels in kernels.go.
package matrix

import "github.com/katalvlaran/lvalgebra/scalar"

// Numeric is the contract shared by *Real and *Complex.
// M is the concrete matrix type, so results stay statically typed:
// (*Real).Mul returns *Real, never an interface value.
//
// Every arithmetic result is a freshly allocated matrix; receivers and
// arguments are never mutated.
//
// Complexity notes: Determinant, Minors, Cofactors and Inverse use cofactor
// expansion and are factorial in size; callers bound size externally.
type Numeric[M any] interface {
	Shape

	// IsSquare reports Width == Height.
	IsSquare() bool

	// AddScalar, SubScalar, MulScalar and DivScalar apply s elementwise.
	// DivScalar by zero fails with scalar.ErrDivideByZero.
	AddScalar(s scalar.Number) (M, error)
	SubScalar(s scalar.Number) (M, error)
	MulScalar(s scalar.Number) (M, error)
	DivScalar(s scalar.Number) (M, error)

	// Add and Sub need identical dimensions (ErrDimensionMismatch).
	Add(other M) (M, error)
	Sub(other M) (M, error)

	// Mul needs this.Width == other.Height; the result is this.Height × other.Width.
	Mul(other M) (M, error)

	// Div is this · other⁻¹ (ErrSingular when other has no inverse).
	Div(other M) (M, error)

	// Pow(0) is the identity of size max(Width, Height); positive n multiplies
	// the matrix by itself, negative n multiplies the inverse by itself.
	Pow(n int) (M, error)

	// Transpose swaps dimensions.
	Transpose() M

	// Determinant expands along the first row.
	// Errors: ErrInvalidDimension (0×0), ErrNonSquare.
	Determinant() (scalar.Number, error)

	// SubDeterminant is the determinant of the half-open window [r0,r1) × [c0,c1).
	SubDeterminant(r0, c0, r1, c1 int) (scalar.Number, error)

	// Inverse is adjugate / determinant (ErrSingular on a zero determinant).
	Inverse() (M, error)

	// Minors holds at (r,c) the determinant without row r and column c.
	Minors() (M, error)

	// Cofactors is Minors with the checkerboard sign flip starting at (0,1).
	Cofactors() (M, error)

	// Trace sums the main diagonal of a square matrix.
	Trace() (scalar.Number, error)

	// Hadamard is the elementwise product of same-shaped matrices.
	Hadamard(other M) (M, error)

	// Identity returns the identity of size max(Width, Height).
	Identity() M

	Equal(other M) bool
	Clone() M
	String() string
}

// field is the cell arithmetic a kernel needs. One table per cell type keeps
// the kernels generic without boxing cells behind an interface.
type field[T any] struct {
	zero, one T
	add       func(a, b T) T
	sub       func(a, b T) T
	mul       func(a, b T) T
	div       func(a, b T) (T, error)
	isZero    func(a T) bool
	number    func(a T) scalar.Number // lift into the scalar layer
}

var realField = &field[float64]{
	zero: 0,
	one:  1,
	add:  func(a, b float64) float64 { return a + b },
	sub:  func(a, b float64) float64 { return a - b },
	mul:  func(a, b float64) float64 { return a * b },
	div: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, scalar.ErrDivideByZero
		}
		return a / b, nil
	},
	isZero: func(a float64) bool { return a == 0 },
	number: scalar.Real,
}

var complexField = &field[scalar.Number]{
	zero:   scalar.Complex(0, 0),
	one:    scalar.Complex(1, 0),
	add:    scalar.Number.Add,
	sub:    scalar.Number.Sub,
	mul:    scalar.Number.Mul,
	div:    scalar.Number.Div,
	isZero: scalar.Number.IsZero,
	number: func(a scalar.Number) scalar.Number { return a },
}
