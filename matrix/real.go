// SPDX-License-Identifier: MIT
// Package matrix: *Real, the float64-backed Numeric implementation.
//
// Purpose:
//   - Dense real matrices with cofactor-based determinant, minors, cofactors,
//     adjugate inverse and integer powers.
//   - Equality within a process-wide tolerance (SetEqualityTolerance).
//
// Determinism:
//   - Every method allocates a fresh result; receivers are never mutated
//     except through Set.
//
// AI-Hints:
//   - Complex scalars with a nonzero imaginary part are rejected with
//     ErrComplexOperand; call ToComplex to work in complex arithmetic.

package matrix

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// DefaultEqualityTolerance is the initial cellwise tolerance of (*Real).Equal.
const DefaultEqualityTolerance = 1e-10

// equalityTolerance stores math.Float64bits of the active tolerance.
var equalityTolerance atomic.Uint64

func init() {
	equalityTolerance.Store(math.Float64bits(DefaultEqualityTolerance))
}

// SetEqualityTolerance replaces the tolerance used by every (*Real).Equal call
// in the process.
// Errors: ErrInvalidTolerance when tol is negative, NaN or infinite.
func SetEqualityTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf("SetEqualityTolerance", ErrInvalidTolerance)
	}
	equalityTolerance.Store(math.Float64bits(tol))

	return nil
}

// EqualityTolerance returns the active (*Real).Equal tolerance.
func EqualityTolerance() float64 {
	return math.Float64frombits(equalityTolerance.Load())
}

// Real is a dense matrix of float64 cells.
type Real struct {
	g *Grid[float64]
}

// Compile-time contract check.
var _ Numeric[*Real] = (*Real)(nil)

// NewReal returns a zero-filled width × height matrix.
// Errors: ErrInvalidDimension for negative sizes.
func NewReal(width, height int) (*Real, error) {
	if width < 0 || height < 0 {
		return nil, matrixErrorf(opNewReal, ErrInvalidDimension)
	}

	return &Real{g: newDenseGrid[float64](width, height)}, nil
}

// NewRealFromRows copies rows into a new matrix.
// Errors: ErrNonRectangular for ragged rows.
func NewRealFromRows(rows [][]float64) (*Real, error) {
	g, err := NewGridFromRows(rows, false)
	if err != nil {
		return nil, matrixErrorf(opNewReal, err)
	}

	return &Real{g: g}, nil
}

// NewRealFromGrid copies a fully populated grid.
// Errors: ErrNilMatrix; ErrNullValue when any cell is empty.
func NewRealFromGrid(src *Grid[float64]) (*Real, error) {
	if src == nil {
		return nil, matrixErrorf(opNewReal, ErrNilMatrix)
	}
	g := newDenseGrid[float64](src.width, src.height)
	for i, ok := range src.filled {
		if !ok {
			return nil, matrixErrorf(opNewReal, ErrNullValue)
		}
		g.cells[i] = src.cells[i]
	}

	return &Real{g: g}, nil
}

// NewRealIdentity returns the n×n identity.
// Errors: ErrInvalidDimension for n < 0.
func NewRealIdentity(n int) (*Real, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewReal, ErrInvalidDimension)
	}

	return &Real{g: identityKernel(realField, n)}, nil
}

func (m *Real) isNil() bool { return m == nil || m.g == nil }

// Width returns the number of columns.
func (m *Real) Width() int { return m.g.width }

// Height returns the number of rows.
func (m *Real) Height() int { return m.g.height }

// IsSquare reports Width == Height.
func (m *Real) IsSquare() bool { return m.g.width == m.g.height }

// At returns the cell at (row, col).
// Errors: ErrOutOfRange.
func (m *Real) At(row, col int) (float64, error) { return m.g.At(row, col) }

// Set stores v at (row, col).
// Errors: ErrOutOfRange.
func (m *Real) Set(row, col int, v float64) error { return m.g.Set(row, col, v) }

// Grid returns a copy of the backing container.
func (m *Real) Grid() *Grid[float64] { return m.g.Clone() }

// Data returns a deep copy of the cells as rows.
func (m *Real) Data() [][]float64 { return m.g.Data() }

// realOperand extracts the real value of s or rejects a complex scalar.
func realOperand(s scalar.Number) (float64, error) {
	if s.Im() != 0 {
		return 0, matrixErrorf(opScalar, ErrComplexOperand)
	}

	return s.Re(), nil
}

// scalarOp maps op(cell, s) over a copy of m.
func (m *Real) scalarOp(s scalar.Number, op func(x, y float64) (float64, error)) (*Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalar, err)
	}
	v, err := realOperand(s)
	if err != nil {
		return nil, err
	}
	g, err := mapKernel(m.g, func(x float64) (float64, error) { return op(x, v) })
	if err != nil {
		return nil, matrixErrorf(opScalar, err)
	}

	return &Real{g: g}, nil
}

func lift(op func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) { return op(a, b), nil }
}

// AddScalar returns m + s elementwise.
func (m *Real) AddScalar(s scalar.Number) (*Real, error) { return m.scalarOp(s, lift(realField.add)) }

// SubScalar returns m − s elementwise.
func (m *Real) SubScalar(s scalar.Number) (*Real, error) { return m.scalarOp(s, lift(realField.sub)) }

// MulScalar returns m · s elementwise.
func (m *Real) MulScalar(s scalar.Number) (*Real, error) { return m.scalarOp(s, lift(realField.mul)) }

// DivScalar returns m / s elementwise.
// Errors: scalar.ErrDivideByZero when s is zero, even for an empty matrix.
func (m *Real) DivScalar(s scalar.Number) (*Real, error) {
	if s.IsZero() {
		return nil, matrixErrorf(opScalar, scalar.ErrDivideByZero)
	}

	return m.scalarOp(s, realField.div)
}

// Add returns m + other.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Real) Add(other *Real) (*Real, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &Real{g: zipKernel(m.g, other.g, realField.add)}, nil
}

// Sub returns m − other.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Real) Sub(other *Real) (*Real, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return &Real{g: zipKernel(m.g, other.g, realField.sub)}, nil
}

// Hadamard returns the elementwise product m ∘ other.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Real) Hadamard(other *Real) (*Real, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return &Real{g: zipKernel(m.g, other.g, realField.mul)}, nil
}

// Mul returns the matrix product m · other (m.Height × other.Width).
// Errors: ErrNilMatrix, ErrDimensionMismatch when m.Width != other.Height.
func (m *Real) Mul(other *Real) (*Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompat(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &Real{g: mulKernel(realField, m.g, other.g)}, nil
}

// Div returns m · other⁻¹.
// Errors: ErrNilMatrix; Inverse errors of other (ErrSingular, ErrNonSquare);
// ErrDimensionMismatch from the product.
func (m *Real) Div(other *Real) (*Real, error) {
	inv, err := other.Inverse()
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	q, err := m.Mul(inv)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return q, nil
}

// Pow returns m raised to n.
// Errors: ErrNonSquare (n != 0); ErrSingular for negative n without inverse.
func (m *Real) Pow(n int) (*Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	g, err := powKernel(realField, m.g, n)
	if err != nil {
		return nil, err
	}

	return &Real{g: g}, nil
}

// Transpose returns mᵀ.
func (m *Real) Transpose() *Real { return &Real{g: transposeKernel(m.g)} }

// Determinant returns det(m) as a real Number.
// Errors: ErrNilMatrix, ErrInvalidDimension, ErrNonSquare.
func (m *Real) Determinant() (scalar.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return scalar.Zero, matrixErrorf(opDeterminant, err)
	}
	d, err := determinantKernel(realField, m.g)
	if err != nil {
		return scalar.Zero, err
	}

	return realField.number(d), nil
}

// SubDeterminant returns the determinant of the window [r0,r1) × [c0,c1).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNonSquare.
func (m *Real) SubDeterminant(r0, c0, r1, c1 int) (scalar.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return scalar.Zero, matrixErrorf(opSubDeterminant, err)
	}
	if err := ValidateWindow(m, r0, c0, r1, c1); err != nil {
		return scalar.Zero, matrixErrorf(opSubDeterminant, err)
	}

	return realField.number(windowDet(realField, m.g, r0, c0, r1, c1)), nil
}

// Inverse returns adj(m) / det(m).
// Errors: ErrNilMatrix, ErrInvalidDimension, ErrNonSquare, ErrSingular.
func (m *Real) Inverse() (*Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	g, err := inverseKernel(realField, m.g)
	if err != nil {
		return nil, err
	}

	return &Real{g: g}, nil
}

// Minors returns the matrix of minors.
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Real) Minors() (*Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinors, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinors, err)
	}

	return &Real{g: minorsKernel(realField, m.g)}, nil
}

// Cofactors returns the matrix of cofactors.
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Real) Cofactors() (*Real, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return &Real{g: cofactorsKernel(realField, m.g)}, nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Real) Trace() (scalar.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return scalar.Zero, matrixErrorf(opTrace, err)
	}
	t, err := traceKernel(realField, m.g)
	if err != nil {
		return scalar.Zero, err
	}

	return realField.number(t), nil
}

// Identity returns the identity of size max(Width, Height).
func (m *Real) Identity() *Real {
	return &Real{g: identityKernel(realField, max(m.g.width, m.g.height))}
}

// Equal reports same shape and |a−b| ≤ EqualityTolerance() for every cell.
// Two nil matrices are equal.
func (m *Real) Equal(other *Real) bool {
	if m.isNil() || other.isNil() {
		return m.isNil() && other.isNil()
	}
	if !m.g.SameShape(other) {
		return false
	}
	tol := EqualityTolerance()
	for i, a := range m.g.cells {
		if math.Abs(a-other.g.cells[i]) > tol {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
func (m *Real) Clone() *Real { return &Real{g: m.g.Clone()} }

// ToComplex lifts every cell to a zero-imaginary complex value.
func (m *Real) ToComplex() *Complex { return NewComplexFromReal(m) }

// String renders the matrix in aligned columns; "empty" when it has no cells.
func (m *Real) String() string {
	return formatColumns(m.g.height, m.g.width, func(r, c int) string {
		return scalar.Real(m.g.cells[r*m.g.width+c]).String()
	})
}
