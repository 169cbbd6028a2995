// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvalgebra/scalar"

// Complex is a dense matrix of scalar.Number cells, all of complex kind.
// Real-kind values passed in are re-tagged, so results never collapse back to
// real kind. Equality is exact on both components.
type Complex struct {
	g *Grid[scalar.Number]
}

var _ Numeric[*Complex] = (*Complex)(nil)

// NewComplex returns a zero-filled width × height matrix.
func NewComplex(width, height int) (*Complex, error) {
	if width < 0 || height < 0 {
		return nil, matrixErrorf(opNewComplex, ErrInvalidDimension)
	}
	g := newDenseGrid[scalar.Number](width, height)
	for i := range g.cells {
		g.cells[i] = complexField.zero
	}

	return &Complex{g: g}, nil
}

// NewComplexFromRows copies rows into a new matrix.
func NewComplexFromRows(rows [][]scalar.Number) (*Complex, error) {
	g, err := NewGridFromRows(rows, false)
	if err != nil {
		return nil, matrixErrorf(opNewComplex, err)
	}
	for i, v := range g.cells {
		g.cells[i] = v.AsComplex()
	}

	return &Complex{g: g}, nil
}

// NewComplexFromReal lifts every cell of m to a zero-imaginary value.
// A nil m yields an empty matrix.
func NewComplexFromReal(m *Real) *Complex {
	if m.isNil() {
		return &Complex{g: newDenseGrid[scalar.Number](0, 0)}
	}
	g := newDenseGrid[scalar.Number](m.g.width, m.g.height)
	for i, v := range m.g.cells {
		g.cells[i] = scalar.Complex(v, 0)
	}

	return &Complex{g: g}
}

// NewComplexIdentity returns the n×n identity.
func NewComplexIdentity(n int) (*Complex, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewComplex, ErrInvalidDimension)
	}

	return &Complex{g: identityKernel(complexField, n)}, nil
}

func (m *Complex) isNil() bool { return m == nil || m.g == nil }

func (m *Complex) Width() int     { return m.g.width }
func (m *Complex) Height() int    { return m.g.height }
func (m *Complex) IsSquare() bool { return m.g.width == m.g.height }

// At returns the cell at (row, col).
func (m *Complex) At(row, col int) (scalar.Number, error) { return m.g.At(row, col) }

// Set stores v, re-tagged as complex, at (row, col).
func (m *Complex) Set(row, col int, v scalar.Number) error {
	return m.g.Set(row, col, v.AsComplex())
}

// Grid returns a copy of the backing container.
func (m *Complex) Grid() *Grid[scalar.Number] { return m.g.Clone() }

// Data returns a deep copy of the cells as rows.
func (m *Complex) Data() [][]scalar.Number { return m.g.Data() }

// IsReal reports whether every cell has a zero imaginary part.
func (m *Complex) IsReal() bool {
	for _, v := range m.g.cells {
		if v.Im() != 0 {
			return false
		}
	}

	return true
}

// ToReal drops the imaginary parts.
// Errors: ErrComplexOperand when any cell has a nonzero imaginary part.
func (m *Complex) ToReal() (*Real, error) {
	if !m.IsReal() {
		return nil, matrixErrorf(opNewReal, ErrComplexOperand)
	}
	g := newDenseGrid[float64](m.g.width, m.g.height)
	for i, v := range m.g.cells {
		g.cells[i] = v.Re()
	}

	return &Real{g: g}, nil
}

func (m *Complex) scalarOp(s scalar.Number, op func(x, y scalar.Number) (scalar.Number, error)) (*Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalar, err)
	}
	s = s.AsComplex()
	g, err := mapKernel(m.g, func(x scalar.Number) (scalar.Number, error) { return op(x, s) })
	if err != nil {
		return nil, matrixErrorf(opScalar, err)
	}

	return &Complex{g: g}, nil
}

func liftN(op func(a, b scalar.Number) scalar.Number) func(a, b scalar.Number) (scalar.Number, error) {
	return func(a, b scalar.Number) (scalar.Number, error) { return op(a, b), nil }
}

func (m *Complex) AddScalar(s scalar.Number) (*Complex, error) {
	return m.scalarOp(s, liftN(complexField.add))
}

func (m *Complex) SubScalar(s scalar.Number) (*Complex, error) {
	return m.scalarOp(s, liftN(complexField.sub))
}

func (m *Complex) MulScalar(s scalar.Number) (*Complex, error) {
	return m.scalarOp(s, liftN(complexField.mul))
}

// DivScalar fails with scalar.ErrDivideByZero when s is zero.
func (m *Complex) DivScalar(s scalar.Number) (*Complex, error) {
	if s.IsZero() {
		return nil, matrixErrorf(opScalar, scalar.ErrDivideByZero)
	}

	return m.scalarOp(s, complexField.div)
}

func (m *Complex) Add(other *Complex) (*Complex, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &Complex{g: zipKernel(m.g, other.g, complexField.add)}, nil
}

func (m *Complex) Sub(other *Complex) (*Complex, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return &Complex{g: zipKernel(m.g, other.g, complexField.sub)}, nil
}

func (m *Complex) Hadamard(other *Complex) (*Complex, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return &Complex{g: zipKernel(m.g, other.g, complexField.mul)}, nil
}

func (m *Complex) Mul(other *Complex) (*Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompat(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &Complex{g: mulKernel(complexField, m.g, other.g)}, nil
}

func (m *Complex) Div(other *Complex) (*Complex, error) {
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

func (m *Complex) Pow(n int) (*Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	g, err := powKernel(complexField, m.g, n)
	if err != nil {
		return nil, err
	}

	return &Complex{g: g}, nil
}

func (m *Complex) Transpose() *Complex { return &Complex{g: transposeKernel(m.g)} }

func (m *Complex) Determinant() (scalar.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return complexField.zero, matrixErrorf(opDeterminant, err)
	}

	return determinantKernel(complexField, m.g)
}

func (m *Complex) SubDeterminant(r0, c0, r1, c1 int) (scalar.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return complexField.zero, matrixErrorf(opSubDeterminant, err)
	}
	if err := ValidateWindow(m, r0, c0, r1, c1); err != nil {
		return complexField.zero, matrixErrorf(opSubDeterminant, err)
	}

	return windowDet(complexField, m.g, r0, c0, r1, c1), nil
}

// Inverse fails with ErrSingular when the determinant has zero magnitude.
func (m *Complex) Inverse() (*Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	g, err := inverseKernel(complexField, m.g)
	if err != nil {
		return nil, err
	}

	return &Complex{g: g}, nil
}

func (m *Complex) Minors() (*Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinors, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinors, err)
	}

	return &Complex{g: minorsKernel(complexField, m.g)}, nil
}

func (m *Complex) Cofactors() (*Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return &Complex{g: cofactorsKernel(complexField, m.g)}, nil
}

func (m *Complex) Trace() (scalar.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return complexField.zero, matrixErrorf(opTrace, err)
	}

	return traceKernel(complexField, m.g)
}

func (m *Complex) Identity() *Complex {
	return &Complex{g: identityKernel(complexField, max(m.g.width, m.g.height))}
}

// Equal is exact: same shape and every cell equal in both components.
func (m *Complex) Equal(other *Complex) bool {
	if m.isNil() || other.isNil() {
		return m.isNil() && other.isNil()
	}
	if !m.g.SameShape(other) {
		return false
	}
	for i, a := range m.g.cells {
		if !a.Equal(other.g.cells[i]) {
			return false
		}
	}

	return true
}

func (m *Complex) Clone() *Complex { return &Complex{g: m.g.Clone()} }

func (m *Complex) String() string {
	return formatColumns(m.g.height, m.g.width, func(r, c int) string {
		return m.g.cells[r*m.g.width+c].String()
	})
}
