// SPDX-License-Identifier: MIT
// Package matrix: Vector, an immutable tuple of dual-mode components.
//
// Purpose:
//   - Geometric helpers over scalar.Number: magnitude, unit, dot, cross, angle.
//   - Complex components are allowed; the vector reports IsComplex when its
//     magnitude is complex.
//
// Determinism:
//   - Dot and Magnitude accumulate in index order with Kahan compensation.

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// Vector is an immutable ordered list of components.
type Vector struct {
	comps     []scalar.Number
	magnitude scalar.Number // sqrt(Σ xᵢ²), computed once
}

// NewVector copies components into a new vector.
func NewVector(components ...scalar.Number) *Vector {
	v := &Vector{comps: append([]scalar.Number(nil), components...)}
	var acc scalar.Accumulator
	for _, x := range v.comps {
		acc.Add(x.Mul(x))
	}
	v.magnitude = scalar.Sqrt(acc.Sum())

	return v
}

// NewRealVector builds a vector of real components.
func NewRealVector(components ...float64) *Vector {
	comps := make([]scalar.Number, len(components))
	for i, x := range components {
		comps[i] = scalar.Real(x)
	}

	return NewVector(comps...)
}

// NewVectorBetween returns end − start, the displacement between two points.
// Errors: ErrDimensionMismatch when the coordinate lists differ in length.
func NewVectorBetween(start, end []scalar.Number) (*Vector, error) {
	if len(start) != len(end) {
		return nil, matrixErrorf(opVector, ErrDimensionMismatch)
	}
	comps := make([]scalar.Number, len(start))
	for i := range start {
		comps[i] = end[i].Sub(start[i])
	}

	return NewVector(comps...), nil
}

// StandardVector returns eₛ in dims dimensions: component space is 1, the rest 0.
// Errors: ErrInvalidDimension for dims < 1; ErrOutOfRange when space ∉ [0, dims).
func StandardVector(space, dims int) (*Vector, error) {
	if dims < 1 {
		return nil, matrixErrorf(opVector, ErrInvalidDimension)
	}
	if space < 0 || space >= dims {
		return nil, matrixErrorf(opVector, ErrOutOfRange)
	}
	comps := make([]float64, dims)
	comps[space] = 1

	return NewRealVector(comps...), nil
}

// Len returns the number of components.
func (v *Vector) Len() int { return len(v.comps) }

// At returns component i.
// Errors: ErrOutOfRange.
func (v *Vector) At(i int) (scalar.Number, error) {
	if i < 0 || i >= len(v.comps) {
		return scalar.Zero, matrixErrorf(opVector, ErrOutOfRange)
	}

	return v.comps[i], nil
}

// Components returns a copy of the components.
func (v *Vector) Components() []scalar.Number { return append([]scalar.Number(nil), v.comps...) }

// All yields (index, component) pairs in order.
func (v *Vector) All() iter.Seq2[int, scalar.Number] {
	return func(yield func(int, scalar.Number) bool) {
		for i, x := range v.comps {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Magnitude returns sqrt(Σ xᵢ²), complex when any component is.
func (v *Vector) Magnitude() scalar.Number { return v.magnitude }

// IsComplex reports whether the magnitude is of complex kind.
func (v *Vector) IsComplex() bool { return v.magnitude.IsComplex() }

// Scale returns s·v.
func (v *Vector) Scale(s scalar.Number) *Vector {
	comps := make([]scalar.Number, len(v.comps))
	for i, x := range v.comps {
		comps[i] = x.Mul(s)
	}

	return NewVector(comps...)
}

// DivScalar returns v/s.
// Errors: scalar.ErrDivideByZero.
func (v *Vector) DivScalar(s scalar.Number) (*Vector, error) {
	comps := make([]scalar.Number, len(v.comps))
	for i, x := range v.comps {
		q, err := x.Div(s)
		if err != nil {
			return nil, matrixErrorf(opVector, err)
		}
		comps[i] = q
	}

	return NewVector(comps...), nil
}

// Unit returns v/|v|.
// Errors: scalar.ErrDivideByZero for the zero vector.
func (v *Vector) Unit() (*Vector, error) {
	if v.magnitude.IsZero() {
		return nil, matrixErrorf(opVector, scalar.ErrDivideByZero)
	}

	return v.DivScalar(v.magnitude)
}

func (v *Vector) zip(o *Vector, op func(a, b scalar.Number) scalar.Number) (*Vector, error) {
	if len(v.comps) != len(o.comps) {
		return nil, matrixErrorf(opVector, ErrDimensionMismatch)
	}
	comps := make([]scalar.Number, len(v.comps))
	for i := range v.comps {
		comps[i] = op(v.comps[i], o.comps[i])
	}

	return NewVector(comps...), nil
}

// Add returns v + o.
// Errors: ErrDimensionMismatch.
func (v *Vector) Add(o *Vector) (*Vector, error) { return v.zip(o, scalar.Number.Add) }

// Sub returns v − o.
// Errors: ErrDimensionMismatch.
func (v *Vector) Sub(o *Vector) (*Vector, error) { return v.zip(o, scalar.Number.Sub) }

// Dot returns Σ vᵢ·oᵢ with compensated accumulation.
// Errors: ErrDimensionMismatch.
func (v *Vector) Dot(o *Vector) (scalar.Number, error) {
	if len(v.comps) != len(o.comps) {
		return scalar.Zero, matrixErrorf(opVector, ErrDimensionMismatch)
	}
	var acc scalar.Accumulator
	for i := range v.comps {
		acc.Add(v.comps[i].Mul(o.comps[i]))
	}

	return acc.Sum(), nil
}

// Cross returns v × o for 2-D or 3-D vectors. Two 2-D vectors yield
// (0, 0, v₀o₁ − v₁o₀).
// Errors: ErrInvalidDimension unless both are 2-D or 3-D; ErrDimensionMismatch
// when they differ.
func (v *Vector) Cross(o *Vector) (*Vector, error) {
	n, m := len(v.comps), len(o.comps)
	if n < 2 || n > 3 || m < 2 || m > 3 {
		return nil, matrixErrorf(opCross, ErrInvalidDimension)
	}
	if n != m {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}

	a, b := v.comps, o.comps
	z := a[0].Mul(b[1]).Sub(a[1].Mul(b[0]))
	if n == 2 {
		return NewVector(scalar.Zero, scalar.Zero, z), nil
	}

	return NewVector(
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		z,
	), nil
}

// Angle returns acos(v·o / (|v|·|o|)).
// Errors: ErrDimensionMismatch; scalar.ErrDivideByZero when either is zero.
func (v *Vector) Angle(o *Vector) (scalar.Number, error) {
	d, err := v.Dot(o)
	if err != nil {
		return scalar.Zero, err
	}
	c, err := d.Div(v.magnitude.Mul(o.magnitude))
	if err != nil {
		return scalar.Zero, matrixErrorf(opVector, err)
	}

	return scalar.Acos(c), nil
}

// IsOrthogonal reports |v·o| ≤ EqualityTolerance().
// Errors: ErrDimensionMismatch.
func (v *Vector) IsOrthogonal(o *Vector) (bool, error) {
	d, err := v.Dot(o)
	if err != nil {
		return false, err
	}

	return d.Abs() <= EqualityTolerance(), nil
}

// Equal reports equal length and exactly equal components.
func (v *Vector) Equal(o *Vector) bool {
	if len(v.comps) != len(o.comps) {
		return false
	}
	for i := range v.comps {
		if !v.comps[i].Equal(o.comps[i]) {
			return false
		}
	}

	return true
}

// String renders "<c0, c1, …>".
func (v *Vector) String() string {
	s := "<"
	for i, x := range v.comps {
		if i > 0 {
			s += ", "
		}
		s += x.String()
	}

	return s + ">"
}
