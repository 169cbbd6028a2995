// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/stretchr/testify/require"
)

func TestVector_Basics(t *testing.T) {
	v := matrix.NewRealVector(3, 4)
	require.Equal(t, 2, v.Len())
	require.True(t, v.Magnitude().Equal(scalar.Real(5)))
	require.False(t, v.IsComplex())

	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, x.Re())
	_, err = v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	u, err := v.Unit()
	require.NoError(t, err)
	require.InDelta(t, 1.0, u.Magnitude().Re(), 1e-15)

	_, err = matrix.NewRealVector(0, 0).Unit()
	require.ErrorIs(t, err, scalar.ErrDivideByZero)

	require.Equal(t, "<3, 4>", v.String())
	require.True(t, v.Scale(scalar.Real(2)).Equal(matrix.NewRealVector(6, 8)))

	var idx []int
	for i := range v.All() {
		idx = append(idx, i)
	}
	require.Equal(t, []int{0, 1}, idx)
}

func TestVector_Complex(t *testing.T) {
	v := matrix.NewVector(scalar.Complex(0, 1), scalar.Real(1))
	// i² + 1² = 0
	require.True(t, v.IsComplex())
	require.True(t, v.Magnitude().IsZero())
}

func TestVector_Between(t *testing.T) {
	v, err := matrix.NewVectorBetween(
		[]scalar.Number{scalar.Real(1), scalar.Real(1)},
		[]scalar.Number{scalar.Real(4), scalar.Real(5)},
	)
	require.NoError(t, err)
	require.True(t, v.Equal(matrix.NewRealVector(3, 4)))

	_, err = matrix.NewVectorBetween([]scalar.Number{scalar.One}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStandardVector(t *testing.T) {
	e, err := matrix.StandardVector(2, 5)
	require.NoError(t, err)
	require.True(t, e.Equal(matrix.NewRealVector(0, 0, 1, 0, 0)))
	require.True(t, e.Magnitude().Equal(scalar.One))

	_, err = matrix.StandardVector(5, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.StandardVector(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestVector_Products(t *testing.T) {
	a := matrix.NewRealVector(1, 2, 3)
	b := matrix.NewRealVector(4, 5, 6)

	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d.Re())

	x, err := a.Cross(b)
	require.NoError(t, err)
	require.True(t, x.Equal(matrix.NewRealVector(-3, 6, -3)))

	x2, err := matrix.NewRealVector(1, 0).Cross(matrix.NewRealVector(0, 1))
	require.NoError(t, err)
	require.True(t, x2.Equal(matrix.NewRealVector(0, 0, 1)))

	_, err = a.Cross(matrix.NewRealVector(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewRealVector(1).Cross(matrix.NewRealVector(1))
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	_, err = a.Dot(matrix.NewRealVector(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(matrix.NewRealVector(5, 7, 9)))
	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.True(t, diff.Equal(matrix.NewRealVector(3, 3, 3)))
}

func TestVector_AngleAndOrthogonality(t *testing.T) {
	ex, _ := matrix.StandardVector(0, 2)
	ey, _ := matrix.StandardVector(1, 2)

	ang, err := ex.Angle(ey)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, ang.Re(), 1e-15)

	ok, err := ex.IsOrthogonal(ey)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = ex.IsOrthogonal(matrix.NewRealVector(1, 1))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ex.Angle(matrix.NewRealVector(0, 0))
	require.ErrorIs(t, err, scalar.ErrDivideByZero)
}
