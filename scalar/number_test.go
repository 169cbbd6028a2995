// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// near asserts both components of got are within eps of want.
func near(t *testing.T, want, got scalar.Number, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.Re(), got.Re(), eps, msgAndArgs...)
	assert.InDelta(t, want.Im(), got.Im(), eps, msgAndArgs...)
}

func TestConstruction_NaNNormalized(t *testing.T) {
	r := scalar.Real(math.NaN())
	require.True(t, r.IsReal())
	require.Equal(t, 0.0, r.Re())

	c := scalar.Complex(math.NaN(), math.NaN())
	require.True(t, c.IsComplex())
	require.True(t, c.IsZero())
}

func TestPolarForm(t *testing.T) {
	n := scalar.Complex(-1, 0)
	require.InDelta(t, 1.0, n.R(), eps)
	// atan2 puts the negative real axis at π, not 0.
	require.InDelta(t, math.Pi, n.Theta(), eps)

	p := scalar.Complex(3, 4).Polar()
	require.InDelta(t, 5.0, p.R, eps)
	require.InDelta(t, 3.0, p.X, eps)
	require.InDelta(t, 4.0, p.Y, eps)
	near(t, scalar.Complex(3, 4), scalar.FromPolar(p))
	near(t, scalar.Complex(3, 4), p.Number())
}

func TestArithmetic_RealClosure(t *testing.T) {
	tests := []struct {
		name     string
		got      scalar.Number
		want     scalar.Number
		wantKind scalar.Kind
	}{
		{"add real", scalar.Real(2).Add(scalar.Real(3)), scalar.Real(5), scalar.KindReal},
		{"sub real", scalar.Real(2).Sub(scalar.Real(3)), scalar.Real(-1), scalar.KindReal},
		{"mul real", scalar.Real(2).Mul(scalar.Real(3)), scalar.Real(6), scalar.KindReal},
		{"add mixed", scalar.Real(2).Add(scalar.Complex(1, 1)), scalar.Complex(3, 1), scalar.KindComplex},
		{"mul complex", scalar.Complex(1, 2).Mul(scalar.Complex(3, -1)), scalar.Complex(5, 5), scalar.KindComplex},
		{"i squared", scalar.I.Mul(scalar.I), scalar.Complex(-1, 0), scalar.KindComplex},
		{"neg", scalar.Complex(1, -2).Neg(), scalar.Complex(-1, 2), scalar.KindComplex},
		{"conj", scalar.Complex(1, -2).Conj(), scalar.Complex(1, 2), scalar.KindComplex},
		{"conj real", scalar.Real(4).Conj(), scalar.Real(4), scalar.KindReal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(tc.got), "want %v got %v", tc.want, tc.got)
			assert.Equal(t, tc.wantKind, tc.got.Kind())
		})
	}
}

func TestDiv(t *testing.T) {
	q, err := scalar.Complex(1, 2).Div(scalar.Complex(3, 4))
	require.NoError(t, err)
	// (1+2i)/(3+4i) = (11 + 2i)/25
	near(t, scalar.Complex(11.0/25, 2.0/25), q)

	q, err = scalar.Real(1).Div(scalar.Real(4))
	require.NoError(t, err)
	require.True(t, q.IsReal())
	require.Equal(t, 0.25, q.Re())

	_, err = scalar.Complex(1, 1).Div(scalar.Complex(0, 0))
	require.ErrorIs(t, err, scalar.ErrDivideByZero)
	_, err = scalar.Real(1).Div(scalar.Zero)
	require.ErrorIs(t, err, scalar.ErrDivideByZero)

	_, err = scalar.Zero.Inverse()
	require.ErrorIs(t, err, scalar.ErrDivideByZero)
	inv, err := scalar.I.Inverse()
	require.NoError(t, err)
	near(t, scalar.Complex(0, -1), inv)
}

func TestPow(t *testing.T) {
	// Exponent zero is the identity even for a zero base.
	p := scalar.Complex(0, 0).Pow(0)
	require.True(t, p.Equal(scalar.Complex(1, 0)))
	require.True(t, p.IsComplex())
	require.True(t, scalar.Real(0).Pow(0).Equal(scalar.One))

	require.True(t, scalar.Real(-2).Pow(3).Equal(scalar.Real(-8)))
	require.True(t, scalar.Real(-2).Pow(3).IsReal())

	// Fractional power of a negative real promotes.
	half := scalar.Real(-4).Pow(0.5)
	require.True(t, half.IsComplex())
	near(t, scalar.Complex(0, 2), half)

	near(t, scalar.Complex(-4, 0), scalar.Complex(0, 2).Pow(2))
	require.True(t, scalar.Complex(0, 0).Pow(2).IsZero())
}

func TestPowN(t *testing.T) {
	// i^i = e^{-π/2}
	got := scalar.I.PowN(scalar.I)
	near(t, scalar.Real(math.Exp(-math.Pi/2)), got)

	got = scalar.Complex(1, 1).PowN(scalar.Complex(2, 0))
	near(t, scalar.Complex(0, 2), got)

	require.True(t, scalar.Complex(0, 0).PowN(scalar.Complex(0, 0)).Equal(scalar.One))
	require.True(t, scalar.Real(2).PowN(scalar.Real(10)).Equal(scalar.Real(1024)))
}

func TestCompare(t *testing.T) {
	require.Equal(t, -1, scalar.Real(1).Compare(scalar.Real(2)))
	require.Equal(t, 1, scalar.Complex(1, 3).Compare(scalar.Complex(1, 2)))
	require.Equal(t, -1, scalar.Complex(1, -3).Compare(scalar.Complex(1, 2)))
	require.Equal(t, 0, scalar.Real(2).Compare(scalar.Complex(2, 0)))
	require.True(t, scalar.Real(2).Equal(scalar.Complex(2, 0)))
}

func TestString(t *testing.T) {
	tests := []struct {
		n    scalar.Number
		want string
	}{
		{scalar.Real(0), "0"},
		{scalar.Real(3), "3"},
		{scalar.Real(-2.5), "-2.5"},
		{scalar.Complex(0, 0), "0"},
		{scalar.Complex(0, 2), "2i"},
		{scalar.Complex(0, -1), "-i"},
		{scalar.Complex(1, 1), "1+i"},
		{scalar.Complex(1, -2.5), "1-2.5i"},
		{scalar.Complex(4, 0), "4"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.n.String())
	}
	assert.Equal(t, "real", scalar.KindReal.String())
	assert.Equal(t, "complex", scalar.KindComplex.String())
}
