// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Real / Complex kernels.
//   • Bridge to gonum/mat so determinants and inverses can be checked against
//     an independent LU-based implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// MustReal builds a *Real from rows or fails the test.
func MustReal(t testing.TB, rows [][]float64) *matrix.Real {
	t.Helper()
	m, err := matrix.NewRealFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustComplex builds a *Complex from rows or fails the test.
func MustComplex(t testing.TB, rows [][]scalar.Number) *matrix.Complex {
	t.Helper()
	m, err := matrix.NewComplexFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandReal returns an n×n matrix with entries in [-1, 1) from a seeded source.
func RandReal(t testing.TB, n int, seed int64) *matrix.Real {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustReal(t, rows)
}

// RandWellConditioned is RandReal plus n on the diagonal, so the matrix is
// strictly diagonally dominant and comfortably invertible.
func RandWellConditioned(t testing.TB, n int, seed int64) *matrix.Real {
	t.Helper()
	rows := RandReal(t, n, seed).Data()
	for i := range rows {
		rows[i][i] += float64(n)
	}

	return MustReal(t, rows)
}

// GonumRows copies a *mat.Dense into rows.
func GonumRows(d *mat.Dense) [][]float64 {
	r, _ := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = append([]float64(nil), d.RawRowView(i)...)
	}

	return out
}

// ToGonum copies m into a *mat.Dense.
func ToGonum(m *matrix.Real) *mat.Dense {
	d := mat.NewDense(m.Height(), m.Width(), nil)
	for r, row := range m.Data() {
		for c, v := range row {
			d.Set(r, c, v)
		}
	}

	return d
}

// CompareClose asserts a and b agree cellwise within tol.
func CompareClose(t *testing.T, want [][]float64, got *matrix.Real, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Height())
	data := got.Data()
	for r := range want {
		require.Len(t, data[r], len(want[r]))
		for c := range want[r] {
			require.InDeltaf(t, want[r][c], data[r][c], tol, "cell (%d,%d)", r, c)
		}
	}
}
