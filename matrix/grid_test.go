// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewGrid(t *testing.T) {
	g, err := matrix.NewGrid[int](3, 2, false)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.False(t, g.AllowsNull())

	// Zero dimensions are legal.
	empty, err := matrix.NewGrid[int](0, 0, true)
	require.NoError(t, err)
	require.Empty(t, empty.Data())

	_, err = matrix.NewGrid[int](-1, 2, false)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	_, err = matrix.NewGrid[int](2, -1, false)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestGrid_NullPolicy(t *testing.T) {
	strict, err := matrix.NewGrid[string](2, 2, false)
	require.NoError(t, err)
	_, err = strict.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNullValue)
	require.NoError(t, strict.Set(0, 0, "a"))
	v, err := strict.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "a", v)
	require.ErrorIs(t, strict.Clear(0, 0), matrix.ErrNullValue)

	loose, err := matrix.NewGrid[string](2, 2, true)
	require.NoError(t, err)
	v, err = loose.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, "", v)
	require.NoError(t, loose.Set(1, 1, "x"))
	_, ok, err := loose.Lookup(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, loose.Clear(1, 1))
	_, ok, err = loose.Lookup(1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGrid_OutOfRange(t *testing.T) {
	g, err := matrix.NewGrid[int](2, 2, true)
	require.NoError(t, err)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.At(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, g.Set(rc[0], rc[1], 1), matrix.ErrOutOfRange)
		assert.ErrorIs(t, g.Clear(rc[0], rc[1]), matrix.ErrOutOfRange)
	}
	_, err = g.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = g.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewGridFromRows(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := matrix.NewGridFromRows(src, false)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())

	// rows are copied on construction
	src[0][0] = 99
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = matrix.NewGridFromRows([][]int{{1, 2}, {3}}, false)
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
}

func TestNewGridFromOptional(t *testing.T) {
	rows := [][]*int{{ptr(1), nil}, {ptr(3), ptr(4)}}

	_, err := matrix.NewGridFromOptional(rows, false)
	require.ErrorIs(t, err, matrix.ErrNullValue)

	g, err := matrix.NewGridFromOptional(rows, true)
	require.NoError(t, err)
	_, ok, err := g.Lookup(0, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.NewGridFromOptional([][]*int{{ptr(1)}, {}}, true)
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
}

func TestGrid_Traversal(t *testing.T) {
	g, err := matrix.NewGridFromRows([][]int{{1, 2}, {3, 4}, {5, 6}}, false)
	require.NoError(t, err)

	var cells []matrix.Cell
	var vals []int
	for cell, v := range g.All() {
		cells = append(cells, cell)
		vals = append(vals, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, vals)
	require.Equal(t, matrix.Cell{Row: 2, Col: 1}, cells[5])

	var cols [][]int
	for _, col := range g.Columns() {
		cols = append(cols, col)
	}
	require.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, cols)

	row, err := g.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row)
	row[0] = 42 // copies, never aliases
	v, _ := g.At(1, 0)
	require.Equal(t, 3, v)

	data := g.Data()
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, data)

	// Early break stops iteration.
	n := 0
	for range g.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestGrid_AllSkipsEmptyCells(t *testing.T) {
	g, err := matrix.NewGridFromOptional([][]*int{{nil, ptr(2)}, {ptr(3), nil}}, true)
	require.NoError(t, err)
	var vals []int
	for _, v := range g.All() {
		vals = append(vals, v)
	}
	require.Equal(t, []int{2, 3}, vals)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, err := matrix.NewGridFromRows([][]int{{1, 2}}, false)
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 7))
	v, _ := g.At(0, 0)
	require.Equal(t, 1, v)
	require.True(t, g.SameShape(c))

	other, _ := matrix.NewGrid[int](1, 2, false)
	require.False(t, g.SameShape(other))
}
