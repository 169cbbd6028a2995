// SPDX-License-Identifier: MIT
// Package matrix: Grid[T], the rectangular cell container under every matrix.
//
// Purpose:
//   - Hold a height × width buffer in row-major order with an optional
//     "null allowed" policy.
//   - Expose Set / At as the only mutation and read primitives; every
//     traversal (All, Rows, Columns, Row, Column, Data) is built on them and
//     returns copies, never aliases.
//
// Determinism:
//   - Iteration order is fixed: row-major for All and Rows, column-major for
//     Columns.
//
// AI-Hints:
//   - Use NewGridFromOptional when the source has holes ([][]*T).
//   - Equality and numeric cloning live in Real / Complex, not here.

package matrix

import "iter"

// Cell addresses one position of a Grid.
type Cell struct {
	Row, Col int
}

// Shape is implemented by every value with a width and height.
type Shape interface {
	Width() int
	Height() int
}

// Grid is a fixed-size rectangular buffer of T.
// Zero value is an empty 0×0 grid.
type Grid[T any] struct {
	width, height int
	allowsNull    bool
	cells         []T    // row-major, len = width*height
	filled        []bool // population mask aligned with cells
}

// NewGrid allocates an unpopulated width × height grid.
//
// When allowsNull is false every cell has to be Set before it is read.
// Errors: ErrInvalidDimension if width or height is negative.
// Complexity: O(width·height).
func NewGrid[T any](width, height int, allowsNull bool) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, matrixErrorf(opNewGrid, ErrInvalidDimension)
	}
	n := width * height

	return &Grid[T]{
		width:      width,
		height:     height,
		allowsNull: allowsNull,
		cells:      make([]T, n),
		filled:     make([]bool, n),
	}, nil
}

// NewGridFromRows copies rows into a fully populated grid.
// Errors: ErrNonRectangular if the rows are ragged.
func NewGridFromRows[T any](rows [][]T, allowsNull bool) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, matrixErrorf(opNewGrid, ErrNonRectangular)
		}
	}

	g, _ := NewGrid[T](w, h, allowsNull)
	for r, row := range rows {
		copy(g.cells[r*w:(r+1)*w], row)
	}
	fillAll(g.filled)

	return g, nil
}

// NewGridFromOptional copies rows where nil marks an empty cell.
// Errors: ErrNonRectangular on ragged rows; ErrNullValue on a nil entry when
// allowsNull is false.
func NewGridFromOptional[T any](rows [][]*T, allowsNull bool) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, matrixErrorf(opNewGrid, ErrNonRectangular)
		}
	}

	g, _ := NewGrid[T](w, h, allowsNull)
	for r, row := range rows {
		for c, p := range row {
			if p == nil {
				if !allowsNull {
					return nil, matrixErrorf(opNewGrid, ErrNullValue)
				}
				continue
			}
			g.cells[r*w+c] = *p
			g.filled[r*w+c] = true
		}
	}

	return g, nil
}

// newDenseGrid returns a fully populated zero-valued grid; dimensions are
// trusted (callers already validated them).
func newDenseGrid[T any](width, height int) *Grid[T] {
	n := width * height
	g := &Grid[T]{width: width, height: height, cells: make([]T, n), filled: make([]bool, n)}
	fillAll(g.filled)

	return g
}

func fillAll(mask []bool) {
	for i := range mask {
		mask[i] = true
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// AllowsNull reports whether unpopulated cells may be read.
func (g *Grid[T]) AllowsNull() bool { return g.allowsNull }

// SameShape reports whether s has the same width and height as g.
func (g *Grid[T]) SameShape(s Shape) bool {
	return s != nil && g.width == s.Width() && g.height == s.Height()
}

// index maps (row, col) to a flat offset.
func (g *Grid[T]) index(row, col int) (int, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, false
	}

	return row*g.width + col, true
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange.
func (g *Grid[T]) Set(row, col int, v T) error {
	i, ok := g.index(row, col)
	if !ok {
		return matrixErrorf(opSet, ErrOutOfRange)
	}
	g.cells[i] = v
	g.filled[i] = true

	return nil
}

// At returns the value at (row, col). An empty cell of a null-allowing grid
// reads as the zero value.
// Errors: ErrOutOfRange; ErrNullValue for an empty cell when nulls are disallowed.
func (g *Grid[T]) At(row, col int) (T, error) {
	v, ok, err := g.Lookup(row, col)
	if err != nil {
		return v, err
	}
	if !ok && !g.allowsNull {
		return v, matrixErrorf(opAt, ErrNullValue)
	}

	return v, nil
}

// Lookup returns the value at (row, col) and whether the cell is populated.
// Errors: ErrOutOfRange.
func (g *Grid[T]) Lookup(row, col int) (T, bool, error) {
	var zero T
	i, ok := g.index(row, col)
	if !ok {
		return zero, false, matrixErrorf(opAt, ErrOutOfRange)
	}
	if !g.filled[i] {
		return zero, false, nil
	}

	return g.cells[i], true, nil
}

// Clear empties the cell at (row, col).
// Errors: ErrOutOfRange; ErrNullValue when nulls are disallowed.
func (g *Grid[T]) Clear(row, col int) error {
	i, ok := g.index(row, col)
	if !ok {
		return matrixErrorf(opClear, ErrOutOfRange)
	}
	if !g.allowsNull {
		return matrixErrorf(opClear, ErrNullValue)
	}
	var zero T
	g.cells[i] = zero
	g.filled[i] = false

	return nil
}

// Clone returns an independent copy with the same policy and contents.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		width:      g.width,
		height:     g.height,
		allowsNull: g.allowsNull,
		cells:      append([]T(nil), g.cells...),
		filled:     append([]bool(nil), g.filled...),
	}
}

// All yields every populated cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for r := 0; r < g.height; r++ {
			for c := 0; c < g.width; c++ {
				v, ok, _ := g.Lookup(r, c)
				if !ok {
					continue
				}
				if !yield(Cell{Row: r, Col: c}, v) {
					return
				}
			}
		}
	}
}

// Rows yields a copy of each row, top to bottom. Empty cells read as zero.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < g.height; r++ {
			row, _ := g.Row(r)
			if !yield(r, row) {
				return
			}
		}
	}
}

// Columns yields a copy of each column, left to right. Empty cells read as zero.
func (g *Grid[T]) Columns() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for c := 0; c < g.width; c++ {
			col, _ := g.Column(c)
			if !yield(c, col) {
				return
			}
		}
	}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.height {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}
	out := make([]T, g.width)
	for c := range out {
		out[c], _, _ = g.Lookup(i, c)
	}

	return out, nil
}

// Column returns a copy of column j.
// Errors: ErrOutOfRange.
func (g *Grid[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= g.width {
		return nil, matrixErrorf(opColumn, ErrOutOfRange)
	}
	out := make([]T, g.height)
	for r := range out {
		out[r], _, _ = g.Lookup(r, j)
	}

	return out, nil
}

// Data returns a deep copy of the contents as rows.
func (g *Grid[T]) Data() [][]T {
	out := make([][]T, 0, g.height)
	for _, row := range g.Rows() {
		out = append(out, row)
	}

	return out
}
