// SPDX-License-Identifier: MIT
// Package matrix: cell-type-generic kernels shared by *Real and *Complex.
//
// Purpose:
//   - Implement every Numeric operation once, over a field[T] table.
//   - Operate on fully populated grids (newDenseGrid) through the flat
//     row-major cells slice.
//
// Determinism:
//   - Fixed loop orders: r=0..h−1 outer, c=0..w−1 inner; products accumulate
//     k=0..n−1.
//   - Determinant expansion always runs along the first row.
//
// AI-Hints:
//   - Facades validate; kernels assume conformable, non-nil inputs unless a
//     kernel documents its own guard.

package matrix

// det computes the determinant of the n×n row-major block a by cofactor
// expansion along the first row: Σ_c (−1)^c · a[0][c] · det(minor(0,c)).
//
// Implementation:
//   - Stage 1: Base cases. n == 0 is the empty product (one); n == 1 is the
//     single cell; n == 2 is the closed form ad − bc.
//   - Stage 2: One scratch buffer of (n−1)² cells per recursion level, reused
//     for every column of that level.
//
// Complexity:
//   - Time O(n!), Space O(n²) across the recursion stack.
func det[T any](f *field[T], a []T, n int) T {
	switch n {
	case 0:
		return f.one
	case 1:
		return a[0]
	case 2:
		return f.sub(f.mul(a[0], a[3]), f.mul(a[1], a[2]))
	}

	sub := make([]T, (n-1)*(n-1))
	acc := f.zero
	for c := 0; c < n; c++ {
		minorInto(sub, a, n, 0, c)
		term := f.mul(a[c], det(f, sub, n-1))
		if c%2 == 0 {
			acc = f.add(acc, term)
		} else {
			acc = f.sub(acc, term)
		}
	}

	return acc
}

// minorInto writes into dst the (n−1)×(n−1) block of the n×n src without
// row skipR and column skipC.
func minorInto[T any](dst, src []T, n, skipR, skipC int) {
	k := 0
	for r := 0; r < n; r++ {
		if r == skipR {
			continue
		}
		row := src[r*n : (r+1)*n]
		for c := 0; c < n; c++ {
			if c == skipC {
				continue
			}
			dst[k] = row[c]
			k++
		}
	}
}

// windowDet is the determinant of the square window [r0,r1) × [c0,c1) of g.
// Assumes ValidateWindow passed.
func windowDet[T any](f *field[T], g *Grid[T], r0, c0, r1, c1 int) T {
	n := r1 - r0
	block := make([]T, 0, n*n)
	for r := r0; r < r1; r++ {
		block = append(block, g.cells[r*g.width+c0:r*g.width+c1]...)
	}

	return det(f, block, n)
}

// minorsKernel returns the matrix of minors of a square grid.
// Each 1×1 minor is the determinant of an empty block, i.e. one.
// Complexity: O(n² · (n−1)!).
func minorsKernel[T any](f *field[T], g *Grid[T]) *Grid[T] {
	n := g.width
	out := newDenseGrid[T](n, n)
	if n == 0 {
		return out
	}
	sub := make([]T, (n-1)*(n-1))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			minorInto(sub, g.cells, n, r, c)
			out.cells[r*n+c] = det(f, sub, n-1)
		}
	}

	return out
}

// cofactorsKernel flips the sign of every minor where r+c is odd,
// i.e. the checkerboard starting at (0,1).
func cofactorsKernel[T any](f *field[T], g *Grid[T]) *Grid[T] {
	out := minorsKernel(f, g)
	n := out.width
	for r := 0; r < n; r++ {
		for c := 1 - r%2; c < n; c += 2 {
			i := r*n + c
			out.cells[i] = f.sub(f.zero, out.cells[i])
		}
	}

	return out
}

// transposeKernel returns gᵀ.
func transposeKernel[T any](g *Grid[T]) *Grid[T] {
	out := newDenseGrid[T](g.height, g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			out.cells[c*out.width+r] = g.cells[r*g.width+c]
		}
	}

	return out
}

// zipKernel combines two same-shaped grids cell by cell.
func zipKernel[T any](a, b *Grid[T], op func(x, y T) T) *Grid[T] {
	out := newDenseGrid[T](a.width, a.height)
	for i := range out.cells {
		out.cells[i] = op(a.cells[i], b.cells[i])
	}

	return out
}

// mapKernel applies op to every cell; the first error aborts the map.
func mapKernel[T any](g *Grid[T], op func(x T) (T, error)) (*Grid[T], error) {
	out := newDenseGrid[T](g.width, g.height)
	for i, v := range g.cells {
		y, err := op(v)
		if err != nil {
			return nil, err
		}
		out.cells[i] = y
	}

	return out, nil
}

// mulKernel computes a·b for a.width == b.height.
// Complexity: O(a.height · a.width · b.width).
func mulKernel[T any](f *field[T], a, b *Grid[T]) *Grid[T] {
	h, n, w := a.height, a.width, b.width
	out := newDenseGrid[T](w, h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			acc := f.zero
			for k := 0; k < n; k++ {
				acc = f.add(acc, f.mul(a.cells[r*n+k], b.cells[k*w+c]))
			}
			out.cells[r*w+c] = acc
		}
	}

	return out
}

// identityKernel returns the n×n identity.
func identityKernel[T any](f *field[T], n int) *Grid[T] {
	out := newDenseGrid[T](n, n)
	for i := range out.cells {
		out.cells[i] = f.zero
	}
	for i := 0; i < n; i++ {
		out.cells[i*n+i] = f.one
	}

	return out
}

// determinantKernel validates shape and expands along the first row.
func determinantKernel[T any](f *field[T], g *Grid[T]) (T, error) {
	if err := ValidateDeterminable(g); err != nil {
		return f.zero, matrixErrorf(opDeterminant, err)
	}

	return det(f, g.cells, g.width), nil
}

// inverseKernel computes adj(g) / det(g), with adj the transposed cofactors.
//
// Errors:
//   - ErrInvalidDimension (0×0), ErrNonSquare.
//   - ErrSingular when the determinant is zero under f.isZero.
func inverseKernel[T any](f *field[T], g *Grid[T]) (*Grid[T], error) {
	d, err := determinantKernel(f, g)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if f.isZero(d) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj := transposeKernel(cofactorsKernel(f, g))
	out, err := mapKernel(adj, func(x T) (T, error) { return f.div(x, d) })
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// powKernel raises g to an integer power.
//
// Implementation:
//   - Stage 1: n == 0 → identity of size max(width, height), before any shape check.
//   - Stage 2: Non-square → ErrNonSquare.
//   - Stage 3: base = g (n > 0) or g⁻¹ (n < 0); multiply base into the
//     running product |n|−1 times.
//
// Complexity: O(|n| · k³) plus one inverse for negative n.
func powKernel[T any](f *field[T], g *Grid[T], n int) (*Grid[T], error) {
	if n == 0 {
		return identityKernel(f, max(g.width, g.height)), nil
	}
	if err := ValidateSquare(g); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	base := g
	if n < 0 {
		inv, err := inverseKernel(f, g)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base = inv
		n = -n
	}
	out := base.Clone()
	for i := 1; i < n; i++ {
		out = mulKernel(f, out, base)
	}

	return out, nil
}

// traceKernel sums the diagonal of a square grid; 0×0 yields zero.
func traceKernel[T any](f *field[T], g *Grid[T]) (T, error) {
	if err := ValidateSquare(g); err != nil {
		return f.zero, matrixErrorf(opTrace, err)
	}
	acc := f.zero
	for i := 0; i < g.width; i++ {
		acc = f.add(acc, g.cells[i*g.width+i])
	}

	return acc, nil
}
