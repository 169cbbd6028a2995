// SPDX-License-Identifier: MIT

package graph

import (
	"log/slog"

	"github.com/katalvlaran/lvalgebra/matrix"
)

// adjacency returns the cached 0/1 matrix, rebuilding it when stale.
// Row i, column j is 1 iff vertex i links to vertex j.
func (g *Graph[T]) adjacency() *matrix.Real {
	if g.adj != nil {
		return g.adj
	}

	n := len(g.vertices)
	m, _ := matrix.NewReal(n, n) // n ≥ 0 never fails
	for i, vx := range g.vertices {
		for _, j := range vx.links {
			_ = m.Set(i, j, 1)
		}
	}
	g.adj = m
	g.logger.Debug("graph: adjacency rebuilt", slog.Int("vertices", n))

	return m
}

// AdjacencyMatrix returns a copy of the adjacency matrix in vertex
// insertion order.
func (g *Graph[T]) AdjacencyMatrix() *matrix.Real {
	return g.adjacency().Clone()
}

// power returns M^n for n ≥ 0, memoised by n until the next mutation.
// The returned matrix is shared with the cache and must not be mutated.
func (g *Graph[T]) power(n int) *matrix.Real {
	if g.powers != nil {
		if p, ok := g.powers.Get(n); ok {
			return p
		}
	}

	// M is square, so Pow cannot fail for n ≥ 0.
	p, _ := g.adjacency().Pow(n)
	if g.powers != nil {
		g.powers.Add(n, p)
	}
	g.logger.Debug("graph: adjacency power computed", slog.Int("n", n))

	return p
}

// PathLength counts the walks of length n, i.e. the sum of every entry of M^n.
// Returns -1 for a negative n.
// Complexity: O(n·V³) on a cache miss.
func (g *Graph[T]) PathLength(n int) int64 {
	if n < 0 {
		return -1
	}

	var sum int64
	for _, row := range g.power(n).Data() {
		for _, v := range row {
			sum += int64(v)
		}
	}

	return sum
}

// PathLengthFrom reports whether some entry in the row of v equals n exactly.
// M is raised to n only when n > 1, so n = 0 and n = 1 both inspect M itself.
// Returns false when v is absent or n is negative.
func (g *Graph[T]) PathLengthFrom(v T, n int) bool {
	i, ok := g.index[v]
	if !ok || n < 0 {
		return false
	}

	m := g.adjacency()
	if n > 1 {
		m = g.power(n)
	}
	for j := 0; j < m.Width(); j++ {
		if x, err := m.At(i, j); err == nil && int64(x) == int64(n) {
			return true
		}
	}

	return false
}

// PathLengthBetween reports whether at least one walk of length n joins
// origin to target. A zero length only joins a vertex to itself.
// Returns false when either vertex is absent or n is negative.
func (g *Graph[T]) PathLengthBetween(origin, target T, n int) bool {
	i, ok := g.index[origin]
	if !ok || n < 0 {
		return false
	}
	j, ok := g.index[target]
	if !ok {
		return false
	}
	if n == 0 && i != j {
		return false
	}

	x, err := g.power(n).At(i, j)

	return err == nil && x > 0
}
