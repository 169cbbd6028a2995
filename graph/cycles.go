// SPDX-License-Identifier: MIT

package graph

import "slices"

// Cycles enumerates every walk that leaves v and returns to it without
// passing through a vertex already on the current path. Each cycle is the
// ordered value sequence from v back to v; a self-loop on v yields [v, v].
//
// Cycles are reported in depth-first order, following links in the order
// they were added. ok is false when the graph is undirected or v is absent.
//
// Complexity: exponential in the worst case (every simple cycle through v).
func (g *Graph[T]) Cycles(v T) (cycles [][]T, ok bool) {
	if !g.directed {
		return nil, false
	}
	start, ok := g.index[v]
	if !ok {
		return nil, false
	}

	w := cycleWalk[T]{g: g, start: start, cycles: [][]T{}}
	w.visit(start, make([]int, 0, len(g.vertices)+1))

	return w.cycles, true
}

// cycleWalk carries the state of one Cycles enumeration.
type cycleWalk[T comparable] struct {
	g      *Graph[T]
	start  int
	cycles [][]T
}

func (w *cycleWalk[T]) visit(cur int, path []int) {
	path = append(path, cur)
	for _, next := range w.g.vertices[cur].links {
		switch {
		case next == cur:
			// self-loops only close a cycle at the start vertex
			if cur == w.start {
				w.record(append(path, cur))
			}
		case next == w.start:
			w.record(append(path, next))
		case slices.Contains(path, next):
			// already on the path
		default:
			w.visit(next, path)
		}
	}
}

// record copies the closed index path into a fresh value slice.
func (w *cycleWalk[T]) record(closed []int) {
	w.cycles = append(w.cycles, w.g.values(closed))
}
