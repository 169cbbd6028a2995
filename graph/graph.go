// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/lvalgebra/matrix"
)

// vertex is one arena slot. links holds arena indices in insertion order,
// without duplicates.
type vertex[T comparable] struct {
	value T
	links []int
}

// Graph is a set of unique vertex values joined by links.
//
// Vertices live in an arena addressed by index, so removal is an index
// filter over every link list. The 0/1 adjacency matrix and its powers are
// derived lazily and dropped on every mutation.
//
// A Graph is not safe for concurrent use.
type Graph[T comparable] struct {
	directed bool
	logger   *slog.Logger

	vertices []vertex[T]
	index    map[T]int // value → arena index

	adj    *matrix.Real                  // nil when stale
	powers *lru.Cache[int, *matrix.Real] // nil when disabled
}

// New creates an empty Graph. By default it is undirected, logs nowhere and
// memoises DefaultPowerCacheSize adjacency powers.
// Complexity: O(1).
func New[T comparable](opts ...Option) *Graph[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[T]{
		directed: cfg.directed,
		logger:   cfg.logger,
		index:    make(map[T]int),
	}
	if cfg.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		g.powers, _ = lru.New[int, *matrix.Real](cfg.cacheSize)
	}

	return g
}

// Directed reports whether links are one-way.
func (g *Graph[T]) Directed() bool { return g.directed }

// VertexCount returns the number of plotted vertices.
func (g *Graph[T]) VertexCount() int { return len(g.vertices) }

// IsPlotted reports whether v is a vertex of g.
func (g *Graph[T]) IsPlotted(v T) bool {
	_, ok := g.index[v]

	return ok
}

// Vertices returns the vertex values in insertion order.
func (g *Graph[T]) Vertices() []T {
	out := make([]T, len(g.vertices))
	for i, vx := range g.vertices {
		out[i] = vx.value
	}

	return out
}

// Links returns the values v links to, in the order they were linked.
// ok is false when v is absent.
func (g *Graph[T]) Links(v T) (links []T, ok bool) {
	i, ok := g.index[v]
	if !ok {
		return nil, false
	}

	return g.values(g.vertices[i].links), true
}

// Add plots v, auto-creating every absent link target as a linkless vertex.
// If v already exists its links are extended with the new ones. On an
// undirected graph each link is made reciprocal.
// Returns true when the graph changed.
// Complexity: O(L·D) for L links and maximum degree D.
func (g *Graph[T]) Add(v T, links ...T) bool {
	i, changed := g.ensure(v)
	for _, l := range links {
		j, created := g.ensure(l)
		changed = g.link(i, j) || created || changed
	}
	if changed {
		g.invalidate()
	}

	return changed
}

// Set replaces the full link set of v. On an undirected graph neighbours
// that are dropped lose their link back to v and new neighbours gain one.
// Returns false, doing nothing, when v is absent.
func (g *Graph[T]) Set(v T, links ...T) bool {
	i, ok := g.index[v]
	if !ok {
		return false
	}

	next := make([]int, 0, len(links))
	for _, l := range links {
		j, _ := g.ensure(l)
		if !slices.Contains(next, j) {
			next = append(next, j)
		}
	}

	if !g.directed {
		for _, j := range g.vertices[i].links {
			if j != i && !slices.Contains(next, j) {
				g.unlink(j, i)
			}
		}
		for _, j := range next {
			if j != i {
				g.link1(j, i)
			}
		}
	}
	g.vertices[i].links = next
	g.invalidate()

	return true
}

// Remove deletes v and every link that points to it.
// Returns false when v is absent.
// Complexity: O(V + E).
func (g *Graph[T]) Remove(v T) bool {
	k, ok := g.index[v]
	if !ok {
		return false
	}

	severed := 0
	g.vertices = slices.Delete(g.vertices, k, k+1)
	for i := range g.vertices {
		kept := g.vertices[i].links[:0]
		for _, j := range g.vertices[i].links {
			switch {
			case j == k:
				severed++
			case j > k:
				kept = append(kept, j-1)
			default:
				kept = append(kept, j)
			}
		}
		g.vertices[i].links = kept
	}

	delete(g.index, v)
	for i := k; i < len(g.vertices); i++ {
		g.index[g.vertices[i].value] = i
	}
	g.invalidate()
	g.logger.Debug("graph: vertex removed",
		slog.Any("vertex", v),
		slog.Int("severed", severed),
		slog.Int("vertices", len(g.vertices)))

	return true
}

// Equal reports whether both graphs have the same directedness, the same
// vertex values and the same link set per vertex. Insertion order is ignored.
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.directed != other.directed || len(g.vertices) != len(other.vertices) {
		return false
	}
	for _, vx := range g.vertices {
		j, ok := other.index[vx.value]
		if !ok {
			return false
		}
		theirs := other.vertices[j].links
		if len(theirs) != len(vx.links) {
			return false
		}
		for _, l := range vx.links {
			if !other.linksTo(theirs, g.vertices[l].value) {
				return false
			}
		}
	}

	return true
}

// String renders one "v -> [a b]" line per vertex in insertion order.
func (g *Graph[T]) String() string {
	var sb strings.Builder
	for i, vx := range g.vertices {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%v -> %v", vx.value, g.values(vx.links))
	}

	return sb.String()
}

// ensure returns the arena index of v, creating a linkless vertex if needed.
func (g *Graph[T]) ensure(v T) (idx int, created bool) {
	if i, ok := g.index[v]; ok {
		return i, false
	}
	g.vertices = append(g.vertices, vertex[T]{value: v})
	idx = len(g.vertices) - 1
	g.index[v] = idx

	return idx, true
}

// link adds i→j, plus j→i on an undirected graph.
func (g *Graph[T]) link(i, j int) bool {
	added := g.link1(i, j)
	if !g.directed && i != j {
		added = g.link1(j, i) || added
	}

	return added
}

func (g *Graph[T]) link1(i, j int) bool {
	if slices.Contains(g.vertices[i].links, j) {
		return false
	}
	g.vertices[i].links = append(g.vertices[i].links, j)

	return true
}

func (g *Graph[T]) unlink(i, j int) {
	links := g.vertices[i].links
	if k := slices.Index(links, j); k >= 0 {
		g.vertices[i].links = slices.Delete(links, k, k+1)
	}
}

func (g *Graph[T]) linksTo(links []int, v T) bool {
	for _, l := range links {
		if g.vertices[l].value == v {
			return true
		}
	}

	return false
}

func (g *Graph[T]) values(idx []int) []T {
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = g.vertices[i].value
	}

	return out
}

// invalidate drops the derived adjacency matrix and every cached power.
func (g *Graph[T]) invalidate() {
	g.adj = nil
	if g.powers != nil {
		g.powers.Purge()
	}
}
