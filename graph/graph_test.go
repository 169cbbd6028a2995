// SPDX-License-Identifier: MIT

package graph_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/graph"
)

// links is a test shorthand for Links that fails on an absent vertex.
func links(t *testing.T, g *graph.Graph[string], v string) []string {
	t.Helper()
	out, ok := g.Links(v)
	require.Truef(t, ok, "vertex %q not plotted", v)

	return out
}

func TestAdd_Directed(t *testing.T) {
	g := graph.New[string](graph.WithDirected())
	require.True(t, g.Directed())

	require.True(t, g.Add("A", "B", "C"))
	require.Equal(t, 3, g.VertexCount())
	require.True(t, g.IsPlotted("C"))
	require.False(t, g.IsPlotted("Z"))

	// targets are created linkless
	assert.Empty(t, links(t, g, "B"))
	assert.Equal(t, []string{"B", "C"}, links(t, g, "A"))

	// existing vertex: union, duplicates ignored
	require.True(t, g.Add("A", "C", "D"))
	assert.Equal(t, []string{"B", "C", "D"}, links(t, g, "A"))
	require.False(t, g.Add("A", "B"))

	// a lone vertex is still a change
	require.True(t, g.Add("E"))
	require.False(t, g.Add("E"))

	if diff := cmp.Diff([]string{"A", "B", "C", "D", "E"}, g.Vertices()); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_UndirectedIsReciprocal(t *testing.T) {
	g := graph.New[string]()
	require.False(t, g.Directed())

	g.Add("A", "B")
	assert.Equal(t, []string{"B"}, links(t, g, "A"))
	assert.Equal(t, []string{"A"}, links(t, g, "B"))

	g.Add("B", "C")
	assert.Equal(t, []string{"A", "C"}, links(t, g, "B"))
	assert.Equal(t, []string{"B"}, links(t, g, "C"))

	// self-link stored once
	g.Add("C", "C")
	assert.Equal(t, []string{"B", "C"}, links(t, g, "C"))
}

func TestSet(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		g := graph.New[string]()
		require.False(t, g.Set("A", "B"))
		require.Zero(t, g.VertexCount())
	})

	t.Run("directed replaces", func(t *testing.T) {
		g := graph.New[string](graph.WithDirected())
		g.Add("A", "B", "C")
		require.True(t, g.Set("A", "C", "D", "C"))
		assert.Equal(t, []string{"C", "D"}, links(t, g, "A"))
		assert.True(t, g.IsPlotted("B"))
		assert.Empty(t, links(t, g, "D"))
	})

	t.Run("undirected updates neighbours", func(t *testing.T) {
		g := graph.New[string]()
		g.Add("A", "B", "C")
		require.True(t, g.Set("A", "C", "D"))

		assert.Equal(t, []string{"C", "D"}, links(t, g, "A"))
		assert.Empty(t, links(t, g, "B"))
		assert.Equal(t, []string{"A"}, links(t, g, "C"))
		assert.Equal(t, []string{"A"}, links(t, g, "D"))

		require.True(t, g.Set("A"))
		assert.Empty(t, links(t, g, "C"))
		assert.Empty(t, links(t, g, "D"))
	})
}

func TestRemove(t *testing.T) {
	g := graph.New[string](graph.WithDirected())
	g.Add("A", "B")
	g.Add("B", "C")
	g.Add("C", "A", "B")

	require.False(t, g.Remove("Z"))
	require.True(t, g.Remove("A"))
	require.False(t, g.IsPlotted("A"))
	require.Equal(t, 2, g.VertexCount())

	assert.Equal(t, []string{"C"}, links(t, g, "B"))
	assert.Equal(t, []string{"B"}, links(t, g, "C"))
	_, ok := g.Links("A")
	assert.False(t, ok)

	// indices shift without corrupting links
	g.Add("D", "C")
	assert.Equal(t, []string{"C"}, links(t, g, "D"))
	if diff := cmp.Diff([]string{"B", "C", "D"}, g.Vertices()); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualAndString(t *testing.T) {
	a := graph.New[string](graph.WithDirected())
	a.Add("A", "B", "C")
	a.Add("B", "C")

	b := graph.New[string](graph.WithDirected())
	b.Add("B", "C")
	b.Add("A", "C", "B")

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	b.Add("C", "A")
	require.False(t, a.Equal(b))

	u := graph.New[string]()
	u.Add("A", "B", "C")
	u.Add("B", "C")
	require.False(t, a.Equal(u))

	var nilGraph *graph.Graph[string]
	require.False(t, a.Equal(nilGraph))
	require.True(t, nilGraph.Equal(nil))

	assert.Equal(t, "A -> [B C]\nB -> [C]\nC -> []", a.String())
	assert.Equal(t, "", graph.New[int]().String())
}

func TestIntVertices(t *testing.T) {
	g := graph.New[int](graph.WithDirected())
	g.Add(1, 2)
	g.Add(2, 3)
	g.Add(3, 1)
	assert.Equal(t, "1 -> [2]\n2 -> [3]\n3 -> [1]", g.String())
	assert.EqualValues(t, 3, g.PathLength(3))
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := graph.New[string](graph.WithDirected(), graph.WithLogger(logger))
	g.Add("A", "B")
	g.PathLength(2)
	g.Remove("B")

	out := buf.String()
	assert.Contains(t, out, "graph: adjacency rebuilt")
	assert.Contains(t, out, "graph: adjacency power computed")
	assert.Contains(t, out, "graph: vertex removed")
	assert.Contains(t, out, "severed=1")

	// a nil logger keeps the default
	require.NotPanics(t, func() {
		h := graph.New[string](graph.WithLogger(nil))
		h.Add("A", "B")
		h.Remove("A")
	})
}
