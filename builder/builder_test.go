// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/builder"
	"github.com/katalvlaran/lvalgebra/graph"
)

var directed = []graph.Option{graph.WithDirected()}

func build(t *testing.T, gopts []graph.Option, cons ...builder.Constructor) *graph.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSymbolIDs()}, cons...)
	require.NoError(t, err)

	return g
}

func TestCycle(t *testing.T) {
	g := build(t, directed, builder.Cycle(4))
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	// an oriented ring has exactly one walk of every length from each vertex
	for _, k := range []int{1, 2, 4, 7} {
		assert.EqualValuesf(t, 4, g.PathLength(k), "k=%d", k)
	}
	assert.True(t, g.PathLengthBetween("A", "A", 4))
	assert.False(t, g.PathLengthBetween("A", "A", 3))

	cycles, ok := g.Cycles("A")
	require.True(t, ok)
	if diff := cmp.Diff([][]string{{"A", "B", "C", "D", "A"}}, cycles); diff != "" {
		t.Errorf("Cycles mismatch (-want +got):\n%s", diff)
	}

	u := build(t, nil, builder.Cycle(5))
	assert.EqualValues(t, 10, u.PathLength(1))
}

func TestPathAndStar(t *testing.T) {
	p := build(t, nil, builder.Path(4))
	assert.EqualValues(t, 6, p.PathLength(1))
	assert.True(t, p.PathLengthBetween("A", "D", 3))
	assert.False(t, p.PathLengthBetween("A", "D", 2))

	s := build(t, nil, builder.Star(5))
	assert.Equal(t, 5, s.VertexCount())
	assert.Equal(t, []string{"Center", "B", "C", "D", "E"}, s.Vertices())
	assert.EqualValues(t, 8, s.PathLength(1))

	ds := build(t, directed, builder.Star(3))
	leaves, ok := ds.Links(builder.CenterVertexID)
	require.True(t, ok)
	assert.Equal(t, []string{"B", "C"}, leaves)
	back, _ := ds.Links("B")
	assert.Equal(t, []string{builder.CenterVertexID}, back)
}

func TestWheel(t *testing.T) {
	g := build(t, nil, builder.Wheel(5))
	assert.Equal(t, 5, g.VertexCount())
	// rim of 4 edges plus 4 spokes, each counted in both directions
	assert.EqualValues(t, 16, g.PathLength(1))
	hub, _ := g.Links(builder.CenterVertexID)
	assert.Equal(t, []string{"A", "B", "C", "D"}, hub)
}

func TestComplete(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		want := int64(n * (n - 1))
		assert.EqualValuesf(t, want, build(t, nil, builder.Complete(n)).PathLength(1), "undirected K_%d", n)
		assert.EqualValuesf(t, want, build(t, directed, builder.Complete(n)).PathLength(1), "directed K_%d", n)
	}
}

func TestRandomSparse(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(7)}

	empty, err := builder.BuildGraph(nil, seeded, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, empty.VertexCount())
	assert.Zero(t, empty.PathLength(1))

	full, err := builder.BuildGraph(directed, seeded, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.EqualValues(t, 30, full.PathLength(1))

	a, err := builder.BuildGraph(directed, seeded, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	b, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))},
		builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must yield the same graph")
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		con   builder.Constructor
		want  error
	}{
		{"cycle", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"path", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"star", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"wheel", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"probability", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.con)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.EqualError(t, err, "BuildGraph: Cycle: n=2 < min=3: builder: parameter too small")
}

func TestNamed(t *testing.T) {
	for _, kind := range []string{"cycle", "path", "star", "wheel", "complete"} {
		c, err := builder.Named(kind, 4)
		require.NoError(t, err, kind)
		require.NotNil(t, c, kind)
	}

	_, err := builder.Named("hexagon", 6)
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))

	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equalf(t, want, builder.ExcelColumnIDFn(idx), "idx=%d", idx)
	}

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
}
