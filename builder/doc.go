// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph.Graph[string] fixtures:
// cycles, paths, stars, wheels, complete graphs and seeded random graphs.
//
// Constructors are composed through BuildGraph, which creates the graph with
// the given graph options, resolves builder options (vertex ID scheme, RNG)
// and applies each constructor in order:
//
//	g, err := builder.BuildGraph(
//		[]graph.Option{graph.WithDirected()},
//		[]builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(4),
//	)
//	// A -> [B], B -> [C], C -> [D], D -> [A]
//
// The same inputs, options and seed always produce the same graph, including
// vertex insertion order and therefore adjacency-matrix layout.
package builder
