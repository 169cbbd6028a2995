// SPDX-License-Identifier: MIT

// Package lvalgebra is a dense matrix engine with dual real/complex
// semantics and a graph layer that answers reachability questions through
// adjacency-matrix powers.
//
// Layout, leaves first:
//
//	scalar/            – dual-mode Number, elementary functions with complex
//	                     continuation, Kahan sums, integer helpers
//	matrix/            – generic Grid[T], the Numeric contract, Real and
//	                     Complex matrices, Vector
//	graph/             – Graph[T] with an LRU cache of adjacency powers,
//	                     walk counting and cycle enumeration
//	builder/           – cycle, path, star, wheel, complete and seeded
//	                     random graph fixtures
//	internal/document  – YAML, TOML and JSON workload files
//	internal/config    – viper configuration with LVALGEBRA_* overrides
//	internal/logging   – slog text and JSON loggers
//	cmd/lvalgebra      – cobra command line front end
//
// Quick example:
//
//	m, _ := matrix.NewRealFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := m.Inverse()       // [[0.6 -0.7] [-0.2 0.4]]
//	r := scalar.Sqrt(scalar.Real(-4)) // 2i, promoted to complex
//
//	g := graph.New[string](graph.WithDirected())
//	g.Add("A", "B"); g.Add("B", "C"); g.Add("C", "A")
//	g.PathLength(3)  // 3
//	g.Cycles("A")    // [[A B C A]], true
//
// Engine operations are synchronous and allocate fresh results. Determinants
// use cofactor expansion, so cost grows factorially with size.
package lvalgebra
