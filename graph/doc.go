// SPDX-License-Identifier: MIT

// Package graph answers reachability questions with linear algebra.
//
// A Graph[T] holds unique vertex values joined by links, directed or
// undirected. Its 0/1 adjacency matrix M (a *matrix.Real, rows and columns in
// vertex insertion order) is rebuilt lazily after any mutation, and powers
// M^n are memoised in a bounded LRU cache (github.com/hashicorp/golang-lru/v2)
// that is purged whenever the graph changes.
//
// Queries built on M:
//
//	PathLength(n)               – number of walks of length n (sum of M^n)
//	PathLengthFrom(v, n)        – some entry of row v in M^n equals n
//	PathLengthBetween(a, b, n)  – at least one walk of length n from a to b
//	Cycles(v)                   – depth-first cycle enumeration (directed only)
//
// Queries never panic or return errors: an absent vertex or negative length
// yields false, -1 or (nil, false).
//
// A Graph is not safe for concurrent use. Debug records about cache rebuilds
// and removals go to the *slog.Logger given with WithLogger.
package graph
