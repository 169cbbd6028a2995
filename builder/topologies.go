// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/graph"
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4 // rim C_{n-1} needs at least 3 vertices
	minCompleteNodes = 1
)

func tooFew(method string, n, minimum int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
}

// plot adds vertices cfg.idFn(from..to-1) in ascending order.
func plot(g *graph.Graph[string], cfg builderConfig, from, to int) {
	for i := from; i < to; i++ {
		g.Add(cfg.idFn(i))
	}
}

// Cycle builds C_n: links i → (i+1) mod n for i = 0..n-1.
// On a directed graph this is a single oriented ring.
func Cycle(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		plot(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			g.Add(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Path builds P_n: links i → i+1 for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		plot(g, cfg, 0, n)
		for i := 0; i+1 < n; i++ {
			g.Add(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Star builds a hub CenterVertexID with n-1 leaves cfg.idFn(1..n-1).
// Directed graphs get spokes in both directions.
func Star(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		g.Add(CenterVertexID)
		for i := 1; i < n; i++ {
			spoke(g, cfg.idFn(i))
		}

		return nil
	}
}

// Wheel builds W_n: the rim C_{n-1} on cfg.idFn(0..n-2) plus a hub joined
// to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		g.Add(CenterVertexID)
		for i := 0; i < n-1; i++ {
			spoke(g, cfg.idFn(i))
		}

		return nil
	}
}

// Complete builds K_n without self-loops. Directed graphs get both
// orientations of every pair.
func Complete(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		plot(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				g.Add(u, v)
				if g.Directed() {
					g.Add(v, u)
				}
			}
		}

		return nil
	}
}

// spoke joins the hub and leaf, both ways on a directed graph.
func spoke(g *graph.Graph[string], leaf string) {
	g.Add(CenterVertexID, leaf)
	if g.Directed() {
		g.Add(leaf, CenterVertexID)
	}
}
