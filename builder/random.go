// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/graph"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse builds an Erdős–Rényi G(n, p) graph without self-loops.
// Undirected graphs draw once per unordered pair; directed graphs once per
// ordered pair. Requires WithSeed or WithRand.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, n, minRandomNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		plot(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					g.Add(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
