// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/graph"
)

// Constructor applies one deterministic mutation to g using the resolved
// configuration. Constructors validate their parameters before touching g
// and return sentinel errors, never panics.
type Constructor func(g *graph.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; nothing is rolled back.
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.Graph[string], error) {
	g := graph.New[string](gopts...)
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Named returns the constructor for a topology name: "cycle", "path",
// "star", "wheel" or "complete".
func Named(kind string, n int) (Constructor, error) {
	switch kind {
	case "cycle":
		return Cycle(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, kind)
	}
}
