// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/graph"
)

// ExampleGraph_Cycles enumerates the cycles of a directed triangle and counts
// its walks through adjacency powers.
func ExampleGraph_Cycles() {
	g := graph.New[string](graph.WithDirected())
	g.Add("A", "B")
	g.Add("B", "C")
	g.Add("C", "A")

	cycles, _ := g.Cycles("A")
	fmt.Println(cycles)
	fmt.Println(g.PathLength(3))

	g.Remove("A")
	fmt.Println(g.PathLength(2))
	fmt.Println(g)
	// Output:
	// [[A B C A]]
	// 3
	// 0
	// B -> [C]
	// C -> []
}

// ExampleNew_undirected shows that one call links both endpoints.
func ExampleNew_undirected() {
	g := graph.New[string]()
	g.Add("A", "B")
	fmt.Println(g)
	fmt.Println(g.PathLengthBetween("B", "A", 1))
	// Output:
	// A -> [B]
	// B -> [A]
	// true
}
