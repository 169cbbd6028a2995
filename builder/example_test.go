// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/builder"
	"github.com/katalvlaran/lvalgebra/graph"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]graph.Option{graph.WithDirected()},
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)
	fmt.Println(g.PathLength(3))
	// Output:
	// A -> [B]
	// B -> [C]
	// C -> [A]
	// 3
}
