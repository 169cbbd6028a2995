// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalgebra/graph"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Adjacency-matrix queries on a document graph",
	}
	cmd.AddCommand(newPathsCmd(a), newCyclesCmd(a), newAdjacencyCmd(a))

	return cmd
}

// loadGraph builds the named graph with the configured power cache size.
func (a *app) loadGraph(path, name string) (*graph.Graph[string], error) {
	doc, err := a.load(path)
	if err != nil {
		return nil, err
	}

	return doc.Graph(name,
		graph.WithLogger(a.logger),
		graph.WithPowerCacheSize(a.cfg.Graph.PowerCacheSize))
}

func newPathsCmd(a *app) *cobra.Command {
	var name, from, to string
	var length int
	c := &cobra.Command{
		Use:   "paths FILE",
		Short: "Count walks of a length, or test them from a vertex or between two",
		Long: "Without --from or --to, prints the number of walks of the given length.\n" +
			"With --from only, reports whether some entry of that row of M^n equals n.\n" +
			"With both, reports whether a walk of that length joins them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0], name)
			if err != nil {
				return err
			}
			switch {
			case from == "" && to == "":
				n := g.PathLength(length)
				if n < 0 {
					return fmt.Errorf("negative path length %d", length)
				}

				return a.emit(countResult{Query: "walks", Length: length, Count: n})
			case from != "" && to == "":
				return a.emit(boolResult{Query: "from " + from, Length: length, Result: g.PathLengthFrom(from, length)})
			case from != "" && to != "":
				return a.emit(boolResult{
					Query:  "between " + from + " and " + to,
					Length: length,
					Result: g.PathLengthBetween(from, to, length),
				})
			default:
				return fmt.Errorf("--to needs --from")
			}
		},
	}
	c.Flags().StringVar(&name, "name", "", "graph name in the document")
	c.Flags().IntVar(&length, "length", 1, "walk length n")
	c.Flags().StringVar(&from, "from", "", "origin vertex")
	c.Flags().StringVar(&to, "to", "", "target vertex")
	_ = c.MarkFlagRequired("name")

	return c
}

func newCyclesCmd(a *app) *cobra.Command {
	var name, vertex string
	c := &cobra.Command{
		Use:   "cycles FILE",
		Short: "Enumerate the cycles through a vertex of a directed graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0], name)
			if err != nil {
				return err
			}
			cycles, ok := g.Cycles(vertex)
			if !ok {
				if !g.Directed() {
					return fmt.Errorf("graph %q is undirected", name)
				}

				return fmt.Errorf("vertex %q is not in graph %q", vertex, name)
			}

			return a.emit(cyclesResult{Vertex: vertex, Cycles: cycles})
		},
	}
	c.Flags().StringVar(&name, "name", "", "graph name in the document")
	c.Flags().StringVar(&vertex, "vertex", "", "start vertex")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("vertex")

	return c
}

func newAdjacencyCmd(a *app) *cobra.Command {
	var name string
	c := &cobra.Command{
		Use:   "adjacency FILE",
		Short: "Print the 0/1 adjacency matrix in lexical vertex order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0], name)
			if err != nil {
				return err
			}

			return a.emit(newMatrixResult("adjacency", g.AdjacencyMatrix()))
		},
	}
	c.Flags().StringVar(&name, "name", "", "graph name in the document")
	_ = c.MarkFlagRequired("name")

	return c
}
