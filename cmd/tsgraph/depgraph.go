package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsgraph/tsgraph/internal/constants"
)

func depgraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CommandDepGraph + " <path>...",
		Short: "Print the module dependency graph as Graphviz DOT",
		Long: `Builds the dependency graph from the given entry paths and writes it to
stdout in Graphviz DOT format: one label line per module id, followed by
one edge line per forward adjacency.

Examples:
  tsgraph depgraph src/ > deps.dot
  dot -Tsvg deps.dot -o deps.svg`,
		RunE: runDepgraph,
	}
}

func runDepgraph(cmd *cobra.Command, args []string) error {
	_, g, err := loadGraph(args)
	if err != nil {
		return err
	}
	fmt.Print(g.Graph.Graphviz())
	return nil
}
