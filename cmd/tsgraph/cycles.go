package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsgraph/tsgraph/app"
	"github.com/tsgraph/tsgraph/internal/constants"
)

var cyclesFormat string

func cyclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CommandCycles + " <path>...",
		Short: "Report import cycles in the dependency graph",
		Long: `Builds the dependency graph from the given entry paths and prints one
"Cycle: [...]" line per detected cycle, each listing the absolute paths of
the modules on the cycle in traversal order.

Examples:
  tsgraph cycles src/`,
		RunE: runCycles,
	}
	cmd.Flags().StringVar(&cyclesFormat, "format", constants.OutputFormatText, "Output format: text, json")
	return cmd
}

func runCycles(cmd *cobra.Command, args []string) error {
	uc, g, err := loadGraph(args)
	if err != nil {
		return err
	}
	cycles := uc.Cycles(g)

	if cyclesFormat == constants.OutputFormatJSON {
		type cycleJSON struct {
			Paths []string `json:"paths"`
		}
		out := make([]cycleJSON, 0, len(cycles))
		for _, c := range cycles {
			out = append(out, cycleJSON{Paths: pathsOf(g, c.ModuleIDs)})
		}
		return jsonOutput(out)
	}

	for _, c := range cycles {
		fmt.Printf("Cycle: [%s]\n", strings.Join(pathsOf(g, c.ModuleIDs), " -> "))
	}
	return nil
}

func pathsOf(g *app.GraphResult, ids []int) []string {
	paths := make([]string, len(ids))
	for i, id := range ids {
		paths[i] = g.Symbols.Module(id).Path
	}
	return paths
}
