package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsgraph/tsgraph/internal/constants"
)

var (
	affectedEntries     []string
	affectedChanged     []string
	affectedFormat      string
	affectedEntriesOnly bool
)

func affectedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CommandAffected,
		Short: "List modules (or, with --entries-only, entry points) affected by changed files",
		Long: `Builds the dependency graph from --entries and reports every module
reachable from --changed by following the inverse dependency graph,
optionally restricted to entry modules only.

Examples:
  tsgraph affected --entries src/index.ts --changed src/lib/util.ts
  tsgraph affected --entries src/index.ts --changed src/lib/util.ts --entries-only`,
		RunE: runAffected,
	}
	cmd.Flags().StringSliceVar(&affectedEntries, "entries", nil, "entry paths to build the graph from (required)")
	cmd.Flags().StringSliceVar(&affectedChanged, "changed", nil, "changed file paths (required)")
	cmd.Flags().BoolVar(&affectedEntriesOnly, "entries-only", false, "restrict results to entry modules")
	cmd.Flags().StringVar(&affectedFormat, "format", constants.OutputFormatText, "Output format: text, json")
	return cmd
}

func runAffected(cmd *cobra.Command, args []string) error {
	if len(affectedEntries) == 0 {
		return fmt.Errorf("--entries is required")
	}
	if len(affectedChanged) == 0 {
		return fmt.Errorf("--changed is required")
	}

	uc, g, err := loadGraph(affectedEntries)
	if err != nil {
		return err
	}

	affected, err := uc.Affected(g, affectedChanged, affectedEntriesOnly)
	if err != nil {
		return err
	}

	if affectedFormat == constants.OutputFormatJSON {
		return jsonOutput(affected)
	}
	fmt.Printf("Affected: [%s]\n", strings.Join(affected, ", "))
	return nil
}
