package main

import (
	"github.com/spf13/cobra"

	"github.com/tsgraph/tsgraph/internal/constants"
)

var unusedExportsFormat string

func unusedExportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CommandUnusedExports + " <path>...",
		Short: "List exports that nothing in the graph imports",
		Long: `Builds the dependency graph from the given entry paths and reports every
export that no import or re-export anywhere in the graph consumes. Exports
of entry modules and of node_modules paths are not reported.

Examples:
  tsgraph unused-exports src/
  tsgraph unused-exports --format json src/index.ts`,
		RunE: runUnusedExports,
	}
	cmd.Flags().StringVar(&unusedExportsFormat, "format", constants.OutputFormatText, "Output format: text, json")
	return cmd
}

func runUnusedExports(cmd *cobra.Command, args []string) error {
	uc, g, err := loadGraph(args)
	if err != nil {
		return err
	}
	findings, err := uc.UnusedExports(g)
	if err != nil {
		return err
	}

	if unusedExportsFormat == constants.OutputFormatJSON {
		return jsonOutput(findings)
	}
	return renderFindings(g, findings, "Total unused exports found", globalNoColor)
}
