package main

import (
	"github.com/spf13/cobra"

	"github.com/tsgraph/tsgraph/internal/constants"
)

var filesWithReexportsFormat string

func filesWithReexportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CommandFilesWithReexport + " <path>...",
		Short: "List re-export declarations found in the graph",
		Long: `Builds the dependency graph from the given entry paths and reports every
export-all or named re-export declaration whose owning module is not itself
an entry point.

Examples:
  tsgraph files-with-reexports src/`,
		RunE: runFilesWithReexports,
	}
	cmd.Flags().StringVar(&filesWithReexportsFormat, "format", constants.OutputFormatText, "Output format: text, json")
	return cmd
}

func runFilesWithReexports(cmd *cobra.Command, args []string) error {
	uc, g, err := loadGraph(args)
	if err != nil {
		return err
	}
	findings, err := uc.FilesWithReExports(g)
	if err != nil {
		return err
	}

	if filesWithReexportsFormat == constants.OutputFormatJSON {
		return jsonOutput(findings)
	}
	return renderFindings(g, findings, "Total re-exports found", globalNoColor)
}
