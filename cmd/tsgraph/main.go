package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsgraph/tsgraph/internal/constants"
	"github.com/tsgraph/tsgraph/internal/version"
)

var Version = version.Version

func main() {
	rootCmd := &cobra.Command{
		Use:   constants.ToolName,
		Short: constants.ToolName + " - JavaScript/TypeScript module dependency graph analyzer",
		Long: `tsgraph builds a file-level module dependency graph for a JavaScript or
TypeScript project and answers questions over it: which exports are never
imported, which files re-export from another module, where import cycles
exist, and which entry points a change touches.`,
		Version: Version,
	}

	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "path to "+constants.ConfigFileName+" (default: discovered upward from the first path argument)")
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "disable annotation coloring")

	rootCmd.AddCommand(unusedExportsCmd())
	rootCmd.AddCommand(filesWithReexportsCmd())
	rootCmd.AddCommand(depgraphCmd())
	rootCmd.AddCommand(cyclesCmd())
	rootCmd.AddCommand(affectedCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("%s version %s\n", constants.ToolName, version.GetVersion())
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
