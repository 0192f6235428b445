package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "tsgraph"

	// ConfigFileName is the default config file name
	ConfigFileName = "tsgraph.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "TSGRAPH"
)

// Subcommand name constants
const (
	CommandUnusedExports     = "unused-exports"
	CommandFilesWithReexport = "files-with-reexports"
	CommandDepGraph          = "depgraph"
	CommandCycles            = "cycles"
	CommandAffected          = "affected"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)
