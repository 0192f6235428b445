// Package config loads tsgraph.yaml and merges it with CLI flags via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tsgraph/tsgraph/internal/constants"
)

// Config is the full set of options the CLI and file-discovery step read.
// Extensions/Aliases feed the resolver; Extensions/Ignore feed file
// discovery; NoColor feeds the annotation presenter.
type Config struct {
	// Extensions is the priority order tried when a specifier has no
	// extension of its own.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Aliases maps a specifier prefix to a replacement path prefix,
	// applied before relative/absolute/package-style resolution.
	Aliases map[string]string `mapstructure:"aliases" yaml:"aliases"`

	// Ignore holds glob patterns excluded from file discovery, in addition
	// to whatever .gitignore already excludes.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// IncludeNodeModules is loaded but not read by any analysis: re-export
	// and unused-export output always omit node_modules paths, and cycle
	// and affected output always include them.
	IncludeNodeModules bool `mapstructure:"include_node_modules" yaml:"include_node_modules"`

	// NoColor disables annotation coloring regardless of TTY detection.
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

// DefaultConfig returns the configuration used when no tsgraph.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		Extensions:         []string{".ts", ".tsx", ".js", ".jsx", ".json"},
		Aliases:            map[string]string{},
		Ignore:             []string{"**/*.test.ts", "**/*.test.tsx", "**/*.spec.ts"},
		IncludeNodeModules: false,
		NoColor:            false,
	}
}

// candidateFilenames are the names searched for in LoadConfig's directory walk.
var candidateFilenames = []string{
	constants.ConfigFileName,
	"tsgraph.yml",
	"." + constants.ConfigFileName,
	".tsgraph.yml",
}

// LoadConfig discovers and loads tsgraph.yaml starting from targetPath's
// directory and searching upward to the filesystem root. If configPath is
// non-empty it is used directly, bypassing discovery. Absence of any config
// file is not an error: DefaultConfig applies, subject to any TSGRAPH_* env
// overrides.
func LoadConfig(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = discoverConfigFile(targetPath)
	}
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// newViper sets up env-var overrides on top of whatever file gets read:
// TSGRAPH_NO_COLOR, TSGRAPH_INCLUDE_NODE_MODULES, etc. take precedence over
// both tsgraph.yaml and the defaults below, following constants.EnvVarPrefix.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("extensions", defaults.Extensions)
	v.SetDefault("aliases", defaults.Aliases)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("include_node_modules", defaults.IncludeNodeModules)
	v.SetDefault("no_color", defaults.NoColor)
	return v
}

// Validate rejects configurations the resolver or file discovery could not
// act on sensibly.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions: at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("extensions: %q must start with '.'", ext)
		}
	}
	return nil
}

func discoverConfigFile(targetPath string) string {
	if targetPath == "" {
		return ""
	}
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return ""
	}
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	volume := filepath.VolumeName(absPath)
	for dir := absPath; ; dir = filepath.Dir(dir) {
		if found := searchConfigInDirectory(dir); found != "" {
			return found
		}
		parent := filepath.Dir(dir)
		if parent == dir ||
			dir == volume ||
			(volume != "" && dir == volume+string(filepath.Separator)) {
			break
		}
	}
	return ""
}

func searchConfigInDirectory(dir string) string {
	for _, candidate := range candidateFilenames {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
