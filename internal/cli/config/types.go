// Package config provides configuration management for the guidelint CLI.
//
// The shared rule configuration (LintConfig) is defined in pkg/core and
// re-exported here via type aliases for convenience.
package config

import "github.com/leapstack-labs/guidelint/pkg/core"

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// DocsConfig controls where rule documentation links point.
type DocsConfig struct {
	BaseURL string `koanf:"base_url"`
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Jobs         int         `koanf:"jobs"`
	Include      []string    `koanf:"include"`
	Exclude      []string    `koanf:"exclude"`
	MetricsFile  string      `koanf:"metrics_file"`
	Lint         *LintConfig `koanf:"lint"`
	Docs         *DocsConfig `koanf:"docs"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found. It is not read from configuration.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs   = 0      // GOMAXPROCS
	EnvPrefix     = "GUIDELINT_"
)

// ConfigFileNames are searched, in order, in each candidate directory.
var ConfigFileNames = []string{".guidelint.yaml", ".guidelint.yml", "guidelint.yaml", "guidelint.yml"}
