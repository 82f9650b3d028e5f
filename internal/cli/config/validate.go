package config

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/leapstack-labs/guidelint/pkg/core"
)

var outputFormats = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"md":       true,
	"json":     true,
	"sarif":    true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !outputFormats[c.OutputFormat] {
		return fmt.Errorf("unknown output format %q (want auto, text, markdown, json or sarif)", c.OutputFormat)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for _, patterns := range [][]string{c.Include, c.Exclude} {
		for _, p := range patterns {
			if _, err := glob.Compile(p, '/'); err != nil {
				return fmt.Errorf("invalid glob %q: %w", p, err)
			}
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
			}
		}
	}
	return nil
}
