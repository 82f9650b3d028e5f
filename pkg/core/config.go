package core

// LintConfig holds rule configuration as it appears in a project config file.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled" json:"disabled,omitempty"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity" json:"severity,omitempty"`

	// Rules contains rule-specific options keyed by rule ID
	Rules map[string]RuleOptions `koanf:"rules" json:"rules,omitempty"`
}

// RuleOptions holds options for a single rule.
type RuleOptions map[string]any
