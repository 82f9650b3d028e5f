// Package core defines the shared vocabulary of guidelint.
//
// This package contains:
//   - Severity levels and their parsing
//   - RuleInfo, the rule metadata DTO used by the CLI and docs
//   - LintConfig, the project-level rule configuration
//
// pkg/core imports only the standard library. Every other package may depend
// on core, never the reverse.
package core
