package lint

import (
	"fmt"

	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "AV1536"
	Name        string        // Human-readable name, e.g., "maintainability.switch_default"
	Group       string        // Category, e.g., "naming", "documentation", "maintainability"
	Description string        // Human-readable description
	Message     string        // Text of the reported diagnostic
	Severity    core.Severity // Default severity
	Kinds       []syntax.Kind // Element kinds the rule is dispatched for
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)
	Impact      ImpactLevel   // Weight of a violation; zero means ImpactMedium

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one element and returns diagnostics.
// It must only read the pass and the element; its output is never visible to
// other rules.
type CheckFunc func(pass *Pass, el syntax.Element) []Diagnostic

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a guideline violation.
type Diagnostic struct {
	RuleID   string         `json:"rule_id"`
	Severity core.Severity  `json:"severity"`
	Message  string         `json:"message"`
	Span     token.Span     `json:"span"`
	Pos      token.Position `json:"pos"`     // resolved start of Span
	EndPos   token.Position `json:"end_pos"` // resolved end of Span

	// Remediation metadata
	DocumentationURL string `json:"documentation_url,omitempty"`
	ImpactScore      int    `json:"impact_score,omitempty"` // 0-100
}

// String formats the diagnostic on one stable line: start:end RULE message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s %s %s", d.Span, d.RuleID, d.Severity, d.Message)
}

// =============================================================================
// Rule Interface
// =============================================================================

// Rule is the interface all rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "AV1704"
	ID() string

	// Name returns the human-readable name, e.g., "naming.digits_in_identifiers"
	Name() string

	// Group returns the category, e.g., "naming"
	Group() string

	// Description returns a human-readable description
	Description() string

	// Message returns the text the rule reports
	Message() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Kinds returns the element kinds this rule is dispatched for
	Kinds() []syntax.Kind

	// Impact returns the weight of a single violation
	Impact() ImpactLevel

	// Check analyzes one element.
	Check(pass *Pass, el syntax.Element) []Diagnostic

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	kinds := make([]string, 0, len(r.Kinds()))
	for _, k := range r.Kinds() {
		kinds = append(kinds, k.String())
	}
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		Message:         r.Message(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Kinds:           kinds,
		DocURL:          BuildDocURL(r.Group(), r.ID()),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

// =============================================================================
// RuleDef Wrapper
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef converts a RuleDef to a Rule.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) Message() string                { return w.def.Message }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) Kinds() []syntax.Kind           { return w.def.Kinds }
func (w *wrappedRuleDef) Rationale() string              { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string             { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string            { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string                    { return w.def.Fix }

func (w *wrappedRuleDef) Impact() ImpactLevel {
	if w.def.Impact == 0 {
		return ImpactMedium
	}
	return w.def.Impact
}

func (w *wrappedRuleDef) Check(pass *Pass, el syntax.Element) []Diagnostic {
	if w.def.Check == nil {
		return nil
	}
	return w.def.Check(pass, el)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
