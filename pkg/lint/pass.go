package lint

import (
	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

// Pass carries everything one rule may read while checking one unit.
// A Pass is created per rule per unit and is never shared between rules.
type Pass struct {
	Unit    *syntax.Unit
	Model   syntax.SemanticModel
	Options map[string]any

	rule Rule
	memo map[string]any
}

func newPass(rule Rule, unit *syntax.Unit, model syntax.SemanticModel, opts map[string]any) *Pass {
	return &Pass{Unit: unit, Model: model, Options: opts, rule: rule}
}

// Rule returns the rule being run.
func (p *Pass) Rule() Rule {
	return p.rule
}

// Memo returns the value stored under key, computing it with fn on first use.
// Values live only as long as the pass: one rule over one unit.
func (p *Pass) Memo(key string, fn func() any) any {
	if v, ok := p.memo[key]; ok {
		return v
	}
	if p.memo == nil {
		p.memo = make(map[string]any)
	}
	v := fn()
	p.memo[key] = v
	return v
}

// Diagnostic creates a diagnostic for the running rule at span.
// Positions are resolved by the analyzer once all rules have run.
func (p *Pass) Diagnostic(span token.Span, message string) Diagnostic {
	return Diagnostic{
		RuleID:           p.rule.ID(),
		Severity:         p.rule.DefaultSeverity(),
		Message:          message,
		Span:             span,
		DocumentationURL: BuildDocURL(p.rule.Group(), p.rule.ID()),
		ImpactScore:      p.rule.Impact().Int(),
	}
}
