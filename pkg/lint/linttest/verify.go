package linttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/pkg/lint"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// Run analyzes unit with the registered rules named by ids.
func Run(t testing.TB, unit *syntax.Unit, ids ...string) []lint.Diagnostic {
	t.Helper()
	return RunWithConfig(t, unit, nil, ids...)
}

// RunWithConfig is like Run with rule options and severities from cfg.
func RunWithConfig(t testing.TB, unit *syntax.Unit, cfg *lint.Config, ids ...string) []lint.Diagnostic {
	t.Helper()
	var rules []lint.Rule
	for _, id := range ids {
		rule, ok := lint.GetByID(id)
		require.True(t, ok, "rule %s is not registered", id)
		rules = append(rules, rule)
	}
	diags, err := lint.NewAnalyzer(cfg, lint.WithRules(rules)).Analyze(context.Background(), unit, nil)
	require.NoError(t, err)
	return diags
}

// Verify runs rule id over unit and checks that it reports exactly the
// fixture's marked spans, in order, with the given messages. A single message
// applies to every span.
func Verify(t testing.TB, unit *syntax.Unit, fx Fixture, id string, messages ...string) []lint.Diagnostic {
	t.Helper()
	diags := Run(t, unit, id)
	require.Len(t, diags, len(fx.Spans), "diagnostics:\n%s", lint.Golden(diags))
	for i, d := range diags {
		assert.Equal(t, id, d.RuleID)
		assert.Equal(t, fx.Spans[i], d.Span, "diagnostic %d: %s", i, d)
		switch {
		case len(messages) == 1:
			assert.Equal(t, messages[0], d.Message)
		case i < len(messages):
			assert.Equal(t, messages[i], d.Message)
		}
	}
	return diags
}
