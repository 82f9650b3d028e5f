package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/pkg/lint"
	_ "github.com/leapstack-labs/guidelint/pkg/lint/rules"
)

func TestAllRulesRegistered(t *testing.T) {
	tests := []struct {
		id     string
		name   string
		group  string
		docURL string
	}{
		{"AV1536", "maintainability.switch_default", "maintainability", "https://csharpcodingguidelines.com/maintainability-guidelines/#AV1536"},
		{"AV1704", "naming.digits_in_identifiers", "naming", "https://csharpcodingguidelines.com/naming-guidelines/#AV1704"},
		{"AV2310", "documentation.inline_comments", "documentation", "https://csharpcodingguidelines.com/documentation-guidelines/#AV2310"},
	}

	all := lint.GetAll()
	require.Len(t, all, len(tests))
	for i, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rule, ok := lint.GetByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.id, all[i].ID(), "registry order")

			info := lint.GetRuleInfo(rule)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.group, info.Group)
			assert.Equal(t, tt.docURL, info.DocURL)
			assert.NotEmpty(t, info.Kinds)
			assert.NotEmpty(t, info.Rationale)
			assert.NotEmpty(t, info.Message)
			assert.Len(t, lint.GetByGroup(tt.group), 1)
		})
	}
}
