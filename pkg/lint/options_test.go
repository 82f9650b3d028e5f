package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

type markerOptions struct {
	Markers []string `mapstructure:"markers"`
	Limit   int      `mapstructure:"limit"`
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    map[string]any
		want    markerOptions
		wantErr string
	}{
		{name: "empty", opts: nil, want: markerOptions{}},
		{name: "slice", opts: map[string]any{"markers": []any{"A", "B"}}, want: markerOptions{Markers: []string{"A", "B"}}},
		{name: "scalar to slice", opts: map[string]any{"markers": "A"}, want: markerOptions{Markers: []string{"A"}}},
		{name: "weak int", opts: map[string]any{"limit": "3"}, want: markerOptions{Limit: 3}},
		{name: "unknown key", opts: map[string]any{"bogus": 1}, wantErr: "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got markerOptions
			err := DecodeOptions(tt.opts, &got)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringSliceOption(t *testing.T) {
	def := []string{"d"}
	assert.Equal(t, def, GetStringSliceOption(nil, "k", def))
	assert.Equal(t, []string{"a"}, GetStringSliceOption(map[string]any{"k": "a"}, "k", def))
	assert.Equal(t, []string{"a", "b"}, GetStringSliceOption(map[string]any{"k": []any{"a", "b"}}, "k", def))
	assert.Equal(t, def, GetStringSliceOption(map[string]any{"k": []any{"a", 1}}, "k", def))
	assert.Equal(t, def, GetStringSliceOption(map[string]any{"k": 7}, "k", def))
}

func TestValidateOptions(t *testing.T) {
	rules := []Rule{WrapRuleDef(RuleDef{ID: "AV2310", Kinds: []syntax.Kind{syntax.KindTrivia}, ConfigKeys: []string{"suppression_patterns"}})}

	ok := NewConfig().SetRuleOptions("AV2310", map[string]any{"suppression_patterns": []string{"x"}})
	assert.NoError(t, ValidateOptions(ok, rules))
	assert.NoError(t, ValidateOptions(nil, rules))

	unknownRule := NewConfig().SetRuleOptions("AV0000", map[string]any{"x": 1})
	err := ValidateOptions(unknownRule, rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule AV0000")

	unknownKey := NewConfig().SetRuleOptions("AV2310", map[string]any{"patterns": 1})
	err = ValidateOptions(unknownKey, rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no option "patterns"`)
}
