package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternSet_Match(t *testing.T) {
	set := MustCompilePatterns(DefaultSuppressionPatterns)

	tests := []struct {
		text string
		want bool
	}{
		{"ReSharper disable PossibleNullReferenceException", true},
		{"ReSharper   restore   PossibleNullReferenceException", true},
		{"ReSharper disable once UnusedVariable", true},
		{"resharper disable Foo", false},
		{"ReSharper", false},
		{"Example", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Match(tt.text))
		})
	}
}

func TestPatternSet_Empty(t *testing.T) {
	var nilSet *PatternSet
	assert.False(t, nilSet.Match("ReSharper disable X"))
	assert.Nil(t, nilSet.Patterns())

	set, err := CompilePatterns([]string{"", "   "})
	require.NoError(t, err)
	assert.False(t, set.Match(""))
	assert.Empty(t, set.Patterns())
}

func TestCompilePatterns_Invalid(t *testing.T) {
	_, err := CompilePatterns([]string{"noqa["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noqa[")

	assert.Panics(t, func() { MustCompilePatterns([]string{"noqa["}) })
}

func TestPatternSet_PreservesOrder(t *testing.T) {
	set := MustCompilePatterns([]string{"b *", "a *"})
	assert.Equal(t, []string{"b *", "a *"}, set.Patterns())
}
