package classify

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultSuppressionPatterns match the inspection comments of ReSharper and
// Rider, e.g. "// ReSharper disable once UnusedVariable".
var DefaultSuppressionPatterns = []string{
	"ReSharper disable *",
	"ReSharper restore *",
}

type compiledPattern struct {
	raw  string
	glob glob.Glob
}

// PatternSet is an ordered set of glob patterns matched against comment
// bodies. The zero value matches nothing.
type PatternSet struct {
	patterns []compiledPattern
}

// CompilePatterns compiles glob patterns such as "ReSharper disable *".
// Runs of whitespace in patterns and in matched text are equivalent to a
// single space.
func CompilePatterns(patterns []string) (*PatternSet, error) {
	set := &PatternSet{patterns: make([]compiledPattern, 0, len(patterns))}
	for _, raw := range patterns {
		normalized := normalizeSpace(raw)
		if normalized == "" {
			continue
		}
		g, err := glob.Compile(normalized)
		if err != nil {
			return nil, fmt.Errorf("invalid suppression pattern %q: %w", raw, err)
		}
		set.patterns = append(set.patterns, compiledPattern{raw: raw, glob: g})
	}
	return set, nil
}

// MustCompilePatterns is like CompilePatterns but panics on error.
func MustCompilePatterns(patterns []string) *PatternSet {
	set, err := CompilePatterns(patterns)
	if err != nil {
		panic(err)
	}
	return set
}

// Match reports whether text matches any pattern.
func (s *PatternSet) Match(text string) bool {
	if s == nil || len(s.patterns) == 0 {
		return false
	}
	text = normalizeSpace(text)
	for _, p := range s.patterns {
		if p.glob.Match(text) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns in order.
func (s *PatternSet) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.raw
	}
	return out
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
