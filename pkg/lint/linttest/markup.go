package linttest

import (
	"strings"

	"github.com/leapstack-labs/guidelint/pkg/token"
)

// Fixture is fixture text with its expected spans.
type Fixture struct {
	Source string
	Spans  []token.Span
}

// Parse strips [| |] markers from markup and records the spans they enclosed.
// An unterminated marker extends to the end of the text.
func Parse(markup string) Fixture {
	var sb strings.Builder
	var spans []token.Span
	start := -1
	for i := 0; i < len(markup); {
		switch {
		case strings.HasPrefix(markup[i:], "[|"):
			start = sb.Len()
			i += 2
		case strings.HasPrefix(markup[i:], "|]") && start >= 0:
			spans = append(spans, token.NewSpan(start, sb.Len()))
			start = -1
			i += 2
		default:
			sb.WriteByte(markup[i])
			i++
		}
	}
	if start >= 0 {
		spans = append(spans, token.NewSpan(start, sb.Len()))
	}
	return Fixture{Source: sb.String(), Spans: spans}
}
