package linttest

import (
	"strings"

	"github.com/leapstack-labs/guidelint/pkg/token"
)

// ScanTrivia finds the comments and preprocessor directives of C#-like
// source text. String and character literals are skipped. Inactive
// conditional branches are not detected.
func ScanTrivia(src string) []token.Trivia {
	var trivia []token.Trivia
	lineStart := true
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			lineStart = true
			i++
			continue
		case c == ' ' || c == '\t' || c == '\r':
			i++
			continue
		case c == '#' && lineStart:
			end := lineEnd(src, i)
			trivia = append(trivia, token.Trivia{Kind: token.Directive, Text: src[i:end], Span: token.NewSpan(i, end)})
			i = end
		case strings.HasPrefix(src[i:], "//"):
			end := lineEnd(src, i)
			trivia = append(trivia, token.Trivia{Kind: token.LineComment, Text: src[i:end], Span: token.NewSpan(i, end)})
			i = end
		case strings.HasPrefix(src[i:], "/*"):
			end := len(src)
			if j := strings.Index(src[i+2:], "*/"); j >= 0 {
				end = i + 2 + j + 2
			}
			trivia = append(trivia, token.Trivia{Kind: token.BlockComment, Text: src[i:end], Span: token.NewSpan(i, end)})
			i = end
		case c == '@' && i+1 < len(src) && src[i+1] == '"':
			i = skipVerbatim(src, i+2)
		case c == '"' || c == '\'':
			i = skipQuoted(src, i+1, c)
		default:
			i++
		}
		lineStart = false
	}
	return trivia
}

// lineEnd returns the offset of the line break ending the line at i,
// excluding a trailing carriage return.
func lineEnd(src string, i int) int {
	end := strings.IndexByte(src[i:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += i
	}
	if end > i && src[end-1] == '\r' {
		end--
	}
	return end
}

func skipQuoted(src string, i int, quote byte) int {
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote, '\n':
			return i + 1
		}
		i++
	}
	return len(src)
}

func skipVerbatim(src string, i int) int {
	for i < len(src) {
		if src[i] == '"' {
			if i+1 < len(src) && src[i+1] == '"' {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(src)
}
