package token

import (
	"fmt"
	"strings"
)

// TriviaKind distinguishes the kinds of non-semantic source text a host reports.
type TriviaKind int

// Trivia kinds.
const (
	LineComment  TriviaKind = iota // // comment
	BlockComment                   // /* comment */
	Directive                      // #if, #region, #pragma, ...
	DisabledText                   // text inside an inactive conditional branch
)

var triviaKindNames = [...]string{
	LineComment:  "line_comment",
	BlockComment: "block_comment",
	Directive:    "directive",
	DisabledText: "disabled_text",
}

func (k TriviaKind) String() string {
	if k >= 0 && int(k) < len(triviaKindNames) {
		return triviaKindNames[k]
	}
	return fmt.Sprintf("TriviaKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k TriviaKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(triviaKindNames) {
		return nil, fmt.Errorf("unknown trivia kind %d", int(k))
	}
	return []byte(triviaKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TriviaKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range triviaKindNames {
		if name == s {
			*k = TriviaKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown trivia kind %q", s)
}

// Trivia is a comment, directive or inactive text with position.
type Trivia struct {
	Kind TriviaKind `json:"kind" yaml:"kind"`
	Text string     `json:"text" yaml:"text"` // includes delimiters (// or /* */ or #)
	Span Span       `json:"span" yaml:"span"`
}

// IsComment returns true for line and block comments.
func (t *Trivia) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsLineComment returns true if this is a line comment.
func (t *Trivia) IsLineComment() bool {
	return t.Kind == LineComment
}

// IsBlockComment returns true if this is a block comment.
func (t *Trivia) IsBlockComment() bool {
	return t.Kind == BlockComment
}

// Body returns the comment text without its delimiters, trimmed of surrounding
// whitespace. Non-comments return their text trimmed.
func (t *Trivia) Body() string {
	text := t.Text
	switch t.Kind {
	case LineComment:
		text = strings.TrimPrefix(text, "//")
	case BlockComment:
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	return strings.TrimSpace(text)
}
