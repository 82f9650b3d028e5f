package classify

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

// Category is the classification of one comment or directive.
type Category int

// Comment categories. Every trivia maps to exactly one.
const (
	Documentation Category = iota // /// or /** doc comments
	Directive                     // #if, #define, ... and inactive text
	Region                        // #region, #endregion
	Pragma                        // #pragma
	Leading                       // own line(s) right before a declaration
	Trailing                      // outside code, not before a declaration
	Suppression                   // tooling inspection marker
	Inline                        // inside a code block
)

var categoryNames = [...]string{
	Documentation: "documentation",
	Directive:     "directive",
	Region:        "region",
	Pragma:        "pragma",
	Leading:       "leading",
	Trailing:      "trailing",
	Suppression:   "suppression",
	Inline:        "inline",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Reportable reports whether comments of this category may be reported.
func (c Category) Reportable() bool {
	return c == Inline
}

// CommentClassifier classifies the trivia of one unit.
// It is safe for concurrent use once built.
type CommentClassifier struct {
	unit         *syntax.Unit
	suppressions *PatternSet
	trivia       map[int]int  // trivia start -> end, for skipping over trivia
	declStarts   map[int]bool // start offsets of declaration nodes
}

// NewCommentClassifier indexes unit for classification. A nil pattern set
// recognizes no suppression comments.
func NewCommentClassifier(unit *syntax.Unit, suppressions *PatternSet) *CommentClassifier {
	c := &CommentClassifier{
		unit:         unit,
		suppressions: suppressions,
		trivia:       make(map[int]int, len(unit.Trivia)),
		declStarts:   make(map[int]bool),
	}
	for _, t := range unit.Trivia {
		if end, ok := c.trivia[t.Span.Start]; !ok || t.Span.End > end {
			c.trivia[t.Span.Start] = t.Span.End
		}
	}
	syntax.Walk(unit.Root, func(n *syntax.Node) bool {
		if n.Kind.IsDeclaration() {
			c.declStarts[n.Span.Start] = true
		}
		return !n.Kind.HostsCode()
	})
	return c
}

// Classify returns the category of t.
func (c *CommentClassifier) Classify(t *token.Trivia) Category {
	switch t.Kind {
	case token.Directive:
		return directiveCategory(t.Text)
	case token.DisabledText:
		return Directive
	}
	if isDocComment(t) {
		return Documentation
	}
	if t.Kind == token.LineComment && c.suppressions.Match(t.Body()) {
		return Suppression
	}

	path := syntax.Enclosing(c.unit.Root, t.Span.Start, t.Span.End)
	for _, n := range path {
		if n.Kind.HostsCode() {
			return Inline
		}
	}
	if c.isLeading(t, path) {
		return Leading
	}
	return Trailing
}

// directiveCategory sorts directives by their keyword.
func directiveCategory(text string) Category {
	body := strings.TrimLeftFunc(strings.TrimSpace(text), func(r rune) bool { return r == '#' || unicode.IsSpace(r) })
	end := strings.IndexFunc(body, func(r rune) bool { return !unicode.IsLetter(r) })
	if end >= 0 {
		body = body[:end]
	}
	switch strings.ToLower(body) {
	case "region", "endregion":
		return Region
	case "pragma":
		return Pragma
	default:
		return Directive
	}
}

func isDocComment(t *token.Trivia) bool {
	switch t.Kind {
	case token.LineComment:
		return strings.HasPrefix(t.Text, "///") && !strings.HasPrefix(t.Text, "////")
	case token.BlockComment:
		return strings.HasPrefix(t.Text, "/**") && !strings.HasPrefix(t.Text, "/**/")
	}
	return false
}

// isLeading reports whether t sits on its own line(s) and the next code
// after it starts a declaration.
func (c *CommentClassifier) isLeading(t *token.Trivia, path []*syntax.Node) bool {
	src := c.unit.Source
	if src == "" {
		return c.nextChildIsDeclaration(t, path)
	}

	for i := t.Span.Start - 1; i >= 0 && src[i] != '\n'; i-- {
		if !isBlank(src[i]) {
			return false
		}
	}

	next := c.nextCode(t.Span.End)
	if next >= len(src) || !c.declStarts[next] {
		return false
	}
	return strings.ContainsRune(src[t.Span.End:next], '\n')
}

// nextCode returns the offset of the first byte at or after off that is
// neither whitespace nor part of a trivia.
func (c *CommentClassifier) nextCode(off int) int {
	src := c.unit.Source
	for off < len(src) {
		if isBlank(src[off]) {
			off++
			continue
		}
		end, ok := c.trivia[off]
		if !ok || end <= off {
			break
		}
		off = end
	}
	return off
}

// nextChildIsDeclaration is the positional fallback for units that carry no
// source text: the first sibling node after t decides.
func (c *CommentClassifier) nextChildIsDeclaration(t *token.Trivia, path []*syntax.Node) bool {
	if len(path) == 0 {
		return false
	}
	children := path[len(path)-1].Children
	i := sort.Search(len(children), func(i int) bool { return children[i].Span.Start >= t.Span.End })
	return i < len(children) && children[i].Kind.IsDeclaration()
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == '\v'
}
