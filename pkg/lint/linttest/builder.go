package linttest

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

// Builder assembles a syntax tree over fixture source by locating
// substrings. Lookups that fail abort the test.
type Builder struct {
	t      testing.TB
	src    string
	sem    *syntax.Semantics
	trivia map[int]int // trivia start -> end
}

// NewBuilder creates a builder over src.
func NewBuilder(t testing.TB, src string) *Builder {
	b := &Builder{t: t, src: src, sem: &syntax.Semantics{}, trivia: make(map[int]int)}
	for _, tr := range ScanTrivia(src) {
		b.trivia[tr.Span.Start] = tr.Span.End
	}
	return b
}

// Source returns the fixture source.
func (b *Builder) Source() string { return b.src }

// Span returns the span of the first occurrence of text.
func (b *Builder) Span(text string) token.Span {
	return b.SpanN(text, 1)
}

// SpanN returns the span of the nth (1-based) occurrence of text.
func (b *Builder) SpanN(text string, n int) token.Span {
	b.t.Helper()
	from := 0
	for i := 1; ; i++ {
		idx := strings.Index(b.src[from:], text)
		if idx < 0 || text == "" {
			b.t.Fatalf("linttest: occurrence %d of %q not found in fixture", n, text)
			return token.Span{}
		}
		start := from + idx
		if i == n {
			return token.NewSpan(start, start+len(text))
		}
		from = start + 1
	}
}

// Within returns the span of the first occurrence of text inside outer.
func (b *Builder) Within(outer token.Span, text string) token.Span {
	b.t.Helper()
	idx := strings.Index(b.src[outer.Start:outer.End], text)
	if idx < 0 || text == "" {
		b.t.Fatalf("linttest: %q not found within %s", text, outer)
	}
	start := outer.Start + idx
	return token.NewSpan(start, start+len(text))
}

// Braced returns the span from the first occurrence of header to the brace
// closing the first block that follows it. Braces in comments and literals
// are ignored.
func (b *Builder) Braced(header string) token.Span {
	b.t.Helper()
	return b.BracedN(header, 1)
}

// BracedN is like Braced for the nth (1-based) occurrence of header.
func (b *Builder) BracedN(header string, n int) token.Span {
	b.t.Helper()
	h := b.SpanN(header, n)
	return token.NewSpan(h.Start, b.closeBrace(h.End))
}

// BlockIn creates a block node for the first braced block inside outer.
func (b *Builder) BlockIn(outer token.Span, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	open := b.Within(outer, "{")
	return b.NodeAt(syntax.KindBlock, token.NewSpan(open.Start, b.closeBrace(open.Start)), children...)
}

// closeBrace returns the offset just past the brace matching the first
// opening brace at or after from.
func (b *Builder) closeBrace(from int) int {
	b.t.Helper()
	depth := 0
	for i := from; i < len(b.src); {
		if end, ok := b.trivia[i]; ok {
			i = end
			continue
		}
		switch c := b.src[i]; c {
		case '"', '\'':
			i = skipQuoted(b.src, i+1, c)
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	b.t.Fatalf("linttest: no balanced block after offset %d", from)
	return len(b.src)
}

// Type creates a type or member declaration spanning header through its
// closing brace.
func (b *Builder) Type(kind syntax.Kind, header, name string, members ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	return b.DeclAt(kind, b.Braced(header), name, members...)
}

// Method creates a method spanning header through its body, with the body
// as a block holding children.
func (b *Builder) Method(header, name string, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	span := b.Braced(header)
	return b.DeclAt(syntax.KindMethod, span, name, b.BlockIn(span, children...))
}

// Decl creates a declaration node covering the first occurrence of text.
// The name is located as a whole word inside that text.
func (b *Builder) Decl(kind syntax.Kind, text, name string, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	return b.DeclAt(kind, b.Span(text), name, children...)
}

// DeclAt creates a declaration node covering span.
func (b *Builder) DeclAt(kind syntax.Kind, span token.Span, name string, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	n := b.NodeAt(kind, span, children...)
	if name != "" {
		nameSpan := b.word(span, name)
		n.Name = &syntax.Ident{Text: name, Span: nameSpan}
		n.Symbol = fmt.Sprintf("%s@%d", name, nameSpan.Start)
	}
	return n
}

// Node creates an unnamed node covering the first occurrence of text.
func (b *Builder) Node(kind syntax.Kind, text string, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	return b.NodeAt(kind, b.Span(text), children...)
}

// NodeAt creates an unnamed node covering span.
func (b *Builder) NodeAt(kind syntax.Kind, span token.Span, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	for _, c := range children {
		if !span.Covers(c.Span) {
			b.t.Fatalf("linttest: %s child %s lies outside parent %s %s", c.Kind, c.Span, kind, span)
		}
	}
	sort.SliceStable(children, func(i, j int) bool { return children[i].Span.Start < children[j].Span.Start })
	return &syntax.Node{Kind: kind, Span: span, Children: children}
}

// word finds name inside span at identifier boundaries.
func (b *Builder) word(span token.Span, name string) token.Span {
	b.t.Helper()
	text := b.src[span.Start:span.End]
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], name)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(name)
		if !identBefore(text, start) && !identAfter(text, end) {
			return token.NewSpan(span.Start+start, span.Start+end)
		}
		from = start + 1
	}
	b.t.Fatalf("linttest: name %q not found in %q", name, text)
	return token.Span{}
}

func identBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isIdentRune(r)
}

func identAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isIdentRune(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// LabelSpec describes a switch label to locate.
type LabelSpec struct {
	Kind  syntax.LabelKind
	Text  string
	Value *syntax.Constant
}

// Case is a constant case label.
func Case(text string, value syntax.Constant) LabelSpec {
	return LabelSpec{Kind: syntax.LabelConstant, Text: text, Value: &value}
}

// Default is the default label.
func Default() LabelSpec {
	return LabelSpec{Kind: syntax.LabelDefault, Text: "default"}
}

// CatchAll is a pattern label that matches every value.
func CatchAll(text string) LabelSpec {
	return LabelSpec{Kind: syntax.LabelCatchAll, Text: text}
}

// Expr is a non-constant case label.
func Expr(text string) LabelSpec {
	return LabelSpec{Kind: syntax.LabelExpression, Text: text}
}

// Switch creates a switch node covering the first occurrence of text. Labels
// are located in order inside that text and each gets its own section.
func (b *Builder) Switch(text string, governing syntax.TypeRef, labels ...LabelSpec) *syntax.Node {
	b.t.Helper()
	return b.SwitchAt(b.Span(text), governing, labels...)
}

// SwitchAt creates a switch node covering span.
func (b *Builder) SwitchAt(span token.Span, governing syntax.TypeRef, labels ...LabelSpec) *syntax.Node {
	b.t.Helper()
	sw := &syntax.Switch{Governing: governing}
	cursor := span.Start
	for _, spec := range labels {
		ls := b.Within(token.NewSpan(cursor, span.End), spec.Text)
		cursor = ls.End
		sw.Sections = append(sw.Sections, syntax.Section{
			Labels: []syntax.Label{{Kind: spec.Kind, Value: spec.Value, Span: ls}},
			Span:   ls,
		})
	}
	n := b.NodeAt(syntax.KindSwitch, span)
	n.Switch = sw
	return n
}

// Override marks the nodes' symbols as overrides or implementations.
func (b *Builder) Override(nodes ...*syntax.Node) {
	for _, n := range nodes {
		b.sem.Overrides = append(b.sem.Overrides, n.Symbol)
	}
}

// Attribute applies attribute type names to the node's symbol.
func (b *Builder) Attribute(n *syntax.Node, names ...string) {
	if b.sem.Attrs == nil {
		b.sem.Attrs = make(map[string][]string)
	}
	b.sem.Attrs[n.Symbol] = append(b.sem.Attrs[n.Symbol], names...)
}

// Enum declares an enum type. Members get the values 0, 1, 2 and so on, or
// 1, 2, 4 and so on for flags enums.
func (b *Builder) Enum(name string, flags bool, members ...string) {
	if b.sem.Enums == nil {
		b.sem.Enums = make(map[string]syntax.EnumInfo)
	}
	info := syntax.EnumInfo{Flags: flags}
	for i, m := range members {
		v := int64(i)
		if flags {
			v = 1 << i
		}
		info.Members = append(info.Members, syntax.EnumMember{Name: m, Value: syntax.Integer(v)})
	}
	b.sem.Enums[name] = info
}

// Semantics returns the semantic model collected so far.
func (b *Builder) Semantics() *syntax.Semantics { return b.sem }

// Unit wraps the nodes in a unit root spanning the whole source and scans
// the source for trivia.
func (b *Builder) Unit(children ...*syntax.Node) *syntax.Unit {
	b.t.Helper()
	root := b.NodeAt(syntax.KindUnit, token.NewSpan(0, len(b.src)), children...)
	return &syntax.Unit{
		Path:      "fixture.cs",
		Source:    b.src,
		Root:      root,
		Trivia:    ScanTrivia(b.src),
		Semantics: b.sem,
	}
}
