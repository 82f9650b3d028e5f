package syntax

import "github.com/leapstack-labs/guidelint/pkg/token"

// Ident is a declared identifier token.
type Ident struct {
	Text string     `json:"text" yaml:"text"`
	Span token.Span `json:"span" yaml:"span"`
}

// Node is one syntactic construct. Spans of children lie within the span of
// their parent and children are ordered by position.
type Node struct {
	Kind Kind       `json:"kind" yaml:"kind"`
	Span token.Span `json:"span" yaml:"span"`

	// Name is the declared identifier, for declarations that have one.
	Name *Ident `json:"name,omitempty" yaml:"name,omitempty"`

	// Symbol is the host's identifier for the declared symbol. It is the key
	// for SemanticModel queries and opaque to the engine.
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`

	// Switch describes a switch statement. Set only for KindSwitch.
	Switch *Switch `json:"switch,omitempty" yaml:"switch,omitempty"`

	// HasErrors marks a construct the host front end reported errors for.
	HasErrors bool `json:"has_errors,omitempty" yaml:"has_errors,omitempty"`

	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// NameText returns the declared name, or "" if the node has none.
func (n *Node) NameText() string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.Text
}

// Unit is one parsed, resolved source unit.
type Unit struct {
	Path   string         `json:"path" yaml:"path"`
	Source string         `json:"source,omitempty" yaml:"source,omitempty"`
	Root   *Node          `json:"root" yaml:"root"`
	Trivia []token.Trivia `json:"trivia,omitempty" yaml:"trivia,omitempty"`

	// Semantics is the serialized semantic model. Hosts that analyze in
	// process may leave it nil and pass their own SemanticModel instead.
	Semantics *Semantics `json:"semantics,omitempty" yaml:"semantics,omitempty"`
}

// Text returns the source text covered by span, or "" when the unit carries
// no source or the span is out of range.
func (u *Unit) Text(span token.Span) string {
	if !span.IsValid() || span.End > len(u.Source) {
		return ""
	}
	return u.Source[span.Start:span.End]
}

// Lines builds a line index over the unit's source.
func (u *Unit) Lines() *token.LineIndex {
	return token.NewLineIndex(u.Source)
}

// Element is one dispatch target: either a node or a trivia of a unit.
// Ancestors lists the enclosing nodes, outermost first. It is shared with the
// walker and only valid for the duration of a rule check.
type Element struct {
	Node      *Node
	Trivia    *token.Trivia
	Ancestors []*Node
}

// Kind returns the node's kind, or KindTrivia for trivia.
func (e Element) Kind() Kind {
	if e.Node != nil {
		return e.Node.Kind
	}
	return KindTrivia
}

// Span returns the span of the underlying node or trivia.
func (e Element) Span() token.Span {
	if e.Node != nil {
		return e.Node.Span
	}
	if e.Trivia != nil {
		return e.Trivia.Span
	}
	return token.Span{}
}

// Parent returns the innermost enclosing node, or nil at the root.
func (e Element) Parent() *Node {
	if len(e.Ancestors) == 0 {
		return nil
	}
	return e.Ancestors[len(e.Ancestors)-1]
}
