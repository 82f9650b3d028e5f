package syntax

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/guidelint/pkg/token"
)

// TypeKind is the coarse category of a resolved type.
type TypeKind int

// Type kinds.
const (
	TypeOther TypeKind = iota
	TypeBoolean
	TypeEnum
	TypeIntegral
	TypeReal
	TypeChar
	TypeString
)

var typeKindNames = [...]string{
	TypeOther:    "other",
	TypeBoolean:  "boolean",
	TypeEnum:     "enum",
	TypeIntegral: "integral",
	TypeReal:     "real",
	TypeChar:     "char",
	TypeString:   "string",
}

func (k TypeKind) String() string {
	if k >= 0 && int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k TypeKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(typeKindNames) {
		return nil, fmt.Errorf("unknown type kind %d", int(k))
	}
	return []byte(typeKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TypeKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range typeKindNames {
		if name == s {
			*k = TypeKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown type kind %q", s)
}

// TypeRef is a resolved type reference.
type TypeRef struct {
	// Name is the fully qualified type name, e.g. "System.Boolean" or
	// "App.Status". For nullable types it names the underlying type.
	Name     string   `json:"name" yaml:"name"`
	Kind     TypeKind `json:"kind" yaml:"kind"`
	Nullable bool     `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// LabelKind classifies a switch case label.
type LabelKind int

// Label kinds.
const (
	// LabelConstant is a case whose value is a literal or a named constant.
	LabelConstant LabelKind = iota
	// LabelDefault is the default clause.
	LabelDefault
	// LabelCatchAll is a pattern that matches every value (case var x).
	LabelCatchAll
	// LabelExpression is any other case: computed expressions, relational or
	// guarded patterns.
	LabelExpression
)

var labelKindNames = [...]string{
	LabelConstant:   "constant",
	LabelDefault:    "default",
	LabelCatchAll:   "catch_all",
	LabelExpression: "expression",
}

func (k LabelKind) String() string {
	if k >= 0 && int(k) < len(labelKindNames) {
		return labelKindNames[k]
	}
	return fmt.Sprintf("LabelKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k LabelKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(labelKindNames) {
		return nil, fmt.Errorf("unknown label kind %d", int(k))
	}
	return []byte(labelKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LabelKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range labelKindNames {
		if name == s {
			*k = LabelKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown label kind %q", s)
}

// Label is one case label of a switch section.
type Label struct {
	Kind LabelKind `json:"kind" yaml:"kind"`
	// Value is the constant value, set for LabelConstant.
	Value *Constant  `json:"value,omitempty" yaml:"value,omitempty"`
	Span  token.Span `json:"span" yaml:"span"`
}

// Section is a group of labels sharing one statement list.
type Section struct {
	Labels []Label    `json:"labels" yaml:"labels"`
	Span   token.Span `json:"span" yaml:"span"`
}

// Switch describes a switch statement: its governing type and its sections.
type Switch struct {
	Governing TypeRef   `json:"governing" yaml:"governing"`
	Sections  []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Labels returns all labels of all sections in source order.
func (s *Switch) Labels() []Label {
	if s == nil {
		return nil
	}
	var labels []Label
	for _, sec := range s.Sections {
		labels = append(labels, sec.Labels...)
	}
	return labels
}
