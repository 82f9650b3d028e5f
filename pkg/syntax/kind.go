package syntax

import (
	"fmt"
	"strings"
)

// Kind identifies the syntactic category of a Node.
type Kind int

// Node kinds.
const (
	KindOther Kind = iota
	KindUnit
	KindNamespace
	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindEnumMember
	KindField
	KindProperty
	KindIndexer
	KindEvent
	KindMethod
	KindConstructor
	KindOperator
	KindAccessor
	KindLocalFunction
	KindParameter
	KindLocal
	KindBlock
	KindStatement
	KindSwitch

	// KindTrivia is the pseudo-kind under which comments and directives are
	// dispatched to rules. No Node carries it.
	KindTrivia
)

var kindNames = [...]string{
	KindOther:         "other",
	KindUnit:          "unit",
	KindNamespace:     "namespace",
	KindClass:         "class",
	KindStruct:        "struct",
	KindInterface:     "interface",
	KindEnum:          "enum",
	KindEnumMember:    "enum_member",
	KindField:         "field",
	KindProperty:      "property",
	KindIndexer:       "indexer",
	KindEvent:         "event",
	KindMethod:        "method",
	KindConstructor:   "constructor",
	KindOperator:      "operator",
	KindAccessor:      "accessor",
	KindLocalFunction: "local_function",
	KindParameter:     "parameter",
	KindLocal:         "local",
	KindBlock:         "block",
	KindStatement:     "statement",
	KindSwitch:        "switch",
	KindTrivia:        "trivia",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given interchange name.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return KindOther, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown node kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown node kind %q", string(text))
	}
	*k = parsed
	return nil
}

// IsTypeDeclaration reports whether k declares a type.
func (k Kind) IsTypeDeclaration() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum:
		return true
	}
	return false
}

// IsMemberDeclaration reports whether k declares a type member.
func (k Kind) IsMemberDeclaration() bool {
	switch k {
	case KindEnumMember, KindField, KindProperty, KindIndexer, KindEvent,
		KindMethod, KindConstructor, KindOperator, KindAccessor:
		return true
	}
	return false
}

// IsDeclaration reports whether k is a namespace, type or member declaration.
// Locals, parameters and local functions live inside code and are not
// declarations in this sense.
func (k Kind) IsDeclaration() bool {
	return k == KindNamespace || k.IsTypeDeclaration() || k.IsMemberDeclaration()
}

// HostsCode reports whether nodes of kind k contain executable code.
// Everything inside such a node is part of a code block.
func (k Kind) HostsCode() bool {
	switch k {
	case KindMethod, KindConstructor, KindOperator, KindAccessor, KindLocalFunction:
		return true
	}
	return false
}
