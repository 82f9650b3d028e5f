package classify

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

// SymbolKind is the human-facing kind of a named declaration.
type SymbolKind int

// Symbol kinds.
const (
	SymbolClass SymbolKind = iota
	SymbolStruct
	SymbolEnum
	SymbolInterface
	SymbolField
	SymbolProperty
	SymbolEvent
	SymbolMethod
	SymbolParameter
	SymbolVariable
)

var symbolKindNames = [...]string{
	SymbolClass:     "Class",
	SymbolStruct:    "Struct",
	SymbolEnum:      "Enum",
	SymbolInterface: "Interface",
	SymbolField:     "Field",
	SymbolProperty:  "Property",
	SymbolEvent:     "Event",
	SymbolMethod:    "Method",
	SymbolParameter: "Parameter",
	SymbolVariable:  "Variable",
}

func (k SymbolKind) String() string {
	if k >= 0 && int(k) < len(symbolKindNames) {
		return symbolKindNames[k]
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// SymbolKindOf maps a node kind to the symbol kind it declares. Constructors,
// operators, accessors, indexers, enum members and namespaces declare no
// named occurrence.
func SymbolKindOf(k syntax.Kind) (SymbolKind, bool) {
	switch k {
	case syntax.KindClass:
		return SymbolClass, true
	case syntax.KindStruct:
		return SymbolStruct, true
	case syntax.KindEnum:
		return SymbolEnum, true
	case syntax.KindInterface:
		return SymbolInterface, true
	case syntax.KindField:
		return SymbolField, true
	case syntax.KindProperty:
		return SymbolProperty, true
	case syntax.KindEvent:
		return SymbolEvent, true
	case syntax.KindMethod, syntax.KindLocalFunction:
		return SymbolMethod, true
	case syntax.KindParameter:
		return SymbolParameter, true
	case syntax.KindLocal:
		return SymbolVariable, true
	}
	return 0, false
}

// NamedOccurrence is one declared name examined by naming rules.
type NamedOccurrence struct {
	Kind                       SymbolKind
	Name                       string
	Span                       token.Span // the identifier token
	IsOverrideOrImplementation bool
	HasTestFrameworkMarker     bool
}

// DefaultTestMarkers are the fully qualified attribute names of common unit
// testing frameworks.
var DefaultTestMarkers = []string{
	"Microsoft.VisualStudio.TestTools.UnitTesting.TestMethodAttribute",
	"Microsoft.VisualStudio.TestTools.UnitTesting.DataTestMethodAttribute",
	"Xunit.FactAttribute",
	"Xunit.TheoryAttribute",
	"NUnit.Framework.TestAttribute",
	"NUnit.Framework.TestCaseAttribute",
	"NUnit.Framework.TestCaseSourceAttribute",
	"MbUnit.Framework.TestAttribute",
}

// MarkerSet is a set of fully qualified attribute names.
type MarkerSet struct {
	names map[string]struct{}
}

// NewMarkerSet builds a marker set. Names are compared without a "global::"
// prefix and without the conventional "Attribute" suffix, so
// "Xunit.Fact" and "Xunit.FactAttribute" are the same marker.
func NewMarkerSet(names []string) MarkerSet {
	set := MarkerSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if key := markerKey(n); key != "" {
			set.names[key] = struct{}{}
		}
	}
	return set
}

// Matches reports whether any of attrs is in the set.
func (m MarkerSet) Matches(attrs []string) bool {
	for _, a := range attrs {
		if _, ok := m.names[markerKey(a)]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of markers.
func (m MarkerSet) Len() int {
	return len(m.names)
}

func markerKey(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "global::")
	return strings.TrimSuffix(name, "Attribute")
}

// Occurrence builds the named occurrence of a declaration element. ok is
// false when the element declares no examinable name.
func Occurrence(el syntax.Element, model syntax.SemanticModel, markers MarkerSet) (occ NamedOccurrence, ok bool) {
	n := el.Node
	if n == nil || n.Name == nil || n.Name.Text == "" {
		return NamedOccurrence{}, false
	}
	kind, ok := SymbolKindOf(n.Kind)
	if !ok {
		return NamedOccurrence{}, false
	}
	occ = NamedOccurrence{
		Kind: kind,
		Name: n.Name.Text,
		Span: n.Name.Span,
	}
	if model == nil {
		return occ, true
	}

	switch kind {
	case SymbolParameter:
		if owner := parameterOwner(el.Ancestors); owner != nil {
			occ.IsOverrideOrImplementation = model.IsOverrideOrImplementation(owner.Symbol)
		}
	case SymbolVariable:
		// locals never override anything
	default:
		occ.IsOverrideOrImplementation = model.IsOverrideOrImplementation(n.Symbol)
	}
	occ.HasTestFrameworkMarker = markers.Matches(model.Attributes(n.Symbol))
	return occ, true
}

// parameterOwner returns the member that declares the parameter, or nil for
// parameters of lambdas and other constructs nested in code.
func parameterOwner(ancestors []*syntax.Node) *syntax.Node {
	for i := len(ancestors) - 1; i >= 0; i-- {
		switch ancestors[i].Kind {
		case syntax.KindBlock, syntax.KindStatement, syntax.KindSwitch:
			return nil
		case syntax.KindMethod, syntax.KindLocalFunction, syntax.KindConstructor,
			syntax.KindOperator, syntax.KindIndexer, syntax.KindProperty, syntax.KindEvent:
			return ancestors[i]
		}
	}
	return nil
}
