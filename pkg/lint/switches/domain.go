package switches

import (
	"fmt"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// DomainKind enumerates the value domains a switch can range over.
type DomainKind int

// Domain kinds.
const (
	DomainOther DomainKind = iota
	DomainBool
	DomainNullableBool
	DomainEnum
	DomainNullableEnum
	DomainFlagsEnum
)

func (k DomainKind) String() string {
	switch k {
	case DomainOther:
		return "other"
	case DomainBool:
		return "bool"
	case DomainNullableBool:
		return "bool?"
	case DomainEnum:
		return "enum"
	case DomainNullableEnum:
		return "enum?"
	case DomainFlagsEnum:
		return "flags"
	default:
		return fmt.Sprintf("DomainKind(%d)", int(k))
	}
}

// Closed reports whether the domain can be enumerated by case labels.
func (k DomainKind) Closed() bool {
	switch k {
	case DomainBool, DomainNullableBool, DomainEnum, DomainNullableEnum:
		return true
	}
	return false
}

// Domain is the value domain of a governing type. Members is set for the
// two enum kinds: the member values in declaration order.
type Domain struct {
	Kind    DomainKind
	Members []syntax.Constant
}

// Other returns the open domain.
func Other() Domain { return Domain{Kind: DomainOther} }

// BoolDomain returns the domain of bool, or of bool? when nullable.
func BoolDomain(nullable bool) Domain {
	if nullable {
		return Domain{Kind: DomainNullableBool}
	}
	return Domain{Kind: DomainBool}
}

// EnumDomain returns the domain of an enum with the given member values.
func EnumDomain(members []syntax.Constant, nullable bool) Domain {
	if nullable {
		return Domain{Kind: DomainNullableEnum, Members: members}
	}
	return Domain{Kind: DomainEnum, Members: members}
}

// FlagsDomain returns the domain of a flags enum.
func FlagsDomain() Domain { return Domain{Kind: DomainFlagsEnum} }

// DomainOf maps a governing type to its domain using the semantic model.
// An enum the model cannot enumerate maps to the open domain.
func DomainOf(t syntax.TypeRef, model syntax.SemanticModel) Domain {
	switch t.Kind {
	case syntax.TypeBoolean:
		return BoolDomain(t.Nullable)
	case syntax.TypeEnum:
		if model == nil {
			return Other()
		}
		if model.IsFlagsEnum(t.Name) {
			return FlagsDomain()
		}
		members, ok := model.EnumMembers(t.Name)
		if !ok {
			return Other()
		}
		values := make([]syntax.Constant, 0, len(members))
		for _, m := range members {
			values = append(values, m.Value)
		}
		return EnumDomain(values, t.Nullable)
	default:
		return Other()
	}
}

// Required returns the values a switch over d must list, in declaration
// order with duplicates removed. Open domains require nothing.
func (d Domain) Required() []syntax.Constant {
	var values []syntax.Constant
	switch d.Kind {
	case DomainBool:
		values = []syntax.Constant{syntax.Bool(true), syntax.Bool(false)}
	case DomainNullableBool:
		values = []syntax.Constant{syntax.Bool(true), syntax.Bool(false), syntax.Null()}
	case DomainEnum:
		values = d.Members
	case DomainNullableEnum:
		values = append(append([]syntax.Constant{}, d.Members...), syntax.Null())
	case DomainOther, DomainFlagsEnum:
		return nil
	}

	seen := make(map[string]bool, len(values))
	out := make([]syntax.Constant, 0, len(values))
	for _, v := range values {
		if !seen[v.Key()] {
			seen[v.Key()] = true
			out = append(out, v)
		}
	}
	return out
}
