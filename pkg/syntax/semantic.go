package syntax

import "slices"

// SemanticModel answers the symbol questions rules need. Hosts implement it
// over their own compilation; the engine never derives these facts itself.
type SemanticModel interface {
	// IsOverrideOrImplementation reports whether the symbol overrides a base
	// member or implements an interface member, explicitly or implicitly.
	IsOverrideOrImplementation(symbol string) bool

	// Attributes returns the fully qualified attribute type names applied to
	// the symbol.
	Attributes(symbol string) []string

	// EnumMembers returns the declared members of an enum type in declaration
	// order. ok is false when the type is not a known enum.
	EnumMembers(typeName string) (members []EnumMember, ok bool)

	// IsFlagsEnum reports whether the enum type is marked as bit flags.
	IsFlagsEnum(typeName string) bool
}

// EnumMember is one declared enum member.
type EnumMember struct {
	Name  string   `json:"name" yaml:"name"`
	Value Constant `json:"value" yaml:"value"`
}

// EnumInfo describes an enum type.
type EnumInfo struct {
	Flags   bool         `json:"flags,omitempty" yaml:"flags,omitempty"`
	Members []EnumMember `json:"members" yaml:"members"`
}

// Semantics is a SemanticModel backed by plain data, as carried by
// interchange files. A nil *Semantics answers every query negatively.
type Semantics struct {
	Overrides []string            `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Attrs     map[string][]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Enums     map[string]EnumInfo `json:"enums,omitempty" yaml:"enums,omitempty"`
}

var _ SemanticModel = (*Semantics)(nil)

// IsOverrideOrImplementation implements SemanticModel.
func (s *Semantics) IsOverrideOrImplementation(symbol string) bool {
	if s == nil || symbol == "" {
		return false
	}
	return slices.Contains(s.Overrides, symbol)
}

// Attributes implements SemanticModel.
func (s *Semantics) Attributes(symbol string) []string {
	if s == nil || symbol == "" {
		return nil
	}
	return s.Attrs[symbol]
}

// EnumMembers implements SemanticModel.
func (s *Semantics) EnumMembers(typeName string) ([]EnumMember, bool) {
	if s == nil {
		return nil, false
	}
	info, ok := s.Enums[typeName]
	if !ok {
		return nil, false
	}
	return info.Members, true
}

// IsFlagsEnum implements SemanticModel.
func (s *Semantics) IsFlagsEnum(typeName string) bool {
	if s == nil {
		return false
	}
	return s.Enums[typeName].Flags
}
