package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstKind is the type of a compile-time constant.
type ConstKind int

// Constant kinds.
const (
	ConstNull ConstKind = iota
	ConstBool
	ConstInteger
	ConstChar
	ConstString
	ConstReal
)

var constKindNames = [...]string{
	ConstNull:    "null",
	ConstBool:    "bool",
	ConstInteger: "integer",
	ConstChar:    "char",
	ConstString:  "string",
	ConstReal:    "real",
}

func (k ConstKind) String() string {
	if k >= 0 && int(k) < len(constKindNames) {
		return constKindNames[k]
	}
	return fmt.Sprintf("ConstKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k ConstKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(constKindNames) {
		return nil, fmt.Errorf("unknown constant kind %d", int(k))
	}
	return []byte(constKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ConstKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range constKindNames {
		if name == s {
			*k = ConstKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown constant kind %q", s)
}

// Constant is a compile-time constant value, such as a case label or an enum
// member value. Enum constants are represented by their underlying integer.
type Constant struct {
	Kind  ConstKind `json:"kind" yaml:"kind"`
	Value string    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Null returns the null constant.
func Null() Constant { return Constant{Kind: ConstNull} }

// Bool returns a boolean constant.
func Bool(b bool) Constant { return Constant{Kind: ConstBool, Value: strconv.FormatBool(b)} }

// Integer returns an integer constant.
func Integer(v int64) Constant { return Constant{Kind: ConstInteger, Value: strconv.FormatInt(v, 10)} }

// String returns a string constant.
func String(s string) Constant { return Constant{Kind: ConstString, Value: s} }

// Char returns a character constant.
func Char(r rune) Constant { return Constant{Kind: ConstChar, Value: string(r)} }

// Key returns a canonical representation; two constants denote the same
// value iff their keys are equal. Integers written in other bases or with a
// sign compare by value.
func (c Constant) Key() string {
	v := c.Value
	switch c.Kind {
	case ConstNull:
		v = ""
	case ConstBool:
		v = strings.ToLower(strings.TrimSpace(v))
	case ConstInteger:
		v = canonicalInteger(v)
	}
	return c.Kind.String() + ":" + v
}

// Equal reports whether c and other denote the same value.
func (c Constant) Equal(other Constant) bool {
	return c.Key() == other.Key()
}

func (c Constant) String() string {
	switch c.Kind {
	case ConstNull:
		return "null"
	case ConstString:
		return strconv.Quote(c.Value)
	case ConstChar:
		return "'" + c.Value + "'"
	}
	return c.Value
}

func canonicalInteger(v string) string {
	v = strings.ReplaceAll(strings.TrimSpace(v), "_", "")
	if i, err := strconv.ParseInt(v, 0, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if u, err := strconv.ParseUint(v, 0, 64); err == nil {
		return strconv.FormatUint(u, 10)
	}
	return v
}
