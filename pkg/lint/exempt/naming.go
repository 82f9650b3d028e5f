package exempt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/leapstack-labs/guidelint/pkg/lint/classify"
)

// Reason explains a naming verdict.
type Reason int

// Naming verdict reasons.
const (
	// Reported means the name violates the rule.
	Reported Reason = iota
	// Clean means the name contains no digits.
	Clean
	// Inherited means the member overrides or implements another; the base
	// declaration carries the diagnostic.
	Inherited
	// TestMarker means the declaration carries a unit test framework marker.
	TestMarker
)

func (r Reason) String() string {
	switch r {
	case Reported:
		return "reported"
	case Clean:
		return "clean"
	case Inherited:
		return "inherited"
	case TestMarker:
		return "test marker"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ResolveName decides whether occ is reported by the digits-in-identifier
// check. Exemptions are applied before looking at the name.
func ResolveName(occ classify.NamedOccurrence) Reason {
	switch {
	case occ.IsOverrideOrImplementation:
		return Inherited
	case occ.HasTestFrameworkMarker:
		return TestMarker
	case ContainsDigit(occ.Name):
		return Reported
	default:
		return Clean
	}
}

// ContainsDigit reports whether name contains a decimal digit anywhere.
func ContainsDigit(name string) bool {
	return strings.IndexFunc(name, unicode.IsDigit) >= 0
}

// DigitsMessage formats the diagnostic message for a reported occurrence.
func DigitsMessage(occ classify.NamedOccurrence) string {
	return fmt.Sprintf("%s '%s' contains one or more digits in its name.", occ.Kind, occ.Name)
}
