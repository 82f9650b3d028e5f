package switches

import (
	"fmt"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// IsComplete reports whether the switch covers its whole domain. A default
// clause or a catch-all pattern covers everything; open domains are complete
// by definition.
func IsComplete(s Shape) bool {
	if s.HasDefault || s.HasCatchAll {
		return true
	}
	switch s.Domain.Kind {
	case DomainBool, DomainNullableBool, DomainEnum, DomainNullableEnum:
		return len(Missing(s)) == 0
	case DomainFlagsEnum, DomainOther:
		return true
	}
	panic(fmt.Sprintf("switches: unhandled domain kind %s", s.Domain.Kind))
}

// Missing returns the required values without a label, in domain order.
func Missing(s Shape) []syntax.Constant {
	var missing []syntax.Constant
	for _, v := range s.Domain.Required() {
		if !s.Covers(v) {
			missing = append(missing, v)
		}
	}
	return missing
}
