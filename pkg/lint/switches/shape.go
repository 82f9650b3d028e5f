package switches

import (
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// Shape is what completeness is decided on: the domain of the governing type
// and the labels actually present.
type Shape struct {
	Domain      Domain
	Labels      []syntax.Constant // distinct constant labels in source order
	HasDefault  bool
	HasCatchAll bool
}

// Covers reports whether v is among the present labels.
func (s Shape) Covers(v syntax.Constant) bool {
	for _, l := range s.Labels {
		if l.Equal(v) {
			return true
		}
	}
	return false
}

// BuildShape derives the shape of a switch node. ok is false when the switch
// must not be judged: it is not a switch, the host reported errors for it,
// or two of its labels denote the same constant.
func BuildShape(n *syntax.Node, model syntax.SemanticModel) (shape Shape, ok bool) {
	if n == nil || n.Kind != syntax.KindSwitch || n.Switch == nil || n.HasErrors {
		return Shape{}, false
	}

	seen := make(map[string]bool)
	constantOnly := true
	for _, label := range n.Switch.Labels() {
		switch label.Kind {
		case syntax.LabelDefault:
			shape.HasDefault = true
		case syntax.LabelCatchAll:
			shape.HasCatchAll = true
		case syntax.LabelConstant:
			if label.Value == nil {
				constantOnly = false
				continue
			}
			key := label.Value.Key()
			if seen[key] {
				return Shape{}, false
			}
			seen[key] = true
			shape.Labels = append(shape.Labels, *label.Value)
		default:
			constantOnly = false
		}
	}

	if constantOnly {
		shape.Domain = DomainOf(n.Switch.Governing, model)
	} else {
		shape.Domain = Other()
	}
	return shape, true
}
