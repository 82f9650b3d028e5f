package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidUnit is returned when a unit violates the structural invariants
// the engine relies on.
var ErrInvalidUnit = errors.New("invalid unit")

// Validate checks that the unit is structurally sound: a root is present,
// every span is well formed and lies within the source (when one is given),
// children lie within their parent in source order, and identifiers and
// labels lie within their node.
func Validate(u *Unit) error {
	if u == nil || u.Root == nil {
		return fmt.Errorf("%w: missing root node", ErrInvalidUnit)
	}
	limit := -1
	if u.Source != "" {
		limit = len(u.Source)
	}
	if err := validateNode(u.Root, limit); err != nil {
		return err
	}
	for i := range u.Trivia {
		t := &u.Trivia[i]
		if !t.Span.IsValid() || (limit >= 0 && t.Span.End > limit) {
			return fmt.Errorf("%w: trivia %q has span %s out of range", ErrInvalidUnit, t.Text, t.Span)
		}
	}
	return nil
}

func validateNode(n *Node, limit int) error {
	if n.Kind == KindTrivia {
		return fmt.Errorf("%w: node at %s uses the trivia pseudo-kind", ErrInvalidUnit, n.Span)
	}
	if !n.Span.IsValid() || (limit >= 0 && n.Span.End > limit) {
		return fmt.Errorf("%w: %s node has span %s out of range", ErrInvalidUnit, n.Kind, n.Span)
	}
	if n.Name != nil && !n.Span.Covers(n.Name.Span) {
		return fmt.Errorf("%w: name %q lies outside its %s node", ErrInvalidUnit, n.Name.Text, n.Kind)
	}
	if n.Switch != nil {
		for _, l := range n.Switch.Labels() {
			if !n.Span.Covers(l.Span) {
				return fmt.Errorf("%w: case label at %s lies outside its switch", ErrInvalidUnit, l.Span)
			}
			if l.Kind == LabelConstant && l.Value == nil {
				return fmt.Errorf("%w: constant case label at %s has no value", ErrInvalidUnit, l.Span)
			}
		}
	}
	prevEnd := n.Span.Start
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%w: nil child in %s node", ErrInvalidUnit, n.Kind)
		}
		if !n.Span.Covers(c.Span) {
			return fmt.Errorf("%w: %s node %s lies outside its parent %s", ErrInvalidUnit, c.Kind, c.Span, n.Span)
		}
		if c.Span.Start < prevEnd {
			return fmt.Errorf("%w: %s node %s overlaps or precedes its sibling", ErrInvalidUnit, c.Kind, c.Span)
		}
		prevEnd = c.Span.End
		if err := validateNode(c, limit); err != nil {
			return err
		}
	}
	return nil
}
