package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
	Offset int `json:"offset"` // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open byte range [Start, End) within one source unit.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewSpan creates a span from start and end offsets.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// IsValid reports whether the span is well formed (0 <= Start <= End).
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Covers returns true if other lies entirely within s.
func (s Span) Covers(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Before reports whether s ends at or before the start of other.
func (s Span) Before(other Span) bool {
	return s.End <= other.Start
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
