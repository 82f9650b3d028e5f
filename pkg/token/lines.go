package token

import (
	"sort"
	"unicode/utf8"
)

// LineIndex resolves byte offsets of one source text to line and column positions.
type LineIndex struct {
	src   string
	lines []int // byte offset of the first character of each line
}

// NewLineIndex builds a line index for src.
func NewLineIndex(src string) *LineIndex {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &LineIndex{src: src, lines: lines}
}

// LineCount returns the number of lines in the source.
func (li *LineIndex) LineCount() int {
	return len(li.lines)
}

// Position converts a byte offset to a Position. Offsets past the end of the
// source are clamped. Columns count runes, not bytes.
func (li *LineIndex) Position(offset int) Position {
	if li == nil {
		return Position{Offset: offset}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.src) {
		offset = len(li.src)
	}
	line := sort.Search(len(li.lines), func(i int) bool { return li.lines[i] > offset }) - 1
	start := li.lines[line]
	return Position{
		Line:   line + 1,
		Column: utf8.RuneCountInString(li.src[start:offset]) + 1,
		Offset: offset,
	}
}

// Resolve converts both ends of a span.
func (li *LineIndex) Resolve(span Span) (start, end Position) {
	return li.Position(span.Start), li.Position(span.End)
}

// Line returns the text of the 1-based line n without its newline.
func (li *LineIndex) Line(n int) string {
	if li == nil || n < 1 || n > len(li.lines) {
		return ""
	}
	start := li.lines[n-1]
	end := len(li.src)
	if n < len(li.lines) {
		end = li.lines[n] - 1
	}
	if end > start && li.src[end-1] == '\r' {
		end--
	}
	return li.src[start:end]
}
