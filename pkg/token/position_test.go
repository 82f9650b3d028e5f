package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s := NewSpan(4, 10)

	assert.True(t, s.IsValid())
	assert.Equal(t, 6, s.Len())
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(10))
	assert.True(t, s.Covers(NewSpan(5, 10)))
	assert.False(t, s.Covers(NewSpan(3, 5)))
	assert.True(t, NewSpan(0, 4).Before(s))
	assert.Equal(t, NewSpan(1, 10), s.Union(NewSpan(1, 2)))
	assert.Equal(t, "[4,10)", s.String())
	assert.False(t, NewSpan(5, 4).IsValid())
	assert.True(t, NewSpan(3, 3).Empty())
}

func TestLineIndex(t *testing.T) {
	src := "class C\n{\r\n  void M() { }\n}"
	li := NewLineIndex(src)

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start", 0, Position{Line: 1, Column: 1, Offset: 0}},
		{"end of first line", 7, Position{Line: 1, Column: 8, Offset: 7}},
		{"second line", 8, Position{Line: 2, Column: 1, Offset: 8}},
		{"third line indent", 13, Position{Line: 3, Column: 3, Offset: 13}},
		{"clamped", 1000, Position{Line: 4, Column: 2, Offset: len(src)}},
		{"negative", -3, Position{Line: 1, Column: 1, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, li.Position(tt.offset))
		})
	}

	assert.Equal(t, 4, li.LineCount())
	assert.Equal(t, "{", li.Line(2))
	assert.Equal(t, "  void M() { }", li.Line(3))
	assert.Equal(t, "", li.Line(9))
}

func TestLineIndexCountsRunes(t *testing.T) {
	li := NewLineIndex("// ñandú x")
	assert.Equal(t, 10, li.Position(len("// ñandú ")).Column)
}

func TestNilLineIndex(t *testing.T) {
	var li *LineIndex
	assert.Equal(t, Position{Offset: 12}, li.Position(12))
}

func TestTrivia(t *testing.T) {
	line := Trivia{Kind: LineComment, Text: "//  Arrange "}
	block := Trivia{Kind: BlockComment, Text: "/* note */"}

	assert.True(t, line.IsComment())
	assert.True(t, line.IsLineComment())
	assert.Equal(t, "Arrange", line.Body())
	assert.True(t, block.IsBlockComment())
	assert.Equal(t, "note", block.Body())

	dir := Trivia{Kind: Directive, Text: "#region X"}
	assert.False(t, dir.IsComment())
}

func TestTriviaKindText(t *testing.T) {
	var k TriviaKind
	assert.NoError(t, k.UnmarshalText([]byte("Block_Comment")))
	assert.Equal(t, BlockComment, k)
	assert.Error(t, k.UnmarshalText([]byte("whitespace")))

	text, err := DisabledText.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "disabled_text", string(text))
}
