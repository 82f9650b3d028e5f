package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/pkg/lint/classify"
	"github.com/leapstack-labs/guidelint/pkg/lint/linttest"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
	"github.com/leapstack-labs/guidelint/pkg/token"
)

const source = `// header
namespace App
{
    /// <summary>Type doc.</summary>
    /** Extra doc. */
    class C
    {
        #region Fields
        private int f; // field note
        #endregion

        // leading
        void M()
        {
            // ReSharper disable once UnusedVariable
            int x = 1; // trailing in code
#pragma warning disable CS0219
            /**/
            //// banner
        }
        // after M
    }
}
#if DEBUG
`

func classifyAll(t *testing.T, unit *syntax.Unit) map[string]classify.Category {
	t.Helper()
	c := classify.NewCommentClassifier(unit, classify.MustCompilePatterns(classify.DefaultSuppressionPatterns))
	got := make(map[string]classify.Category, len(unit.Trivia))
	for i := range unit.Trivia {
		got[unit.Trivia[i].Text] = c.Classify(&unit.Trivia[i])
	}
	return got
}

func buildUnit(t *testing.T) *syntax.Unit {
	t.Helper()
	b := linttest.NewBuilder(t, source)
	field := b.Decl(syntax.KindField, "private int f;", "f")
	method := b.Method("void M()", "M")
	class := b.Type(syntax.KindClass, "class C", "C", field, method)
	return b.Unit(b.DeclAt(syntax.KindNamespace, b.Braced("namespace App"), "App", class))
}

func TestClassify_EveryTriviaHasOneCategory(t *testing.T) {
	unit := buildUnit(t)
	got := classifyAll(t, unit)

	want := map[string]classify.Category{
		"// header":                                classify.Leading,
		"/// <summary>Type doc.</summary>":         classify.Documentation,
		"/** Extra doc. */":                        classify.Documentation,
		"#region Fields":                           classify.Region,
		"// field note":                            classify.Trailing,
		"#endregion":                               classify.Region,
		"// leading":                               classify.Leading,
		"// ReSharper disable once UnusedVariable": classify.Suppression,
		"// trailing in code":                      classify.Inline,
		"#pragma warning disable CS0219":           classify.Pragma,
		"/**/":                                     classify.Inline,
		"//// banner":                              classify.Inline,
		"// after M":                               classify.Trailing,
		"#if DEBUG":                                classify.Directive,
	}
	require.Len(t, unit.Trivia, len(want))
	assert.Equal(t, want, got)
	for text, cat := range got {
		assert.Equal(t, cat == classify.Inline, cat.Reportable(), text)
	}
}

func TestClassify_DisabledText(t *testing.T) {
	unit := &syntax.Unit{
		Root: &syntax.Node{Kind: syntax.KindUnit, Span: token.NewSpan(0, 40)},
		Trivia: []token.Trivia{
			{Kind: token.DisabledText, Text: "// not compiled", Span: token.NewSpan(0, 15)},
		},
	}
	c := classify.NewCommentClassifier(unit, nil)
	assert.Equal(t, classify.Directive, c.Classify(&unit.Trivia[0]))
}

func TestClassify_WithoutSource(t *testing.T) {
	method := &syntax.Node{Kind: syntax.KindMethod, Span: token.NewSpan(20, 40)}
	class := &syntax.Node{Kind: syntax.KindClass, Span: token.NewSpan(0, 60), Children: []*syntax.Node{method}}
	unit := &syntax.Unit{
		Root: &syntax.Node{Kind: syntax.KindUnit, Span: token.NewSpan(0, 60), Children: []*syntax.Node{class}},
		Trivia: []token.Trivia{
			{Kind: token.LineComment, Text: "// before", Span: token.NewSpan(10, 19)},
			{Kind: token.LineComment, Text: "// inside", Span: token.NewSpan(25, 34)},
			{Kind: token.LineComment, Text: "// after", Span: token.NewSpan(45, 53)},
		},
	}
	c := classify.NewCommentClassifier(unit, nil)
	assert.Equal(t, classify.Leading, c.Classify(&unit.Trivia[0]))
	assert.Equal(t, classify.Inline, c.Classify(&unit.Trivia[1]))
	assert.Equal(t, classify.Trailing, c.Classify(&unit.Trivia[2]))
}

func TestClassify_SameLineIsNotLeading(t *testing.T) {
	src := "class C\n{\n    /* note */ void M()\n    {\n    }\n}"
	b := linttest.NewBuilder(t, src)
	unit := b.Unit(b.Type(syntax.KindClass, "class C", "C", b.Method("void M()", "M")))
	c := classify.NewCommentClassifier(unit, nil)
	require.Len(t, unit.Trivia, 1)
	assert.Equal(t, classify.Trailing, c.Classify(&unit.Trivia[0]))
}

func TestClassify_LeadingThroughOtherComments(t *testing.T) {
	src := "class C\n{\n    // first\n    /// <summary/>\n    void M()\n    {\n    }\n}"
	b := linttest.NewBuilder(t, src)
	unit := b.Unit(b.Type(syntax.KindClass, "class C", "C", b.Method("void M()", "M")))
	got := classifyAll(t, unit)
	assert.Equal(t, classify.Leading, got["// first"])
	assert.Equal(t, classify.Documentation, got["/// <summary/>"])
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "inline", classify.Inline.String())
	assert.Equal(t, "suppression", classify.Suppression.String())
	assert.Equal(t, "Category(42)", classify.Category(42).String())
}
