package comments

import (
	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/lint"
	"github.com/leapstack-labs/guidelint/pkg/lint/classify"
	"github.com/leapstack-labs/guidelint/pkg/lint/exempt"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

func init() {
	lint.Register(InlineComments)
}

// InlineCommentsMessage is reported for every inline comment.
const InlineCommentsMessage = "Code blocks should not contain inline comments."

// InlineComments reports comments inside code blocks.
var InlineComments = lint.RuleDef{
	ID:          "AV2310",
	Name:        "documentation.inline_comments",
	Group:       "documentation",
	Description: "Code blocks should not contain inline comments.",
	Message:     InlineCommentsMessage,
	Severity:    core.SeverityWarning,
	Kinds:       []syntax.Kind{syntax.KindTrivia},
	Check:       checkInlineComments,
	ConfigKeys:  []string{"suppression_patterns"},
	Impact:      lint.ImpactLow,
	Rationale: `Comments inside a method usually explain code that should explain
itself. Prefer extracting a well-named method or variable.`,
	BadExample: `void Save()
{
    // write the order to disk
    File.WriteAllText(path, json);
}`,
	GoodExample: `void Save()
{
    WriteOrderToDisk();
}`,
	Fix: `Move the explanation into a name, or into the member's documentation
comment. Test section markers (// Arrange, // Act, // Assert) and tooling
suppression comments are allowed.`,
}

type inlineCommentsOptions struct {
	SuppressionPatterns []string `mapstructure:"suppression_patterns"`
}

func checkInlineComments(pass *lint.Pass, el syntax.Element) []lint.Diagnostic {
	t := el.Trivia
	if t == nil || !t.IsComment() {
		return nil
	}
	classifier := pass.Memo("classifier", func() any {
		return classify.NewCommentClassifier(pass.Unit, suppressionPatterns(pass.Options))
	}).(*classify.CommentClassifier)

	if !classifier.Classify(t).Reportable() || exempt.IsArrangeActAssert(t) {
		return nil
	}
	return []lint.Diagnostic{pass.Diagnostic(t.Span, InlineCommentsMessage)}
}

// suppressionPatterns compiles the configured patterns, falling back to the
// defaults when the options are missing or unusable.
func suppressionPatterns(opts map[string]any) *classify.PatternSet {
	var o inlineCommentsOptions
	if err := lint.DecodeOptions(opts, &o); err != nil || o.SuppressionPatterns == nil {
		o.SuppressionPatterns = classify.DefaultSuppressionPatterns
	}
	set, err := classify.CompilePatterns(o.SuppressionPatterns)
	if err != nil {
		return classify.MustCompilePatterns(classify.DefaultSuppressionPatterns)
	}
	return set
}
