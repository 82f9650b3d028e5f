package naming

import (
	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/lint"
	"github.com/leapstack-labs/guidelint/pkg/lint/classify"
	"github.com/leapstack-labs/guidelint/pkg/lint/exempt"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

func init() {
	lint.Register(DigitsInIdentifiers)
}

// DigitsInIdentifiers reports declared names that contain digits.
var DigitsInIdentifiers = lint.RuleDef{
	ID:          "AV1704",
	Name:        "naming.digits_in_identifiers",
	Group:       "naming",
	Description: "Don't include numbers in variables, parameters and type members.",
	Message:     "<Kind> '<name>' contains one or more digits in its name.",
	Severity:    core.SeverityWarning,
	Kinds: []syntax.Kind{
		syntax.KindClass, syntax.KindStruct, syntax.KindEnum, syntax.KindInterface,
		syntax.KindField, syntax.KindProperty, syntax.KindEvent,
		syntax.KindMethod, syntax.KindLocalFunction,
		syntax.KindParameter, syntax.KindLocal,
	},
	Check:      checkDigitsInIdentifiers,
	ConfigKeys: []string{"test_markers"},
	Impact:     lint.ImpactLow,
	Rationale: `A number in a name is almost always a sign of a lazy name: str1
and str2 tell the reader nothing about how they differ.`,
	BadExample:  `string str12 = "A";`,
	GoodExample: `string customerName = "A";`,
	Fix: `Rename to describe the purpose. Members that override or implement
another member are reported on the base declaration only, and test methods
marked with a known framework attribute are exempt.`,
}

type digitsOptions struct {
	TestMarkers []string `mapstructure:"test_markers"`
}

func checkDigitsInIdentifiers(pass *lint.Pass, el syntax.Element) []lint.Diagnostic {
	markers := pass.Memo("markers", func() any {
		var o digitsOptions
		if err := lint.DecodeOptions(pass.Options, &o); err != nil || o.TestMarkers == nil {
			o.TestMarkers = classify.DefaultTestMarkers
		}
		return classify.NewMarkerSet(o.TestMarkers)
	}).(classify.MarkerSet)

	occ, ok := classify.Occurrence(el, pass.Model, markers)
	if !ok || exempt.ResolveName(occ) != exempt.Reported {
		return nil
	}
	return []lint.Diagnostic{pass.Diagnostic(occ.Span, exempt.DigitsMessage(occ))}
}
