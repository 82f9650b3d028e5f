package maintainability

import (
	"github.com/leapstack-labs/guidelint/pkg/core"
	"github.com/leapstack-labs/guidelint/pkg/lint"
	"github.com/leapstack-labs/guidelint/pkg/lint/switches"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

func init() {
	lint.Register(SwitchDefault)
}

// SwitchDefaultMessage is reported for incomplete switch statements.
const SwitchDefaultMessage = "Incomplete switch statement without a default case clause."

// SwitchDefault reports switch statements over bool or enum types that
// neither list every value nor have a default clause.
var SwitchDefault = lint.RuleDef{
	ID:          "AV1536",
	Name:        "maintainability.switch_default",
	Group:       "maintainability",
	Description: "Always add a default block after the last case in a switch statement.",
	Message:     SwitchDefaultMessage,
	Severity:    core.SeverityWarning,
	Kinds:       []syntax.Kind{syntax.KindSwitch},
	Check:       checkSwitchDefault,
	Impact:      lint.ImpactMedium,
	Rationale: `A switch over an enum that silently ignores unlisted members
keeps compiling when a member is added, and the new value falls through
unnoticed.`,
	BadExample: `switch (status)
{
    case Status.Pending:
    case Status.Active:
        Process();
        break;
}`,
	GoodExample: `switch (status)
{
    case Status.Pending:
    case Status.Active:
        Process();
        break;
    default:
        throw new InvalidEnumArgumentException(nameof(status));
}`,
	Fix: "List every value, or add a default clause that throws for unexpected values.",
}

func checkSwitchDefault(pass *lint.Pass, el syntax.Element) []lint.Diagnostic {
	shape, ok := switches.BuildShape(el.Node, pass.Model)
	if !ok || switches.IsComplete(shape) {
		return nil
	}
	return []lint.Diagnostic{pass.Diagnostic(el.Node.Span, SwitchDefaultMessage)}
}
