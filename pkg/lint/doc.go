// Package lint runs coding guideline rules over parsed source units.
//
// # Architecture
//
// A host front end parses and resolves C# source and hands over a
// syntax.Unit plus a syntax.SemanticModel. The Analyzer walks the unit once,
// nodes in preorder and then trivia by position, and dispatches every
// element to the rules registered for its kind. Rules only read; their
// diagnostics are collected, severity overrides applied, positions resolved
// and the result sorted by span start and rule ID.
//
// Shared classification lives in subpackages:
//
//   - classify: comment categories, named occurrences, suppression patterns
//   - exempt: exemption policies such as Arrange/Act/Assert markers
//   - switches: switch completeness over bool and enum domains
//
// # Rule Registration
//
// Rules register themselves from init functions:
//
//	import _ "github.com/leapstack-labs/guidelint/pkg/lint/rules"
//
// # Rule Categories
//
//   - documentation: AV2310 inline comments
//   - maintainability: AV1536 switch without default
//   - naming: AV1704 digits in identifiers
//
// # Configuration
//
//	config := lint.NewConfig()
//	config.Disable("AV2310")
//	config.SetSeverity("AV1536", core.SeverityError)
//	config.SetRuleOptions("AV1704", map[string]any{"test_markers": []string{"Acme.SpecAttribute"}})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:       "XX0001",
//		Name:     "custom.my_rule",
//		Group:    "custom",
//		Severity: core.SeverityWarning,
//		Kinds:    []syntax.Kind{syntax.KindClass},
//		Check:    checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
