// Package rules provides the guideline rule implementations.
//
// Rules are organized by the guideline categories they enforce:
//   - documentation: comment placement (AV2310)
//   - maintainability: control-flow robustness (AV1536)
//   - naming: identifier conventions (AV1704)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/guidelint/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/guidelint/pkg/lint/rules/naming"
package rules
