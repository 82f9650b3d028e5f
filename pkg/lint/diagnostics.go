package lint

import (
	"sort"
	"strings"
)

// SortDiagnostics orders diagnostics by span start, then rule ID, then span
// end, then message. The order is total, so sorting is deterministic.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.Message < b.Message
	})
}

// FilterByRule returns the diagnostics reported by ruleID.
func FilterByRule(diags []Diagnostic, ruleID string) []Diagnostic {
	var result []Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			result = append(result, d)
		}
	}
	return result
}

// Golden formats diagnostics one per line in their current order, for
// comparisons in tests and stable textual output.
func Golden(diags []Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
