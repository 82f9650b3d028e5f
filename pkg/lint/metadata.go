package lint

import (
	"fmt"
	"strings"
)

// DefaultDocsBaseURL is the published guideline catalogue.
const DefaultDocsBaseURL = "https://csharpcodingguidelines.com"

// DocsBaseURL can be overridden via config for an internal mirror.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs the documentation URL of a rule: the page of its
// group, anchored at the rule ID.
func BuildDocURL(group, ruleID string) string {
	if group == "" {
		return fmt.Sprintf("%s/#%s", DocsBaseURL, ruleID)
	}
	return fmt.Sprintf("%s/%s-guidelines/#%s", DocsBaseURL, strings.ToLower(group), ruleID)
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}

// ImpactLevel represents predefined impact score ranges.
type ImpactLevel int

const (
	// ImpactLow for minor issues (0-30)
	ImpactLow ImpactLevel = 20
	// ImpactMedium for moderate issues (31-60)
	ImpactMedium ImpactLevel = 50
	// ImpactHigh for significant issues (61-80)
	ImpactHigh ImpactLevel = 70
	// ImpactCritical for critical issues (81-100)
	ImpactCritical ImpactLevel = 90
)

// Int returns the impact score as an integer.
func (l ImpactLevel) Int() int {
	return int(l)
}
