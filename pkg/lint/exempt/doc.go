// Package exempt decides whether classified constructs are excluded from
// reporting. Exemptions are an explicit allow-list: anything not recognized
// here is reportable.
package exempt
