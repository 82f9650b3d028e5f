package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/leapstack-labs/guidelint/pkg/lint/rules/comments"
	_ "github.com/leapstack-labs/guidelint/pkg/lint/rules/maintainability"
	_ "github.com/leapstack-labs/guidelint/pkg/lint/rules/naming"
)
