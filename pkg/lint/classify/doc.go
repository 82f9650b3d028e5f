// Package classify labels the constructs rules look at.
//
// Comments are sorted into exactly one Category based on their text and their
// position in the tree; only Inline comments are candidates for reporting.
// Named declarations are turned into NamedOccurrences carrying their symbol
// kind and the facts exemptions are decided on.
//
// Classification is pure: it reads the unit and the semantic model and never
// depends on which other elements were classified before.
package classify
