// Package naming provides rules about identifiers.
//
// Rules in this package:
//   - AV1704: Identifiers should not contain digits
package naming
