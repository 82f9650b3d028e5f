// Package comments provides rules about comments in code, the
// documentation group of the guidelines.
//
// Rules in this package:
//   - AV2310: Code blocks should not contain inline comments
package comments
