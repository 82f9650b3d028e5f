// Package maintainability provides rules about control flow that is easy to
// get wrong when code evolves.
//
// Rules in this package:
//   - AV1536: Switch statements over closed domains need a default clause
package maintainability
