// Package syntax defines the input tree the rule engine consumes.
//
// A host front end parses source text, resolves symbols and hands the engine
// a Unit: a tree of Nodes covering the source, the unit's Trivia (comments,
// directives, inactive text) and a SemanticModel answering the few symbol
// questions rules need. The engine never parses text and never derives
// symbol facts on its own.
//
// Units are plain data. They can be built in Go, or decoded from the JSON,
// YAML and MessagePack interchange formats (see Decode).
//
// A Unit must not be mutated once handed to the engine; analysis of one
// Unit may run concurrently with analysis of others.
package syntax
