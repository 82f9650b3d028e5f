// Package linttest helps test rules against small source fixtures.
//
// Fixtures are written as source text with the expected diagnostic spans
// marked by [| and |]. The markup is stripped by Parse, a Builder assembles
// the syntax tree by locating substrings of the stripped text, and Verify
// runs rules and compares reported spans and messages in order:
//
//	fx := linttest.Parse(`class [|C5|] { }`)
//	b := linttest.NewBuilder(t, fx.Source)
//	unit := b.Unit(b.Decl(syntax.KindClass, "class C5 { }", "C5"))
//	linttest.Verify(t, unit, fx, "AV1704", "Class 'C5' contains one or more digits in its name.")
//
// Comments and directives are scanned from the fixture text automatically.
package linttest
