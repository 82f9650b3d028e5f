package exempt

import (
	"strings"

	"github.com/leapstack-labs/guidelint/pkg/token"
)

var testSectionWords = map[string]bool{
	"arrange": true,
	"act":     true,
	"assert":  true,
}

// IsArrangeActAssert reports whether t is a unit test section marker: a line
// comment consisting of "Arrange", "Act" or "Assert", or two of them joined
// by "and" as in "// Act and assert". Case and spacing are ignored.
func IsArrangeActAssert(t *token.Trivia) bool {
	if t.Kind != token.LineComment {
		return false
	}
	words := strings.Fields(strings.ToLower(t.Body()))
	switch len(words) {
	case 1:
		return testSectionWords[words[0]]
	case 3:
		return words[1] == "and" &&
			testSectionWords[words[0]] && testSectionWords[words[2]] &&
			words[0] != words[2]
	}
	return false
}
