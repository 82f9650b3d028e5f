// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/guidelint/internal/cli/output"
	"github.com/leapstack-labs/guidelint/pkg/lint/linttest"
	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// ViolatingSource holds one violation of each rule: the comment inside Run
// (AV2310), the incomplete switch on flag (AV1536) and the class name
// Worker1 (AV1704).
const ViolatingSource = `class Worker1
{
    void Run(bool flag)
    {
        // remove me
        switch (flag)
        {
            case true:
                break;
        }
    }
}`

// CleanSource violates no rule.
const CleanSource = `class Worker
{
    void Run(bool flag)
    {
        switch (flag)
        {
            case true:
                break;
            default:
                break;
        }
    }
}`

// BuildUnit builds the tree of ViolatingSource or CleanSource.
func BuildUnit(t testing.TB, src, path string) *syntax.Unit {
	t.Helper()
	name := "Worker"
	if strings.Contains(src, "Worker1") {
		name = "Worker1"
	}
	b := linttest.NewBuilder(t, src)
	governing := syntax.TypeRef{Name: "System.Boolean", Kind: syntax.TypeBoolean}
	labels := []linttest.LabelSpec{linttest.Case("case true", syntax.Bool(true))}
	if strings.Contains(src, "default:") {
		labels = append(labels, linttest.Default())
	}
	sw := b.SwitchAt(b.Braced("switch (flag)"), governing, labels...)
	param := b.Decl(syntax.KindParameter, "bool flag", "flag")
	method := b.Method("void Run(bool flag)", "Run", sw)
	method.Children = append([]*syntax.Node{param}, method.Children...)
	unit := b.Unit(b.Type(syntax.KindClass, "class "+name, name, method))
	unit.Path = path
	return unit
}

// WriteUnit encodes unit into dir/name, choosing the format from the name.
func WriteUnit(t testing.TB, dir, name string, unit *syntax.Unit) string {
	t.Helper()
	path := filepath.Join(dir, name)
	format, err := syntax.FormatFromPath(path)
	if err != nil {
		t.Fatalf("unit file name %s: %v", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	var buf bytes.Buffer
	if err := syntax.Encode(&buf, unit, format); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// SetupTestUnits creates a temporary directory of unit files:
//
//	src/Worker1.unit.json      three violations
//	src/nested/Clean.unit.yaml no violations
//	src/Binary.unit.msgpack    three violations
//	src/notes.txt              not a unit file
func SetupTestUnits(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteUnit(t, dir, "src/Worker1.unit.json", BuildUnit(t, ViolatingSource, "src/Worker1.cs"))
	WriteUnit(t, dir, "src/nested/Clean.unit.yaml", BuildUnit(t, CleanSource, "src/nested/Clean.cs"))
	WriteUnit(t, dir, "src/Binary.unit.msgpack", BuildUnit(t, ViolatingSource, "src/Binary.cs"))
	if err := os.WriteFile(filepath.Join(dir, "src", "notes.txt"), []byte("not a unit"), 0o600); err != nil {
		t.Fatalf("failed to write notes.txt: %v", err)
	}
	return dir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and basic structure.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
