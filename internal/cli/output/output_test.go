package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/pkg/core"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"text", ModeText},
		{"TEXT", ModeText},
		{"md", ModeMarkdown},
		{"markdown", ModeMarkdown},
		{"json", ModeJSON},
		{" sarif ", ModeSARIF},
		{"yaml", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on terminal", ModeAuto, true, ModeText},
		{"auto when piped", ModeAuto, false, ModeMarkdown},
		{"explicit text when piped", ModeText, false, ModeText},
		{"explicit json on terminal", ModeJSON, true, ModeJSON},
		{"sarif", ModeSARIF, false, ModeSARIF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_PlainStylesWhenPiped(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeText)

	r.Println(r.Styles().Error.Render("error"))
	assert.Equal(t, "error\n", out.String())
}

func TestRenderer_Success(t *testing.T) {
	tests := []struct {
		mode OutputMode
		want string
	}{
		{ModeText, "✓ done\n"},
		{ModeMarkdown, "**done**\n"},
		{ModeJSON, ""},
		{ModeSARIF, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			var out bytes.Buffer
			r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, tt.mode)
			r.Success("done")
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRenderer_JSONAndWarn(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())

	r.Warn("skipped")
	assert.Equal(t, "warning: skipped\n", errOut.String())
	assert.Same(t, &out, r.Writer())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Rules", FormatHeader(2, "Rules"))
	assert.Equal(t, "# Rules", FormatHeader(0, "Rules"))
	assert.Equal(t, "- **Units:** 3", FormatKeyValue("Units", "3"))
}

func TestWriteSARIF(t *testing.T) {
	orig := newRunGUID
	newRunGUID = func() string { return "run-1" }
	t.Cleanup(func() { newRunGUID = orig })

	rules := []core.RuleInfo{{
		ID:              "AV1536",
		Name:            "maintainability.switch_default",
		Description:     "Incomplete switch statement without a default case clause.",
		DefaultSeverity: core.SeverityWarning,
		DocURL:          "https://csharpcodingguidelines.com/maintainability-guidelines/#AV1536",
	}}
	files := []LintFileResult{{
		Path: "/src/app/Program.unit.json",
		Diagnostics: []LintDiagnostic{
			{RuleID: "AV1536", Severity: "warning", Message: "Incomplete switch statement without a default case clause.", Line: 3, Column: 9, EndLine: 3, EndColumn: 15, Start: 40, End: 46},
			{RuleID: "AV9999", Severity: "hint", Message: "other", Start: 0, End: 1},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, SARIFOptions{ToolName: "guidelint", ToolVersion: "1.0.0", Root: "/src"}, rules, files))

	var doc sarifReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]

	assert.Equal(t, "2.1.0", doc.Version)
	assert.Equal(t, "run-1", run.AutomationDetails.GUID)
	assert.Equal(t, "guidelint", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "AV9999", run.Tool.Driver.Rules[1].ID)
	assert.Equal(t, "warning", run.Tool.Driver.Rules[0].DefaultConfig.Level)

	require.Len(t, run.Results, 2)
	first := run.Results[0]
	assert.Equal(t, 0, first.RuleIndex)
	assert.Equal(t, "warning", first.Level)
	loc := first.Locations[0].PhysicalLocation
	assert.Equal(t, "app/Program.unit.json", loc.ArtifactLocation.URI)
	assert.Equal(t, "%SRCROOT%", loc.ArtifactLocation.URIBaseID)
	assert.Equal(t, &sarifRegion{StartLine: 3, StartColumn: 9, EndLine: 3, EndColumn: 15, CharOffset: 40, CharLength: 6}, loc.Region)

	second := run.Results[1]
	assert.Equal(t, 1, second.RuleIndex)
	assert.Equal(t, "note", second.Level)
	assert.Equal(t, &sarifRegion{CharOffset: 0, CharLength: 1}, second.Locations[0].PhysicalLocation.Region)
}

func TestWriteSARIF_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, SARIFOptions{ToolName: "guidelint"}, nil, nil))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	runs := doc["runs"].([]any)
	run := runs[0].(map[string]any)
	assert.Equal(t, []any{}, run["results"])
}
