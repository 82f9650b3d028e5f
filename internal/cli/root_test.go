package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/internal/cli/commands"
	"github.com/leapstack-labs/guidelint/internal/cli/config"
	"github.com/leapstack-labs/guidelint/internal/cli/output"
	"github.com/leapstack-labs/guidelint/internal/cli/testutil"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)
	cfgFile = ""

	root := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "guidelint", root.Use)
	for _, name := range []string{"version", "lint", "rules", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	for _, flag := range []string{"config", "verbose", "output", "docs-url"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRoot_LintUsesOutputFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := testutil.SetupTestUnits(t)

	out, _, err := executeRoot(t, "lint", dir, "-o", "json")
	require.ErrorIs(t, err, commands.ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 6, result.Summary.TotalIssues)
}

func TestRoot_ProjectConfig(t *testing.T) {
	dir := testutil.SetupTestUnits(t)
	cfg := `output: json
docs:
  base_url: https://docs.example.com/guidelines
lint:
  disabled: [AV2310, AV1704]
  severity:
    AV1536: error
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".guidelint.yaml"), []byte(cfg), 0o600))
	t.Chdir(dir)

	out, errOut, err := executeRoot(t, "lint", "--verbose")
	require.ErrorIs(t, err, commands.ErrLintIssues)
	assert.Contains(t, errOut, "Using config file:")

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output.LintSummary{FilesAnalyzed: 3, FilesWithIssues: 2, TotalIssues: 2, Errors: 2}, result.Summary)
	diag := result.Files[0].Diagnostics[0]
	assert.Equal(t, "AV1536", diag.RuleID)
	assert.Equal(t, "error", diag.Severity)
	assert.Equal(t, "https://docs.example.com/guidelines/maintainability-guidelines/#AV1536", diag.DocURL)
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guidelint.yaml"), []byte("jobs: -1\n"), 0o600))
	t.Chdir(dir)

	_, _, err := executeRoot(t, "lint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_Version(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "guidelint v"+Version)
}

func TestRoot_Completion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := executeRoot(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "guidelint")
		})
	}

	_, _, err := executeRoot(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.NotNil(t, GetRenderer(context.Background()))
}
