package commands

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		info    BuildInfo
		wantOut []string
	}{
		{
			name:    "release version",
			info:    BuildInfo{Version: "0.1.0", GitCommit: "abc123", BuildDate: "2026-01-01"},
			wantOut: []string{"guidelint v0.1.0", "commit abc123", "built 2026-01-01", runtime.Version()},
		},
		{
			name:    "dev version",
			info:    BuildInfo{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"},
			wantOut: []string{"guidelint vdev", "commit unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			require.NoError(t, cmd.Execute())
			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand(BuildInfo{Version: "test"})

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}
