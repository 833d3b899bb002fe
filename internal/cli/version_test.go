package cli

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.0.0", "abc123", "2026-10-01", "goreleaser")

	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print version information", cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
}

func TestPrintVersion_TextFormat(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		builtBy string
		want    []string
	}{
		{
			name:    "prints all version info",
			version: "1.0.0",
			commit:  "abc123",
			date:    "2026-10-01",
			builtBy: "goreleaser",
			want: []string{
				"serverseeker version 1.0.0",
				"Commit: abc123",
				"Built: 2026-10-01",
				"Built by: goreleaser",
				"Go: " + runtime.Version(),
			},
		},
		{
			name:    "prints dev version",
			version: "dev",
			commit:  "unknown",
			date:    "unknown",
			builtBy: "unknown",
			want: []string{
				"serverseeker version dev",
				"Commit: unknown",
				"Built: unknown",
				"Built by: unknown",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			var buf bytes.Buffer

			err := printVersion(&buf, tt.version, tt.commit, tt.date, tt.builtBy)
			require.NoError(t, err)

			output := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestPrintVersion_JSONFormat(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(cmdutil.KeyJSON, true)

	var buf bytes.Buffer
	err := printVersion(&buf, "1.0.0", "abc123", "2026-10-01", "goreleaser")
	require.NoError(t, err)

	var result struct {
		Status string      `json:"status"`
		Data   VersionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "1.0.0", result.Data.Version)
	assert.Equal(t, "abc123", result.Data.Commit)
	assert.Equal(t, "2026-10-01", result.Data.Date)
	assert.Equal(t, "goreleaser", result.Data.BuiltBy)
	assert.Equal(t, runtime.Version(), result.Data.GoVersion)
	assert.Contains(t, result.Data.UserAgent, "serverseeker-go/1.0.0 ")
}

func TestVersionCommand_Execute(t *testing.T) {
	tests := []struct {
		name       string
		jsonMode   bool
		wantOutput []string
	}{
		{
			name:     "text output",
			jsonMode: false,
			wantOutput: []string{
				"serverseeker version 1.0.0",
				"Commit: abc123",
			},
		},
		{
			name:     "json output",
			jsonMode: true,
			wantOutput: []string{
				`"status": "success"`,
				`"version": "1.0.0"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set(cmdutil.KeyJSON, tt.jsonMode)

			cmd := NewVersionCommand("1.0.0", "abc123", "2026-10-01", "goreleaser")
			cmd.SetArgs([]string{})

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			require.NoError(t, cmd.Execute())
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestVersionCommand_RejectsArgs(t *testing.T) {
	cmd := NewVersionCommand("1.0.0", "abc123", "2026-10-01", "goreleaser")
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestPrintVersionText_Format(t *testing.T) {
	info := VersionInfo{
		Version:   "1.0.0",
		Commit:    "abc123",
		Date:      "2026-10-01",
		BuiltBy:   "goreleaser",
		GoVersion: "go1.23.0",
	}

	var buf bytes.Buffer
	require.NoError(t, printVersionText(&buf, info))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "serverseeker version 1.0.0", lines[0])
	assert.Equal(t, "Commit: abc123", lines[1])
	assert.Equal(t, "Built: 2026-10-01", lines[2])
	assert.Equal(t, "Built by: goreleaser", lines[3])
	assert.Equal(t, "Go: go1.23.0", lines[4])
}
