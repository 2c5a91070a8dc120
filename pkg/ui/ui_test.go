package ui_test

import (
	"bytes"
	stdjson "encoding/json"
	"os"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/commands/install"
	"github.com/arthur-debert/agentkit/pkg/commands/list"
	"github.com/arthur-debert/agentkit/pkg/commands/status"
	"github.com/arthur-debert/agentkit/pkg/commands/toggle"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want ui.Format
	}{
		{"", ui.FormatAuto},
		{"auto", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"Terminal", ui.FormatTerminal},
		{"text", ui.FormatText},
		{"plain", ui.FormatText},
		{" json ", ui.FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ui.ParseFormat("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestAutoOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestDetectFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ui.ColorEnabled(&buf))
	assert.Equal(t, ui.FormatText, ui.DetectFormat(&buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ui.ColorEnabled(os.Stdout))
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestTextInstallResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	result := &install.InstallResult{
		Targets: []install.TargetResult{{
			Scope:  types.ScopeGlobal,
			Target: "claude",
			Results: []types.Result{
				{Status: types.StatusExists, Path: "/h/.claude"},
				{Status: types.StatusCreated, Path: "/h/.claude/agents/code-reviewer.md", Target: "/src/code-reviewer.md", Category: types.CategoryAgents, Name: "code-reviewer"},
				{Status: types.StatusError, Path: "/h/.claude/commands/bootstrap.md", Message: "conflict", Category: types.CategoryCommands, Name: "bootstrap"},
			},
			Tally: types.Tally{types.StatusExists: 1, types.StatusCreated: 1, types.StatusError: 1},
		}},
		Tally: types.Tally{types.StatusExists: 1, types.StatusCreated: 1, types.StatusError: 1},
	}
	require.NoError(t, r.RenderResult(result))

	out := buf.String()
	assert.Contains(t, out, "Install Claude Code (global)")
	assert.Contains(t, out, "created  agents/code-reviewer.md -> /src/code-reviewer.md")
	assert.Contains(t, out, "error    commands/bootstrap.md  conflict")
	assert.NotContains(t, out, "/h/.claude\n", "directory bookkeeping is hidden")
	assert.Contains(t, out, "Total: 1 created, 1 exists, 1 error")
}

func TestTextListMarksDisabled(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	result := &list.ListResult{Scopes: []list.ScopeListing{{
		Scope: types.ScopeGlobal,
		Categories: []list.CategoryListing{
			{Category: types.CategoryAgents, Dir: "/h/.claude/agents", Items: []types.InstalledItem{
				{Name: "code-reviewer", Category: types.CategoryAgents, Known: true},
				{Name: "doc-writer", Category: types.CategoryAgents, Enabled: true, Known: true},
			}},
			{Category: types.CategoryCommands, Dir: "/h/.claude/commands"},
		},
	}}}
	require.NoError(t, r.RenderResult(result))

	out := buf.String()
	assert.Contains(t, out, "[ ] @code-reviewer (disabled)")
	assert.Contains(t, out, "[x] @doc-writer\n")
	assert.Contains(t, out, "none")
}

func TestTextToggleAndStatus(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&toggle.ToggleResult{
		Results: []types.Result{{Status: types.StatusUpdated, Category: types.CategoryAgents, Name: "code-reviewer"}},
		Tally:   types.Tally{types.StatusUpdated: 1},
	}))
	assert.Contains(t, buf.String(), "updated  @code-reviewer")

	buf.Reset()
	require.NoError(t, r.RenderResult(&status.StatusResult{
		SourceDir: "/src",
		Scopes: []status.ScopeStatus{{
			Scope: types.ScopeGlobal,
			Targets: []status.TargetStatus{
				{Target: "cursor", DisplayName: "Cursor", Dir: "/h/.cursor", Installed: true, Supported: true, RulesFile: "/h/.cursor/.cursorrules", Rules: status.RulesStale},
			},
		}},
	}))
	assert.Contains(t, buf.String(), "Cursor")
	assert.Contains(t, buf.String(), "stale")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrSourceMissing, "no agents")))
	var decoded map[string]string
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "SOURCE_MISSING", decoded["code"])
}

func TestRenderMarkdownPlain(t *testing.T) {
	assert.Equal(t, "# Title\n", ui.RenderMarkdown("# Title\n", ui.FormatText, 0))
}
