// cmd/agentkit/commands_test.go
// TEST TYPE: CLI Integration Tests
// DEPENDENCIES: Real filesystem via testutil.Environment, scripted Prompter
// PURPOSE: Verify flag handling, prompting, rendering and exit codes

package agentkit

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/testutil"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	stdout string
	stderr string
	code   int
}

func run(t *testing.T, env *testutil.Environment, p prompt.Prompter, args ...string) runResult {
	t.Helper()
	t.Setenv(logging.EnvLogFile, "-")
	if p == nil {
		p = prompt.NewNonInteractive()
	}
	cmd := NewRootCmdWithOptions(Options{
		Prompter: p,
		Paths:    paths.Options{Home: env.Home, Cwd: env.Cwd},
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--source", env.Source))

	code := Execute(cmd)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestInstallGlobalIsIdempotent(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	first := run(t, env, nil, "install", "-g")
	require.Equal(t, 0, first.code, first.stderr)
	assert.Contains(t, first.stdout, "Install Claude Code (global)")
	assert.Contains(t, first.stdout, "created  agents/code-reviewer.md")
	testutil.AssertSymlink(t, env.HomePath(".claude", "agents", "code-reviewer.md"),
		env.SourcePath("agents", "developers", "code-reviewer.md"))

	second := run(t, env, nil, "install", "-g")
	require.Equal(t, 0, second.code)
	assert.NotContains(t, second.stdout, "created")
	assert.Contains(t, second.stdout, "exists")
}

func TestInstallNoSymlinkAndTarget(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	res := run(t, env, nil, "install", "--global", "--no-symlink", "--target", "claude", "--target", "cursor")
	require.Equal(t, 0, res.code, res.stderr)
	testutil.AssertRegular(t, env.HomePath(".claude", "agents", "code-reviewer.md"))
	testutil.AssertExists(t, env.HomePath(".cursor", ".cursorrules"))
	assert.Contains(t, res.stdout, "Install Cursor (global)")
}

func TestInstallUnknownTarget(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	res := run(t, env, nil, "install", "-g", "--target", "emacs")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown target")
}

func TestInstallWithoutScopeNeedsTerminal(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	res := run(t, env, nil, "install")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "--global or --project")
}

func TestInstallPromptsForScope(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	p := &prompt.Scripted{Scopes: []types.Scope{types.ScopeProject}}

	res := run(t, env, p, "install")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"scope:install"}, p.Asked)
	testutil.AssertRegular(t, env.ProjectPath(".claude", "agents", "doc-writer.md"))
}

func TestScopeFlagsAreExclusive(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	res := run(t, env, nil, "install", "-g", "-p")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "mutually exclusive")
}

func TestDisableThenList(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-g").code)

	res := run(t, env, nil, "disable", "@code-reviewer", "-g")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "updated  @code-reviewer")
	testutil.AssertExists(t, env.HomePath(".claude", "agents", "code-reviewer.md.disabled"))

	listed := run(t, env, nil, "list", "-g")
	require.Equal(t, 0, listed.code)
	assert.Contains(t, listed.stdout, "[ ] @code-reviewer (disabled)")
	assert.Contains(t, listed.stdout, "[x] @doc-writer")
}

func TestEnableInteractiveSelection(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-g").code)
	require.Equal(t, 0, run(t, env, nil, "disable", "--all", "-g").code)

	p := &prompt.Scripted{Scopes: []types.Scope{types.ScopeGlobal}, Items: []string{"/bootstrap"}}
	res := run(t, env, p, "enable")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"scope:enable", "items:enable"}, p.Asked)
	testutil.AssertExists(t, env.HomePath(".claude", "commands", "bootstrap.md"))
	testutil.AssertExists(t, env.HomePath(".claude", "commands", "brainstorm.md.disabled"))
}

func TestToggleRejectsNamesWithAll(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	res := run(t, env, nil, "disable", "@code-reviewer", "--all", "-g")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not both")
}

func TestDisableProjectCommandUnsupported(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	res := run(t, env, nil, "disable", "/bootstrap", "-p")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "UNSUPPORTED")
}

func TestUninstallCancelledExitsZero(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-g").code)

	p := &prompt.Scripted{Targets: []string{"claude"}, Answers: []bool{false}}
	res := run(t, env, p, "uninstall", "-g")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, MsgCancelled)
	testutil.AssertExists(t, env.HomePath(".claude", "agents", "code-reviewer.md"))
}

func TestUninstallConfirmed(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-g").code)
	testutil.WriteFile(t, env.HomePath(".claude", "agents", "mine.md"), "# mine")

	p := &prompt.Scripted{Targets: []string{"claude"}, Answers: []bool{true}}
	res := run(t, env, p, "uninstall", "-g")
	require.Equal(t, 0, res.code, res.stderr)
	testutil.AssertNotExists(t, env.HomePath(".claude", "agents", "code-reviewer.md"))
	testutil.AssertExists(t, env.HomePath(".claude", "agents", "mine.md"))
}

func TestUninstallProject(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-p").code)

	p := &prompt.Scripted{Targets: []string{"claude"}, Answers: []bool{true}}
	res := run(t, env, p, "uninstall", "-p")
	require.Equal(t, 0, res.code, res.stderr)
	testutil.AssertNotExists(t, env.ProjectPath(".claude", "agents", "code-reviewer.md"))

	again := run(t, env, nil, "uninstall", "-p")
	assert.Equal(t, 0, again.code, again.stderr)
	assert.Contains(t, again.stdout, "Nothing is installed in the project scope.")
}

func TestListJSON(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-g").code)

	res := run(t, env, nil, "list", "-g", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var decoded struct {
		Scopes []struct {
			Scope      string `json:"scope"`
			Categories []struct {
				Category string `json:"category"`
				Items    []struct {
					Name    string `json:"name"`
					Enabled bool   `json:"enabled"`
				} `json:"items"`
			} `json:"categories"`
		} `json:"scopes"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	require.Len(t, decoded.Scopes, 1)
	assert.Equal(t, "global", decoded.Scopes[0].Scope)
	assert.Equal(t, "agents", decoded.Scopes[0].Categories[0].Category)
	assert.Len(t, decoded.Scopes[0].Categories[0].Items, len(testutil.FixtureAgents))
}

func TestStatus(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()
	require.Equal(t, 0, run(t, env, nil, "install", "-g", "-t", "claude", "-t", "windsurf").code)

	res := run(t, env, nil, "status", "-g")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Claude Code")
	assert.Contains(t, res.stdout, "Windsurf")
	assert.Contains(t, res.stdout, "current")
}

func TestMissingSourceIsFatal(t *testing.T) {
	env := testutil.NewEnvironment(t)
	cmd := NewRootCmdWithOptions(Options{
		Prompter: prompt.NewNonInteractive(),
		Paths:    paths.Options{Home: env.Home, Cwd: env.Cwd},
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"install", "-g", "--source", filepath.Join(env.Root, "nowhere")})

	assert.Equal(t, 1, Execute(cmd))
	assert.Contains(t, stderr.String(), "SOURCE_MISSING")
}

func TestMiscCommands(t *testing.T) {
	env := testutil.NewEnvironment(t).WithDefaultSource()

	version := run(t, env, nil, "version")
	require.Equal(t, 0, version.code)
	assert.Contains(t, version.stdout, "agentkit version")

	post := run(t, env, nil, "postinstall")
	require.Equal(t, 0, post.code)
	assert.Contains(t, post.stdout, "agentkit install --global")

	gen := run(t, env, nil, "genconfig")
	require.Equal(t, 0, gen.code, gen.stderr)
	assert.Contains(t, gen.stdout, "[install]")

	completion := run(t, env, nil, "completion", "bash")
	require.Equal(t, 0, completion.code)
	assert.Contains(t, completion.stdout, "agentkit")
}

func TestGenConfigWrite(t *testing.T) {
	env := testutil.NewEnvironment(t)

	res := run(t, env, nil, "genconfig", "--write")
	require.Equal(t, 0, res.code, res.stderr)
	written := filepath.Join(env.ConfigDir, "config.toml")
	testutil.AssertExists(t, written)
	assert.Contains(t, res.stdout, written)
}

func TestHelpTopics(t *testing.T) {
	env := testutil.NewEnvironment(t)

	index := run(t, env, nil, "help", "topics")
	require.Equal(t, 0, index.code, index.stderr)
	assert.Contains(t, index.stdout, "scopes")
	assert.Contains(t, index.stdout, "--dry-run")

	page := run(t, env, nil, "help", "disabled")
	require.Equal(t, 0, page.code)
	assert.Contains(t, page.stdout, "agentkit.json")

	cmdHelp := run(t, env, nil, "help", "install")
	require.Equal(t, 0, cmdHelp.code)
	assert.Contains(t, cmdHelp.stdout, "--no-symlink")
}
