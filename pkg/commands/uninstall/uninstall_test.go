// pkg/commands/uninstall/uninstall_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem, Install Engine for setup
// PURPOSE: Verify uninstall removes only kit-owned entries

package uninstall_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/commands/install"
	"github.com/arthur-debert/agentkit/pkg/commands/uninstall"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/testutil"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installed(t *testing.T, scope types.Scope, tgts ...targets.Target) (*testutil.Environment, *commands.Context) {
	t.Helper()
	env := testutil.NewEnvironment(t).WithDefaultSource()
	ctx := env.Context()
	_, err := install.Install(ctx, install.InstallOptions{
		Scopes:  []types.Scope{scope},
		Targets: tgts,
		Symlink: true,
	})
	require.NoError(t, err)
	return env, ctx
}

// User files alongside kit files survive, byte-identical.
func TestUninstallLeavesUserFiles(t *testing.T) {
	env, ctx := installed(t, types.ScopeGlobal)
	notes := env.HomePath(".claude", "agents", "my-custom-notes.md")
	testutil.WriteFile(t, notes, "personal notes\n")
	_, err := ctx.Reconciler().TransitionToDisabled(types.CategoryAgents, "doc-writer", types.ScopeGlobal)
	require.NoError(t, err)

	result, err := uninstall.Uninstall(ctx, uninstall.UninstallOptions{Scopes: []types.Scope{types.ScopeGlobal}})
	require.NoError(t, err)
	assert.Zero(t, result.Tally.Count(types.StatusError))

	assert.Equal(t, "personal notes\n", testutil.ReadFile(t, notes))
	for _, name := range []string{"code-reviewer.md", "doc-writer.md.disabled", "test-runner.md"} {
		testutil.AssertNotExists(t, env.HomePath(".claude", "agents", name))
	}
	testutil.AssertNotExists(t, env.HomePath(".claude", "commands", "bootstrap.md"))
	testutil.AssertNotExists(t, env.HomePath(".claude", "skills", "pdf-tools"))
	testutil.AssertExists(t, env.SourcePath("skills", "pdf-tools", "SKILL.md"))
	assert.Empty(t, ctx.Store.GetTargets())
}

func TestUninstallRemovesForeignSymlinks(t *testing.T) {
	env, ctx := installed(t, types.ScopeGlobal)
	link := env.HomePath(".claude", "agents", "renamed-upstream.md")
	require.NoError(t, os.Symlink(env.SourcePath("agents", "gone.md"), link))

	_, err := uninstall.Uninstall(ctx, uninstall.UninstallOptions{Scopes: []types.Scope{types.ScopeGlobal}})
	require.NoError(t, err)
	testutil.AssertNotExists(t, link)
}

func TestUninstallProjectCopies(t *testing.T) {
	env, ctx := installed(t, types.ScopeProject)
	userSkill := env.ProjectPath(".claude", "skills", "team-skill", "SKILL.md")
	testutil.WriteFile(t, userSkill, "ours")

	_, err := uninstall.Uninstall(ctx, uninstall.UninstallOptions{Scopes: []types.Scope{types.ScopeProject}})
	require.NoError(t, err)

	testutil.AssertNotExists(t, env.ProjectPath(".claude", "agents", "code-reviewer.md"))
	testutil.AssertNotExists(t, env.ProjectPath(".claude", "skills", "pdf-tools"))
	assert.Equal(t, "ours", testutil.ReadFile(t, userSkill))
	assert.Empty(t, ctx.Store.GetTargets())
	assert.Empty(t, uninstall.InstalledTargets(ctx, []types.Scope{types.ScopeProject}))
}

func TestProjectUninstallKeepsGlobalRecord(t *testing.T) {
	env, ctx := installed(t, types.ScopeGlobal)
	_, err := install.Install(ctx, install.InstallOptions{Scopes: []types.Scope{types.ScopeProject}, Symlink: true})
	require.NoError(t, err)

	_, err = uninstall.Uninstall(ctx, uninstall.UninstallOptions{Scopes: []types.Scope{types.ScopeProject}})
	require.NoError(t, err)

	assert.Equal(t, []string{"claude"}, ctx.Store.GetTargets())
	testutil.AssertExists(t, env.HomePath(".claude", "agents", "code-reviewer.md"))
}

func TestInstalledTargets(t *testing.T) {
	env, ctx := installed(t, types.ScopeGlobal, targets.MustGet("cursor"))

	ids := func(scopes ...types.Scope) []string {
		var out []string
		for _, tg := range uninstall.InstalledTargets(ctx, scopes) {
			out = append(out, tg.ID)
		}
		return out
	}

	assert.Equal(t, []string{"cursor"}, ids(types.ScopeGlobal))
	assert.Empty(t, ids(types.ScopeProject))

	testutil.WriteFile(t, env.ProjectPath(".claude", "agents", "mine.md"), "# mine")
	assert.Empty(t, ids(types.ScopeProject), "user files alone are not an install")

	testutil.WriteFile(t, env.ProjectPath(".claude", "agents", "code-reviewer.md"), "# copy")
	assert.Equal(t, []string{"claude"}, ids(types.ScopeProject))
	assert.Equal(t, []string{"claude", "cursor"}, ids(types.ScopeGlobal, types.ScopeProject), "registry order")
}

func TestUninstallMergeTarget(t *testing.T) {
	env, ctx := installed(t, types.ScopeGlobal, targets.MustGet("gemini"))
	keep := env.HomePath(".gemini", "settings.json")
	testutil.WriteFile(t, keep, "{}")

	result, err := uninstall.Uninstall(ctx, uninstall.UninstallOptions{
		Scopes:  []types.Scope{types.ScopeGlobal},
		Targets: []targets.Target{targets.MustGet("gemini")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Tally.Count(types.StatusRemoved))

	testutil.AssertNotExists(t, env.HomePath(".gemini", "GEMINI.md"))
	testutil.AssertNotExists(t, env.HomePath(".gemini", "architecture"))
	testutil.AssertExists(t, keep)
	assert.Empty(t, ctx.Store.GetTargets())
}

func TestUninstallTwiceIsSkipped(t *testing.T) {
	_, ctx := installed(t, types.ScopeGlobal, targets.MustGet("cursor"))
	opts := uninstall.UninstallOptions{
		Scopes:  []types.Scope{types.ScopeGlobal},
		Targets: []targets.Target{targets.MustGet("cursor")},
	}

	_, err := uninstall.Uninstall(ctx, opts)
	require.NoError(t, err)
	again, err := uninstall.Uninstall(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, []types.SyncStatus{types.StatusSkipped}, again.Tally.Statuses())
}

func TestUninstallFailureDoesNotBlockSiblings(t *testing.T) {
	env, _ := installed(t, types.ScopeGlobal)
	blocked := env.HomePath(".claude", "agents", "doc-writer.md")

	fsys := testutil.NewFailingFS(env.FS).FailOn(blocked, fmt.Errorf("permission denied"))
	ctx, err := commands.NewContext(commands.ContextOptions{FS: fsys, Paths: env.Paths, SourceDir: env.Source})
	require.NoError(t, err)

	result, err := uninstall.Uninstall(ctx, uninstall.UninstallOptions{Scopes: []types.Scope{types.ScopeGlobal}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Tally.Count(types.StatusError))
	testutil.AssertExists(t, blocked)
	testutil.AssertNotExists(t, env.HomePath(".claude", "agents", "test-runner.md"))
	testutil.AssertNotExists(t, filepath.Join(env.HomePath(".claude", "agents"), "code-reviewer.md"))
}

func TestUninstallDryRun(t *testing.T) {
	env, ctx := installed(t, types.ScopeGlobal)

	result, err := uninstall.Uninstall(ctx, uninstall.UninstallOptions{
		Scopes: []types.Scope{types.ScopeGlobal},
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Positive(t, result.Tally.Count(types.StatusRemoved))
	testutil.AssertExists(t, env.HomePath(".claude", "agents", "code-reviewer.md"))
	assert.Equal(t, []string{"claude"}, ctx.Store.GetTargets())
}
