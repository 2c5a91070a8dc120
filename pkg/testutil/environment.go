// pkg/testutil/environment.go
// DEPENDENCIES: pkg/paths, pkg/filesystem
// PURPOSE: Orchestrate isolated test environments

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Environment is a complete, isolated agentkit world rooted in a temp dir
type Environment struct {
	Root      string
	Home      string
	Cwd       string
	Source    string
	DataDir   string
	ConfigDir string

	FS    types.FS
	Paths *paths.Paths

	t *testing.T
}

// NewEnvironment creates directories for home, project, source and XDG roots
// and points the process environment at them for the duration of the test.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	// macOS temp dirs live behind a /var -> /private/var symlink; resolve it so
	// link targets compare equal to the paths we build.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &Environment{
		Root:      root,
		Home:      filepath.Join(root, "home"),
		Cwd:       filepath.Join(root, "project"),
		Source:    filepath.Join(root, "source"),
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		FS:        filesystem.NewOS(),
		t:         t,
	}

	for _, dir := range []string{env.Home, env.Cwd, env.Source, env.DataDir, env.ConfigDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(env.Home, ".local", "share"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.Home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.Home, ".local", "state"))
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)

	p, err := paths.New(paths.Options{
		Home:      env.Home,
		Cwd:       env.Cwd,
		DataDir:   env.DataDir,
		ConfigDir: env.ConfigDir,
	})
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// WithDefaultSource populates Source with DefaultSourceTree and returns env
func (env *Environment) WithDefaultSource() *Environment {
	env.t.Helper()
	env.WithSourceTree(DefaultSourceTree())
	return env
}

// WithSourceTree writes tree (relative path -> content) under Source
func (env *Environment) WithSourceTree(tree FileTree) *Environment {
	env.t.Helper()
	WriteTree(env.t, env.Source, tree)
	return env
}

// SourcePath joins parts onto the source root
func (env *Environment) SourcePath(parts ...string) string {
	return filepath.Join(append([]string{env.Source}, parts...)...)
}

// HomePath joins parts onto the home directory
func (env *Environment) HomePath(parts ...string) string {
	return filepath.Join(append([]string{env.Home}, parts...)...)
}

// ProjectPath joins parts onto the project directory
func (env *Environment) ProjectPath(parts ...string) string {
	return filepath.Join(append([]string{env.Cwd}, parts...)...)
}
