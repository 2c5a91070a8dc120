package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for agentkit
	EnvDataDir = "AGENTKIT_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for agentkit
	EnvConfigDir = "AGENTKIT_CONFIG_DIR"
)

// Fixed names. These are part of the on-disk contract other tooling relies on.
const (
	// AppDirName is the directory name for agentkit-specific files
	AppDirName = "agentkit"

	// ConfigStoreFile is the JSON document of disabled items and installed targets
	ConfigStoreFile = "agentkit.json"

	// SettingsFile is the user settings file inside the config dir
	SettingsFile = "config.toml"

	// BundleDir is where the embedded assets are materialised inside the data dir
	BundleDir = "assets"
)

// Options overrides the environment-derived roots. Empty fields are resolved.
type Options struct {
	Home      string
	Cwd       string
	DataDir   string
	ConfigDir string
}

// Paths provides centralized path management for agentkit
type Paths struct {
	home      string
	cwd       string
	dataDir   string
	configDir string
}

// New resolves the roots. An unresolvable home directory is fatal: there is
// no global tree to work on without it.
func New(opts Options) (*Paths, error) {
	p := &Paths{
		home:      opts.Home,
		cwd:       opts.Cwd,
		dataDir:   opts.DataDir,
		configDir: opts.ConfigDir,
	}

	if p.home == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return nil, errors.Wrap(err, errors.ErrHomeDir, "cannot resolve home directory")
		}
		p.home = home
	}

	if p.cwd == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot resolve working directory")
		}
		p.cwd = cwd
	}

	if p.dataDir == "" {
		if dir := os.Getenv(EnvDataDir); dir != "" {
			p.dataDir = expandHome(dir, p.home)
		} else {
			p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
		}
	}

	if p.configDir == "" {
		if dir := os.Getenv(EnvConfigDir); dir != "" {
			p.configDir = expandHome(dir, p.home)
		} else {
			p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
		}
	}

	return p, nil
}

// Home returns the user's home directory
func (p *Paths) Home() string { return p.home }

// Cwd returns the working directory project scope resolves against
func (p *Paths) Cwd() string { return p.cwd }

// DataDir returns agentkit's data directory
func (p *Paths) DataDir() string { return p.dataDir }

// ConfigDir returns agentkit's settings directory
func (p *Paths) ConfigDir() string { return p.configDir }

// SettingsPath returns the user settings file
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.configDir, SettingsFile)
}

// BundlePath returns where the embedded assets are materialised
func (p *Paths) BundlePath() string {
	return filepath.Join(p.dataDir, BundleDir)
}

// scopeRoot is the directory a scope's editor folders live in
func (p *Paths) scopeRoot(scope types.Scope) string {
	if scope == types.ScopeProject {
		return p.cwd
	}
	return p.home
}

// ClaudeDir returns <home>/.claude for global scope, <cwd>/.claude for project
func (p *Paths) ClaudeDir(scope types.Scope) string {
	return p.EditorDir(targets.Default(), scope)
}

// CategoryDir returns ClaudeDir(scope)/<category>
func (p *Paths) CategoryDir(scope types.Scope, category types.Category) string {
	return filepath.Join(p.ClaudeDir(scope), string(category))
}

// AgentsDir returns the native agents directory
func (p *Paths) AgentsDir(scope types.Scope) string {
	return p.CategoryDir(scope, types.CategoryAgents)
}

// CommandsDir returns the native commands directory. Commands are global-only;
// callers must not ask for the project scope.
func (p *Paths) CommandsDir(scope types.Scope) string {
	return p.CategoryDir(scope, types.CategoryCommands)
}

// SkillsDir returns the native skills directory
func (p *Paths) SkillsDir(scope types.Scope) string {
	return p.CategoryDir(scope, types.CategorySkills)
}

// ArchitectureDir returns the native architecture docs directory
func (p *Paths) ArchitectureDir(scope types.Scope) string {
	return p.CategoryDir(scope, types.CategoryArchitecture)
}

// EditorDir returns the root folder of a target in a scope
func (p *Paths) EditorDir(t targets.Target, scope types.Scope) string {
	return filepath.Join(p.scopeRoot(scope), t.RootDir)
}

// EditorCategoryDir returns <editorDir>/<category>
func (p *Paths) EditorCategoryDir(t targets.Target, scope types.Scope, category types.Category) string {
	return filepath.Join(p.EditorDir(t, scope), string(category))
}

// EditorAgentsDir returns <editorDir>/agents
func (p *Paths) EditorAgentsDir(t targets.Target, scope types.Scope) string {
	return p.EditorCategoryDir(t, scope, types.CategoryAgents)
}

// RulesFilePath returns the merged rules document of a merge-required target.
// Only the global scope is supported for those targets.
func (p *Paths) RulesFilePath(t targets.Target) string {
	return filepath.Join(p.EditorDir(t, types.ScopeGlobal), t.RulesFile)
}

// ConfigStorePath returns the single Config Store document, independent of scope
func (p *Paths) ConfigStorePath() string {
	return filepath.Join(p.ClaudeDir(types.ScopeGlobal), ConfigStoreFile)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
