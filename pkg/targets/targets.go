// Package targets is the static registry of editors agentkit can install into.
//
// A target is native when it reads a directory of individual agent files
// (symlinked or copied one by one). A target with a RulesFile instead reads a
// single document, so every agent is merged into <root>/<RulesFile>.
package targets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// DefaultID is the native target used when none is requested
const DefaultID = "claude"

// Target describes one supported editor
type Target struct {
	ID          string
	DisplayName string
	// RootDir is the editor's config folder, relative to the home directory
	// (global scope) or the working directory (project scope).
	RootDir string
	// RulesFile, when set, makes the target merge-required.
	RulesFile string
}

// Native reports whether the target supports a directory of individual files
func (t Target) Native() bool {
	return t.RulesFile == ""
}

// SupportsScope reports whether the target can be installed in scope.
// Merge-required targets are global only.
func (t Target) SupportsScope(scope types.Scope) bool {
	return t.Native() || scope == types.ScopeGlobal
}

// String implements fmt.Stringer
func (t Target) String() string {
	return fmt.Sprintf("%s (%s)", t.DisplayName, t.ID)
}

var registry = []Target{
	{ID: "claude", DisplayName: "Claude Code", RootDir: ".claude"},
	{ID: "cursor", DisplayName: "Cursor", RootDir: ".cursor", RulesFile: ".cursorrules"},
	{ID: "windsurf", DisplayName: "Windsurf", RootDir: ".windsurf", RulesFile: ".windsurfrules"},
	{ID: "codex", DisplayName: "Codex CLI", RootDir: ".codex", RulesFile: "AGENTS.md"},
	{ID: "gemini", DisplayName: "Gemini CLI", RootDir: ".gemini", RulesFile: "GEMINI.md"},
}

// All returns every registered target, native first
func All() []Target {
	out := make([]Target, len(registry))
	copy(out, registry)
	return out
}

// IDs returns all target ids in registry order
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for _, t := range registry {
		ids = append(ids, t.ID)
	}
	return ids
}

// Get looks a target up by id
func Get(id string) (Target, bool) {
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

// MustGet looks a target up by id and panics if it is unknown.
// Use it only for ids that come from code, never from user input.
func MustGet(id string) Target {
	t, ok := Get(id)
	if !ok {
		panic(fmt.Sprintf("targets: unknown target id %q", id))
	}
	return t
}

// Default returns the default native target
func Default() Target {
	return MustGet(DefaultID)
}

// Resolve maps user-supplied ids to targets, defaulting to the native target
// when ids is empty. Duplicates are dropped.
func Resolve(ids []string) ([]Target, error) {
	if len(ids) == 0 {
		return []Target{Default()}, nil
	}

	seen := map[string]bool{}
	var out []Target
	for _, raw := range ids {
		id := strings.ToLower(strings.TrimSpace(raw))
		if id == "" || seen[id] {
			continue
		}
		t, ok := Get(id)
		if !ok {
			valid := IDs()
			sort.Strings(valid)
			return nil, errors.Newf(errors.ErrUnknownTarget, "unknown target %q; available: %s",
				raw, strings.Join(valid, ", "))
		}
		seen[id] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return []Target{Default()}, nil
	}
	return out, nil
}
