// Package status implements the status reporter.
//
// Status answers, per scope and editor target: is the target installed,
// how many of its items are enabled, disabled, user-authored or broken, and
// for merge-required targets whether the rules file matches what install
// would write now.
package status

import (
	"bytes"
	"os"

	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/state"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// RulesState describes a merged rules file relative to the current sources
type RulesState string

const (
	RulesCurrent RulesState = "current"
	RulesStale   RulesState = "stale"
	RulesMissing RulesState = "missing"
)

// StatusOptions defines the options for the status command
type StatusOptions struct {
	// Scopes to report; empty means global
	Scopes []types.Scope
	// Targets to report; empty means every registered target
	Targets []targets.Target
}

// Counts summarises the items of one category directory
type Counts struct {
	Category types.Category `json:"category"`
	Enabled  int            `json:"enabled"`
	Disabled int            `json:"disabled"`
	Broken   int            `json:"broken"`
	// User counts items that are not part of the source catalog
	User int `json:"user"`
}

// Total returns the number of items counted
func (c Counts) Total() int {
	return c.Enabled + c.Disabled
}

// TargetStatus is the state of one editor target in one scope
type TargetStatus struct {
	Target      string     `json:"target"`
	DisplayName string     `json:"displayName"`
	Dir         string     `json:"dir"`
	Installed   bool       `json:"installed"`
	Supported   bool       `json:"supported"`
	Counts      []Counts   `json:"counts,omitempty"`
	RulesFile   string     `json:"rulesFile,omitempty"`
	Rules       RulesState `json:"rules,omitempty"`
}

// ScopeStatus groups the target statuses of one scope
type ScopeStatus struct {
	Scope    types.Scope          `json:"scope"`
	Targets  []TargetStatus       `json:"targets"`
	Dangling []state.DanglingLink `json:"dangling,omitempty"`
}

// StatusResult is returned by Status
type StatusResult struct {
	SourceDir string        `json:"sourceDir"`
	Config    string        `json:"config"`
	Scopes    []ScopeStatus `json:"scopes"`
}

// Status inspects the filesystem and the Config Store. It never writes.
func Status(ctx *commands.Context, opts StatusOptions) (*StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	scopes := opts.Scopes
	if len(scopes) == 0 {
		scopes = []types.Scope{types.ScopeGlobal}
	}
	tgts := opts.Targets
	if len(tgts) == 0 {
		tgts = targets.All()
	}

	r := &reporter{
		ctx:        ctx,
		reconciler: ctx.Reconciler(),
		known:      ctx.Catalog.KnownNames(),
		installed:  map[string]bool{},
	}
	for _, id := range ctx.Store.GetTargets() {
		r.installed[id] = true
	}

	result := &StatusResult{
		SourceDir: ctx.Catalog.Root(),
		Config:    ctx.Store.Path(),
	}

	for _, scope := range scopes {
		ss := ScopeStatus{Scope: scope}
		for _, t := range tgts {
			ts, err := r.target(scope, t)
			if err != nil {
				return nil, err
			}
			ss.Targets = append(ss.Targets, ts)
		}
		ss.Dangling = r.dangling(scope)
		logger.Debug().
			Str("scope", string(scope)).
			Int("dangling", len(ss.Dangling)).
			Msg("Scope inspected")
		result.Scopes = append(result.Scopes, ss)
	}

	return result, nil
}

type reporter struct {
	ctx        *commands.Context
	reconciler *state.Reconciler
	known      map[string]bool
	installed  map[string]bool
}

func (r *reporter) target(scope types.Scope, t targets.Target) (TargetStatus, error) {
	ts := TargetStatus{
		Target:      t.ID,
		DisplayName: t.DisplayName,
		Dir:         r.ctx.Paths.EditorDir(t, scope),
		Supported:   t.SupportsScope(scope),
	}
	if !ts.Supported {
		return ts, nil
	}

	if scope == types.ScopeGlobal {
		ts.Installed = r.installed[t.ID]
	} else if _, err := r.ctx.FS.Stat(ts.Dir); err == nil {
		ts.Installed = true
	}

	if !t.Native() {
		ts.RulesFile = r.ctx.Paths.RulesFilePath(t)
		ts.Rules = r.rulesState(ts.RulesFile)
		return ts, nil
	}

	for _, category := range types.AllCategories {
		if !category.AppliesTo(scope) {
			continue
		}
		items, err := r.reconciler.Installed(scope, category, r.known)
		if err != nil {
			return ts, err
		}
		c := Counts{Category: category}
		for _, item := range items {
			if item.Enabled {
				c.Enabled++
			} else {
				c.Disabled++
			}
			if item.Broken {
				c.Broken++
			}
			if !item.Known {
				c.User++
			}
		}
		ts.Counts = append(ts.Counts, c)
	}
	return ts, nil
}

// rulesState compares the rules file with a fresh rendering
func (r *reporter) rulesState(path string) RulesState {
	current, err := r.ctx.FS.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return RulesMissing
		}
		return RulesStale
	}
	want, err := r.ctx.Syncer(true).RenderMerged(r.ctx.RulesSections())
	if err != nil || !bytes.Equal(current, want) {
		return RulesStale
	}
	return RulesCurrent
}

func (r *reporter) dangling(scope types.Scope) []state.DanglingLink {
	dirs := map[types.Category]string{}
	for _, category := range types.AllCategories {
		if category.AppliesTo(scope) {
			dirs[category] = r.ctx.Paths.CategoryDir(scope, category)
		}
	}
	return state.NewLinkDetector(r.ctx.FS).DetectDanglingLinks(dirs)
}
