// Package uninstall implements the Uninstall Engine. It removes only what
// agentkit put in place: entries whose cleaned name is a known asset, and
// symlinks. Anything else in the same directories belongs to the user.
package uninstall

import (
	"strings"

	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// UninstallOptions defines the options for the Uninstall command
type UninstallOptions struct {
	Scopes  []types.Scope
	Targets []targets.Target
	DryRun  bool
}

// TargetResult is the outcome of uninstalling one target in one scope
type TargetResult struct {
	Scope   types.Scope    `json:"scope"`
	Target  string         `json:"target"`
	Results []types.Result `json:"results"`
	Tally   types.Tally    `json:"tally"`
}

// UninstallResult aggregates every target result
type UninstallResult struct {
	Targets []TargetResult `json:"targets"`
	Tally   types.Tally    `json:"tally"`
	DryRun  bool           `json:"dryRun"`
}

// InstalledTargets returns the targets that have something to uninstall in
// any of scopes: the recorded targets for the global scope, and for the
// project scope the native targets holding at least one removable entry.
func InstalledTargets(ctx *commands.Context, scopes []types.Scope) []targets.Target {
	found := map[string]bool{}
	for _, scope := range scopes {
		switch scope {
		case types.ScopeGlobal:
			for _, id := range ctx.Store.GetTargets() {
				found[id] = true
			}
		case types.ScopeProject:
			for _, t := range targets.All() {
				if t.SupportsScope(scope) && t.Native() && hasRemovable(ctx, t, scope) {
					found[t.ID] = true
				}
			}
		}
	}

	var out []targets.Target
	for _, t := range targets.All() {
		if found[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func hasRemovable(ctx *commands.Context, t targets.Target, scope types.Scope) bool {
	syncer := ctx.Syncer(true)
	known := ctx.Catalog.KnownNames()
	for _, category := range types.AllCategories {
		if !category.AppliesTo(scope) {
			continue
		}
		entries, err := syncer.ListItems(ctx.Paths.EditorCategoryDir(t, scope, category))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if removable(entry, known) {
				return true
			}
		}
	}
	return false
}

// removable reports whether entry was put in place by agentkit.
func removable(entry types.Entry, known map[string]bool) bool {
	if strings.HasPrefix(entry.Name, ".") {
		return false
	}
	return known[types.CleanName(entry.Name)] || entry.IsSymlink
}

// Uninstall runs the Uninstall Engine. A failed removal is reported and does
// not stop the remaining ones; only Config Store write failures are returned.
func Uninstall(ctx *commands.Context, opts UninstallOptions) (*UninstallResult, error) {
	logger := logging.GetLogger("commands.uninstall")
	logger.Debug().
		Interface("scopes", opts.Scopes).
		Int("targets", len(opts.Targets)).
		Bool("dryRun", opts.DryRun).
		Msg("Starting uninstall command")

	tgts := opts.Targets
	if len(tgts) == 0 {
		tgts = []targets.Target{targets.Default()}
	}

	syncer := ctx.Syncer(opts.DryRun)
	known := ctx.Catalog.KnownNames()
	result := &UninstallResult{Tally: types.Tally{}, DryRun: opts.DryRun}

	for _, scope := range opts.Scopes {
		for _, t := range tgts {
			tr := TargetResult{Scope: scope, Target: t.ID}
			add := func(r types.Result) { tr.Results = append(tr.Results, r) }

			switch {
			case !t.SupportsScope(scope):
				add(types.ErrorResult(ctx.Paths.EditorDir(t, scope),
					errors.Newf(errors.ErrUnsupported, "%s supports only the global scope", t.DisplayName)))

			case t.Native():
				for _, category := range types.AllCategories {
					if !category.AppliesTo(scope) {
						continue
					}
					dir := ctx.Paths.EditorCategoryDir(t, scope, category)
					entries, err := syncer.ListItems(dir)
					if err != nil {
						add(types.ErrorResult(dir, err))
						continue
					}
					for _, entry := range entries {
						name := types.CleanName(entry.Name)
						if !removable(entry, known) {
							logger.Debug().Str("path", entry.Path).Msg("leaving user entry untouched")
							continue
						}
						r := syncer.RemoveItem(entry.Path)
						r.Category, r.Name = category, name
						add(r)
					}
				}

			default:
				add(syncer.RemoveItem(ctx.Paths.RulesFilePath(t)))
				add(syncer.RemoveItem(ctx.Paths.EditorCategoryDir(t, scope, types.CategoryArchitecture)))
			}

			tr.Tally = types.NewTally(tr.Results)
			result.Targets = append(result.Targets, tr)
			result.Tally.Add(tr.Tally)

			// Only global installs are recorded in the Config Store.
			if !opts.DryRun && scope == types.ScopeGlobal && t.SupportsScope(scope) {
				if err := ctx.Store.RemoveTarget(t.ID); err != nil {
					return result, err
				}
			}
		}
	}

	logger.Info().
		Str("tally", result.Tally.String()).
		Bool("dryRun", opts.DryRun).
		Msg("Uninstall command completed")

	return result, nil
}
