// Package install implements the Install Engine: it syncs the source assets
// into each requested target for each requested scope.
package install

import (
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/assets"
	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/state"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/rs/zerolog"
)

// InstallOptions defines the options for the Install command
type InstallOptions struct {
	// Scopes to install into, processed in order
	Scopes []types.Scope
	// Targets to install; empty means the default native target
	Targets []targets.Target
	// Symlink links global native installs back to the source. Project
	// installs always copy regardless.
	Symlink bool
	// DryRun reports what would happen without touching the filesystem or
	// the Config Store
	DryRun bool
}

// TargetResult is the outcome of installing one target in one scope
type TargetResult struct {
	Scope   types.Scope    `json:"scope"`
	Target  string         `json:"target"`
	Results []types.Result `json:"results"`
	Tally   types.Tally    `json:"tally"`
}

// InstallResult aggregates every target result
type InstallResult struct {
	Targets []TargetResult `json:"targets"`
	Tally   types.Tally    `json:"tally"`
	DryRun  bool           `json:"dryRun"`
}

// Install runs the Install Engine. Per-item failures are reported in the
// result; the returned error is non-nil only for Config Store write failures.
func Install(ctx *commands.Context, opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("commands.install")
	logger.Debug().
		Interface("scopes", opts.Scopes).
		Int("targets", len(opts.Targets)).
		Bool("symlink", opts.Symlink).
		Bool("dryRun", opts.DryRun).
		Msg("Starting install command")

	tgts := opts.Targets
	if len(tgts) == 0 {
		tgts = []targets.Target{targets.Default()}
	}

	e := &engine{
		ctx:        ctx,
		opts:       opts,
		syncer:     ctx.Syncer(opts.DryRun),
		reconciler: ctx.Reconciler(),
		logger:     logger,
	}

	result := &InstallResult{Tally: types.Tally{}, DryRun: opts.DryRun}
	for _, scope := range opts.Scopes {
		for _, t := range tgts {
			tr, err := e.installTarget(scope, t)
			result.Targets = append(result.Targets, tr)
			result.Tally.Add(tr.Tally)
			if err != nil {
				return result, err
			}
		}
	}

	logger.Info().
		Str("tally", result.Tally.String()).
		Bool("dryRun", opts.DryRun).
		Msg("Install command completed")

	return result, nil
}

type engine struct {
	ctx        *commands.Context
	opts       InstallOptions
	syncer     *operations.Syncer
	reconciler *state.Reconciler
	logger     zerolog.Logger
}

func (e *engine) installTarget(scope types.Scope, t targets.Target) (TargetResult, error) {
	tr := TargetResult{Scope: scope, Target: t.ID}
	add := func(r types.Result) { tr.Results = append(tr.Results, r) }

	defer logging.LogOperationStart(e.logger, "install "+t.ID+" ("+string(scope)+")")()

	if !t.SupportsScope(scope) {
		err := errors.Newf(errors.ErrUnsupported, "%s reads a single rules file and supports only the global scope", t.DisplayName)
		add(types.ErrorResult(e.ctx.Paths.EditorDir(t, scope), err))
		tr.Tally = types.NewTally(tr.Results)
		return tr, nil
	}

	add(e.syncer.EnsureDir(e.ctx.Paths.EditorDir(t, scope)))

	var err error
	if t.Native() {
		err = e.installNative(scope, t, add)
	} else {
		e.installMerged(t, add)
	}

	tr.Tally = types.NewTally(tr.Results)
	if err != nil {
		return tr, err
	}

	// Only global installs are recorded; project trees are found on disk.
	if !e.opts.DryRun && scope == types.ScopeGlobal {
		if err := e.ctx.Store.AddTarget(t.ID); err != nil {
			return tr, err
		}
	}
	return tr, nil
}

func (e *engine) installNative(scope types.Scope, t targets.Target, add func(types.Result)) error {
	link := e.opts.Symlink && scope.Symlinks()

	for _, category := range types.AllCategories {
		if !category.AppliesTo(scope) {
			continue
		}
		dir := e.ctx.Paths.EditorCategoryDir(t, scope, category)
		add(e.syncer.EnsureDir(dir))

		for _, asset := range e.ctx.Catalog.Assets(category) {
			r, err := e.installItem(scope, dir, asset, link)
			r.Category, r.Name = category, asset.Name
			add(r)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// installItem syncs one asset, keeping a prior disable decision: a disabled
// item is installed at its marker name and the Config Store is made to agree.
func (e *engine) installItem(scope types.Scope, dir string, asset assets.Asset, link bool) (types.Result, error) {
	disabled := asset.Category.Toggleable() &&
		e.reconciler.CurrentlyDisabled(asset.Category, asset.Name, scope)

	if disabled && !e.opts.DryRun {
		// Records the disable and moves any stale enabled-form copy aside.
		if r, err := e.reconciler.TransitionToDisabled(asset.Category, asset.Name, scope); err != nil {
			return r, err
		} else if r.Status == types.StatusError {
			return r, nil
		}
	}

	dest := filepath.Join(dir, asset.FileName(disabled))
	switch {
	case link:
		return e.syncer.CreateSymlink(asset.Path, dest), nil
	case asset.Category.IsDir():
		return e.syncer.CopyDir(asset.Path, dest), nil
	default:
		return e.syncer.CopyFile(asset.Path, dest), nil
	}
}

// installMerged copies the architecture docs and regenerates the rules file.
// Merge-required targets never link back to the source.
func (e *engine) installMerged(t targets.Target, add func(types.Result)) {
	dir := e.ctx.Paths.EditorCategoryDir(t, types.ScopeGlobal, types.CategoryArchitecture)
	add(e.syncer.EnsureDir(dir))

	for _, asset := range e.ctx.Catalog.Assets(types.CategoryArchitecture) {
		r := e.syncer.CopyFile(asset.Path, filepath.Join(dir, asset.FileName(false)))
		r.Category, r.Name = types.CategoryArchitecture, asset.Name
		add(r)
	}

	add(e.ctx.RegenerateRules(e.syncer, t))
}
