package state

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/datastore"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/rs/zerolog"
)

const (
	msgDisabled     = "disabled"
	msgEnabled      = "enabled"
	msgNotInstalled = "not installed"
	msgReplaced     = "replaced stale disabled copy"
)

// Location is where an item lives on disk in its two possible forms
type Location struct {
	EnabledPath  string
	DisabledPath string
}

// Reconciler reads and transitions the enabled state of installed items in
// the native target's directories.
type Reconciler struct {
	fs     types.FS
	paths  *paths.Paths
	store  datastore.ConfigStore
	syncer *operations.Syncer
	logger zerolog.Logger
}

// NewReconciler creates a Reconciler
func NewReconciler(fs types.FS, p *paths.Paths, store datastore.ConfigStore) *Reconciler {
	return &Reconciler{
		fs:     fs,
		paths:  p,
		store:  store,
		syncer: operations.New(fs),
		logger: logging.GetLogger("state"),
	}
}

// Store returns the Config Store the reconciler writes to
func (r *Reconciler) Store() datastore.ConfigStore {
	return r.store
}

// Locate returns the enabled and disabled on-disk paths of an item
func (r *Reconciler) Locate(category types.Category, name string, scope types.Scope) Location {
	dir := r.paths.CategoryDir(scope, category)
	return Location{
		EnabledPath:  filepath.Join(dir, category.FileName(name, false)),
		DisabledPath: filepath.Join(dir, category.FileName(name, true)),
	}
}

// CurrentlyDisabled reports whether the item is disabled by either its
// filename marker or the Config Store.
func (r *Reconciler) CurrentlyDisabled(category types.Category, name string, scope types.Scope) bool {
	loc := r.Locate(category, name, scope)
	return r.exists(loc.DisabledPath) || r.store.IsDisabled(category, name)
}

// MarkerDisabled reports whether the filename marker alone says disabled
func (r *Reconciler) MarkerDisabled(category types.Category, name string, scope types.Scope) bool {
	return r.exists(r.Locate(category, name, scope).DisabledPath)
}

// TransitionToDisabled records the item as disabled and renames an installed
// enabled-form entry to carry the marker. Repeating it is a no-op.
//
// The returned error is non-nil only when the Config Store cannot be written;
// on-disk problems are reported in the result.
func (r *Reconciler) TransitionToDisabled(category types.Category, name string, scope types.Scope) (types.Result, error) {
	if err := r.checkScope(category, scope); err != nil {
		return r.itemResult(category, name, types.ErrorResult(name, err)), nil
	}
	if err := r.store.DisableItem(category, name); err != nil {
		return r.itemResult(category, name, types.ErrorResult(r.store.Path(), err)), err
	}

	loc := r.Locate(category, name, scope)
	return r.itemResult(category, name, r.move(loc.EnabledPath, loc.DisabledPath, msgDisabled)), nil
}

// TransitionToEnabled removes the item from the disabled set and strips the
// marker from an installed disabled-form entry. Repeating it is a no-op.
func (r *Reconciler) TransitionToEnabled(category types.Category, name string, scope types.Scope) (types.Result, error) {
	if err := r.checkScope(category, scope); err != nil {
		return r.itemResult(category, name, types.ErrorResult(name, err)), nil
	}
	if err := r.store.EnableItem(category, name); err != nil {
		return r.itemResult(category, name, types.ErrorResult(r.store.Path(), err)), err
	}

	loc := r.Locate(category, name, scope)
	return r.itemResult(category, name, r.move(loc.DisabledPath, loc.EnabledPath, msgEnabled)), nil
}

// move renames from to to. When both exist, from is the newer install and
// replaces to. When only to exists the item is already in the wanted state.
func (r *Reconciler) move(from, to, msg string) types.Result {
	fromExists, toExists := r.exists(from), r.exists(to)

	switch {
	case !fromExists && toExists:
		return types.Result{Status: types.StatusExists, Path: to}
	case !fromExists:
		return types.Result{Status: types.StatusSkipped, Path: to, Message: msgNotInstalled}
	}

	if toExists {
		if removed := r.syncer.RemoveItem(to); removed.Status == types.StatusError {
			return removed
		}
		msg = msgReplaced
	}

	if err := r.syncer.Rename(from, to); err != nil {
		err = errors.Wrapf(err, errors.ErrFileWrite, "cannot rename %s", from)
		r.logger.Warn().Err(err).Str("from", from).Str("to", to).Msg("transition rename failed")
		return types.ErrorResult(from, err)
	}

	r.logger.Debug().Str("from", from).Str("to", to).Msg("renamed")
	return types.Result{Status: types.StatusUpdated, Path: to, Message: msg}
}

func (r *Reconciler) checkScope(category types.Category, scope types.Scope) error {
	if !category.Toggleable() {
		return errors.Newf(errors.ErrUnsupported, "%s cannot be enabled or disabled", category)
	}
	if !category.AppliesTo(scope) {
		return errors.Newf(errors.ErrUnsupported, "%s are global-only and cannot be toggled in %s scope", category, scope)
	}
	return nil
}

func (r *Reconciler) itemResult(category types.Category, name string, res types.Result) types.Result {
	res.Category = category
	res.Name = name
	return res
}

func (r *Reconciler) exists(path string) bool {
	_, err := r.fs.Lstat(path)
	return err == nil || !os.IsNotExist(err)
}
