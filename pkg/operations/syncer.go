package operations

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644

	msgDryRun = "dry run"
)

// Syncer runs sync primitives against a filesystem
type Syncer struct {
	fs         types.FS
	executorFS filesystem.FullFileSystem
	dryRun     bool
	logger     zerolog.Logger
}

// New creates a Syncer over fs
func New(fsys types.FS) *Syncer {
	return &Syncer{
		fs:         fsys,
		executorFS: newExecutorFS(),
		logger:     logging.GetLogger("operations"),
	}
}

// WithDryRun makes every mutating primitive report what it would do without
// touching the filesystem.
func (s *Syncer) WithDryRun(dryRun bool) *Syncer {
	s.dryRun = dryRun
	return s
}

// DryRun reports whether the syncer is in dry-run mode
func (s *Syncer) DryRun() bool {
	return s.dryRun
}

// FS returns the underlying filesystem
func (s *Syncer) FS() types.FS {
	return s.fs
}

func (s *Syncer) result(status types.SyncStatus, path, target string) types.Result {
	r := types.Result{Status: status, Path: path, Target: target}
	if s.dryRun && r.Changed() {
		r.Message = msgDryRun
	}
	s.logger.Debug().
		Str("status", string(status)).
		Str("path", path).
		Str("target", target).
		Bool("dryRun", s.dryRun).
		Msg("sync")
	return r
}

func (s *Syncer) fail(path string, err error) types.Result {
	s.logger.Warn().Err(err).Str("path", path).Msg("sync failed")
	return types.ErrorResult(path, err)
}

// EnsureDir creates path and its parents. An existing directory is not an error.
func (s *Syncer) EnsureDir(path string) types.Result {
	info, err := s.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return s.fail(path, errors.Newf(errors.ErrConflict, "%s exists and is not a directory", path))
		}
		return s.result(types.StatusExists, path, "")
	}
	if !os.IsNotExist(err) {
		return s.fail(path, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path))
	}
	if err := s.apply(mkdirStep(path)); err != nil {
		return s.fail(path, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", path))
	}
	return s.result(types.StatusCreated, path, "")
}

// CreateSymlink makes destination a symlink to source.
//
// An existing link to source is left alone (exists); a link elsewhere is
// replaced (updated). A real file or directory at destination is user content
// and is never overwritten (error).
func (s *Syncer) CreateSymlink(source, destination string) types.Result {
	info, err := s.fs.Lstat(destination)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		current, rerr := s.fs.Readlink(destination)
		if rerr == nil && current == source {
			return s.result(types.StatusExists, destination, source)
		}
		if err := s.apply(removeStep(destination), symlinkStep(source, destination)); err != nil {
			return s.fail(destination, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot replace link %s", destination))
		}
		return s.result(types.StatusUpdated, destination, source)

	case err == nil:
		return s.fail(destination, errors.Newf(errors.ErrConflict,
			"%s already exists and is not a symlink; move or remove it to let agentkit manage it", destination).
			WithDetail("path", destination))

	case !os.IsNotExist(err):
		return s.fail(destination, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destination))
	}

	if err := s.apply(mkdirStep(filepath.Dir(destination))); err != nil {
		return s.fail(destination, errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", destination))
	}
	if err := s.apply(symlinkStep(source, destination)); err != nil {
		return s.fail(destination, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", destination))
	}
	return s.result(types.StatusCreated, destination, source)
}

// CopyFile copies source to destination, comparing content for idempotency.
// A symlink at destination is replaced by a real copy.
func (s *Syncer) CopyFile(source, destination string) types.Result {
	data, err := s.fs.ReadFile(source)
	if err != nil {
		return s.fail(destination, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", source))
	}
	perm := filePerm
	if info, err := s.fs.Stat(source); err == nil {
		perm = info.Mode().Perm()
	}
	return s.SyncContent(destination, data, perm)
}

// SyncContent makes destination hold exactly data: absent is created,
// different content is updated, identical content exists.
func (s *Syncer) SyncContent(destination string, data []byte, perm fs.FileMode) types.Result {
	status := types.StatusCreated
	info, err := s.fs.Lstat(destination)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		status = types.StatusUpdated
		if err := s.apply(removeStep(destination)); err != nil {
			return s.fail(destination, errors.Wrapf(err, errors.ErrFileWrite, "cannot replace link %s", destination))
		}
	case err == nil && info.IsDir():
		return s.fail(destination, errors.Newf(errors.ErrConflict, "%s is a directory, expected a file", destination))
	case err == nil:
		existing, rerr := s.fs.ReadFile(destination)
		if rerr == nil && bytes.Equal(existing, data) {
			return s.result(types.StatusExists, destination, "")
		}
		status = types.StatusUpdated
	case !os.IsNotExist(err):
		return s.fail(destination, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destination))
	}

	if err := s.apply(mkdirStep(filepath.Dir(destination))); err != nil {
		return s.fail(destination, errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", destination))
	}
	if err := s.apply(writeStep(destination, data, perm)); err != nil {
		return s.fail(destination, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", destination))
	}
	return s.result(status, destination, "")
}

// CopyDir copies a directory tree file by file. The aggregate is created when
// destination did not exist, updated when any child changed, exists otherwise.
// Files present only in destination are left alone.
func (s *Syncer) CopyDir(source, destination string) types.Result {
	status := types.StatusExists
	info, err := s.fs.Lstat(destination)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		status = types.StatusUpdated
		if err := s.apply(removeStep(destination)); err != nil {
			return s.fail(destination, errors.Wrapf(err, errors.ErrFileWrite, "cannot replace link %s", destination))
		}
	case err == nil && !info.IsDir():
		return s.fail(destination, errors.Newf(errors.ErrConflict, "%s is a file, expected a directory", destination))
	case err != nil && os.IsNotExist(err):
		status = types.StatusCreated
	case err != nil:
		return s.fail(destination, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", destination))
	}

	if status != types.StatusExists {
		if err := s.apply(mkdirStep(destination)); err != nil {
			return s.fail(destination, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", destination))
		}
	}

	entries, err := s.fs.ReadDir(source)
	if err != nil {
		return s.fail(destination, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", source))
	}

	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(destination, entry.Name())

		var child types.Result
		if entry.IsDir() {
			child = s.CopyDir(src, dst)
		} else {
			child = s.CopyFile(src, dst)
		}

		if child.Status == types.StatusError {
			return types.Result{Status: types.StatusError, Path: destination, Message: child.Message}
		}
		if child.Changed() && status == types.StatusExists {
			status = types.StatusUpdated
		}
	}

	return s.result(status, destination, "")
}

// RemoveItem unlinks a symlink (never following it), deletes a file, or
// recursively removes a directory. A missing path is skipped, not an error.
func (s *Syncer) RemoveItem(path string) types.Result {
	info, err := s.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.result(types.StatusSkipped, path, "")
		}
		return s.fail(path, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path))
	}

	remove := removeStep(path)
	if info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
		remove = removeAllStep(path)
	}
	if err := s.apply(remove); err != nil {
		return s.fail(path, errors.Wrapf(err, errors.ErrFileWrite, "cannot remove %s", path))
	}
	return s.result(types.StatusRemoved, path, "")
}

// ListItems enumerates the direct children of dir. A missing directory yields
// an empty list.
func (s *Syncer) ListItems(dir string) ([]types.Entry, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.Entry{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir)
	}

	items := make([]types.Entry, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		item := types.Entry{
			Name:  entry.Name(),
			Path:  path,
			IsDir: entry.IsDir(),
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			item.IsSymlink = true
			if target, err := s.fs.Readlink(path); err == nil {
				item.Target = target
			}
			if info, err := s.fs.Stat(path); err == nil {
				item.IsDir = info.IsDir()
			}
		}

		items = append(items, item)
	}
	return items, nil
}

// Rename moves from to to. Transitions between the enabled and disabled
// form of an item go through here.
func (s *Syncer) Rename(from, to string) error {
	return s.apply(renameStep(from, to))
}

// Exists reports whether anything (including a dangling symlink) is at path
func (s *Syncer) Exists(path string) bool {
	_, err := s.fs.Lstat(path)
	return err == nil
}
