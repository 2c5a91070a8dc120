package operations

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// step is a single filesystem mutation. The Syncer decides what to do by
// inspecting the destination; steps only carry out that decision.
type step struct {
	kind string
	path string
	run  func(fsys types.FS) error
}

func mkdirStep(path string) step {
	return step{kind: "mkdir", path: path, run: func(fsys types.FS) error {
		return fsys.MkdirAll(path, dirPerm)
	}}
}

func symlinkStep(source, destination string) step {
	return step{kind: "link", path: destination, run: func(fsys types.FS) error {
		return fsys.Symlink(source, destination)
	}}
}

func writeStep(path string, data []byte, perm fs.FileMode) step {
	return step{kind: "write", path: path, run: func(fsys types.FS) error {
		return fsys.WriteFile(path, data, perm)
	}}
}

func removeStep(path string) step {
	return step{kind: "remove", path: path, run: func(fsys types.FS) error {
		return fsys.Remove(path)
	}}
}

func removeAllStep(path string) step {
	return step{kind: "remove_all", path: path, run: func(fsys types.FS) error {
		return fsys.RemoveAll(path)
	}}
}

func renameStep(from, to string) step {
	return step{kind: "rename", path: to, run: func(fsys types.FS) error {
		return fsys.Rename(from, to)
	}}
}

// newExecutorFS returns the filesystem handed to synthfs pipelines. Steps
// write through the Syncer's types.FS, so this only anchors absolute paths.
func newExecutorFS() filesystem.FullFileSystem {
	osfs := filesystem.NewOSFileSystem("/")
	return synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()
}

// apply runs steps in order, one synthfs operation per step, and stops at
// the first failure. In dry-run mode nothing runs.
func (s *Syncer) apply(steps ...step) error {
	if s.dryRun {
		return nil
	}
	for i, st := range steps {
		if err := s.runStep(i, st); err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) runStep(index int, st step) error {
	sfs := synthfs.New()
	id := fmt.Sprintf("%s_%s_%d_%d", st.kind, filepath.Base(st.path), index, time.Now().UnixNano())
	op := sfs.CustomOperationWithID(id, func(ctx context.Context, _ filesystem.FileSystem) error {
		return st.run(s.fs)
	})

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	result, err := synthfs.RunWithOptions(context.Background(), s.executorFS, options, op)
	if err == nil {
		return nil
	}

	// Prefer the step's own error so callers can still inspect it.
	if result != nil {
		for _, opResult := range result.GetOperations() {
			r, ok := opResult.(synthfs.OperationResult)
			if !ok || r.OperationID != op.ID() || r.Status == synthfs.StatusSuccess {
				continue
			}
			if r.Error != nil {
				err = r.Error
			}
		}
	}

	s.logger.Debug().
		Err(err).
		Str("operationID", id).
		Str("path", st.path).
		Msg("synthfs operation failed")
	return err
}
