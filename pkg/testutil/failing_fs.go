package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/agentkit/pkg/types"
)

// FailingFS wraps a types.FS and returns a fixed error for mutating calls on
// chosen paths. Reads pass through unless FailReadOn names the path.
type FailingFS struct {
	types.FS

	mu        sync.Mutex
	fails     map[string]error
	readFails map[string]error
}

// NewFailingFS wraps inner
func NewFailingFS(inner types.FS) *FailingFS {
	return &FailingFS{FS: inner, fails: map[string]error{}, readFails: map[string]error{}}
}

// FailOn makes every mutating call on path return err
func (f *FailingFS) FailOn(path string, err error) *FailingFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fails[path] = err
	return f
}

// FailReadOn makes ReadFile on path return err
func (f *FailingFS) FailReadOn(path string, err error) *FailingFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readFails[path] = err
	return f
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	err := f.readFails[name]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) check(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fails[path]
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) Symlink(oldname, newname string) error {
	if err := f.check(newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FailingFS) Rename(oldpath, newpath string) error {
	if err := f.check(oldpath); err != nil {
		return err
	}
	if err := f.check(newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FailingFS) Remove(name string) error {
	if err := f.check(name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FailingFS) RemoveAll(path string) error {
	if err := f.check(path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
