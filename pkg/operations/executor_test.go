package operations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRunsStepsInOrder(t *testing.T) {
	root := t.TempDir()
	s := New(filesystem.NewOS())

	var order []string
	record := func(name string) step {
		return step{kind: name, path: filepath.Join(root, name), run: func(types.FS) error {
			order = append(order, name)
			return nil
		}}
	}

	require.NoError(t, s.apply(record("first"), record("second"), record("third")))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	s := New(filesystem.NewOS())
	missing := filepath.Join(root, "missing")
	after := filepath.Join(root, "after")

	err := s.apply(removeStep(missing), writeStep(after, []byte("x"), filePerm))
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.NoFileExists(t, after)
}

func TestApplyDryRunIsNoOp(t *testing.T) {
	root := t.TempDir()
	s := New(filesystem.NewOS()).WithDryRun(true)
	dir := filepath.Join(root, "never")

	require.NoError(t, s.apply(mkdirStep(dir), writeStep(filepath.Join(dir, "f"), []byte("x"), filePerm)))
	assert.NoDirExists(t, dir)
}

func TestRename(t *testing.T) {
	root := t.TempDir()
	s := New(filesystem.NewOS())
	from := filepath.Join(root, "agent.md")
	to := filepath.Join(root, "agent.md.disabled")
	require.NoError(t, os.WriteFile(from, []byte("agent"), 0644))

	require.NoError(t, s.Rename(from, to))
	assert.NoFileExists(t, from)
	assert.FileExists(t, to)

	assert.Error(t, s.Rename(from, to))
}
