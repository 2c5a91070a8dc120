package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that path is a symlink pointing at target
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected %s to exist", path)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "expected %s to be a symlink", path)

	actual, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, target, actual, "symlink %s points elsewhere", path)
}

// AssertRegular checks that path exists and is not a symlink
func AssertRegular(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected %s to exist", path)
	assert.True(t, info.Mode()&os.ModeSymlink == 0, "expected %s not to be a symlink", path)
}

// AssertExists checks that something (possibly a dangling link) is at path
func AssertExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.NoError(t, err, "expected %s to exist", path)
}

// AssertNotExists checks that nothing is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s not to exist", path)
}
