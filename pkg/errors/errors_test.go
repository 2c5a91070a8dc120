// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not found",
			code:    errors.ErrNotFound,
			message: "item not found",
			wantStr: "[NOT_FOUND] item not found",
		},
		{
			name:    "source missing",
			code:    errors.ErrSourceMissing,
			message: "no assets",
			wantStr: "[SOURCE_MISSING] no assets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConflict, "%s exists and is not a symlink", "/tmp/x")
	assert.Equal(t, "[CONFLICT] /tmp/x exists and is not a symlink", err.Error())
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrFileWrite, "write failed")
	require.NotNil(t, err)
	assert.Equal(t, "[FILE_WRITE] write failed: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileWrite, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrNotFound, "a"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNotFound, "b")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConflict, "b")))
}

func TestIsErrorCodeAndGetErrorCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("boom"), errors.ErrConfigWrite, "saving %s", "agentkit.json")

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigWrite))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, errors.ErrConfigWrite, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConflict, "conflict").WithDetail("path", "/x")
	assert.Equal(t, "/x", err.Details["path"])
}

func TestIsFatal(t *testing.T) {
	assert.True(t, errors.IsFatal(errors.New(errors.ErrSourceMissing, "x")))
	assert.True(t, errors.IsFatal(errors.New(errors.ErrHomeDir, "x")))
	assert.True(t, errors.IsFatal(errors.New(errors.ErrConfigWrite, "x")))
	assert.False(t, errors.IsFatal(errors.New(errors.ErrConflict, "x")))
	assert.False(t, errors.IsFatal(stderrors.New("x")))
}
