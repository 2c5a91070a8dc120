package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(EnvLogFile, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			Setup(Options{Verbosity: tt.verbosity, Console: io.Discard})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.FileExists(t, filepath.Join(tempDir, "agentkit", "agentkit.log"))
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv(EnvLogFile, "")

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "agentkit", "agentkit.log"), getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", home)
		assert.Equal(t, filepath.Join(home, ".local", "state", "agentkit", "agentkit.log"), getLogFilePath())
	})
}

func TestSetup_ConsoleAndOverride(t *testing.T) {
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })

	path := filepath.Join(t.TempDir(), "logs", "run.log")
	t.Setenv(EnvLogFile, path)

	var console bytes.Buffer
	Setup(Options{Verbosity: 1, Console: &console, NoColor: true})
	GetLogger("install").Info().Msg("linked agents")

	assert.Contains(t, console.String(), "linked agents")
	assert.NotContains(t, console.String(), "\x1b[", "no color escapes")

	// A second setup closes and reopens the same file
	Setup(Options{Verbosity: 1, Console: &console, NoColor: true})
	GetLogger("install").Info().Msg("second run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"install"`)
	assert.Contains(t, string(data), "second run")
}

func TestGetLogFilePath_Disabled(t *testing.T) {
	t.Setenv(EnvLogFile, "-")
	assert.Equal(t, "", getLogFilePath())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(0))
	assert.Equal(t, zerolog.DebugLevel, LevelFor(2))
	assert.Equal(t, zerolog.TraceLevel, LevelFor(7))
}

func TestSetupLogFile_UnwritableParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := setupLogFile(filepath.Join(blocker, "sub", "agentkit.log"))
	assert.Error(t, err)
}

func TestGetLogger_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("install")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"install"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "install")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}
