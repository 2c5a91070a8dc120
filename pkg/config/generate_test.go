package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/config"
	"github.com/arthur-debert/agentkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaults(t *testing.T) {
	content, err := config.GenerateDefaults()
	require.NoError(t, err)

	assert.Contains(t, content, "[install]")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "value line not commented: %q", line)
	}

	// A fully commented file loads as the defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	s, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestWriteUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentkit", "config.toml")

	written, err := config.WriteUserConfig(path)
	require.NoError(t, err)
	assert.True(t, written)

	testutil.WriteFile(t, path, "# mine\n")
	written, err = config.WriteUserConfig(path)
	require.NoError(t, err)
	assert.False(t, written, "existing file is never overwritten")
	assert.Equal(t, "# mine\n", testutil.ReadFile(t, path))
}
