package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// GenerateDefaults renders the default settings as TOML with every value
// commented out, ready to be edited into a user config file.
func GenerateDefaults() (string, error) {
	data, err := toml.Marshal(Defaults())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render defaults")
	}
	header := "# agentkit configuration. Uncomment a value to override the default.\n\n"
	return header + commentOutConfigValues(string(data)), nil
}

// WriteUserConfig writes the generated defaults to path unless a file is
// already there. It reports whether a file was written.
func WriteUserConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	content, err := GenerateDefaults()
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return true, nil
}

// commentOutConfigValues comments every assignment line, keeping comments,
// blank lines and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
