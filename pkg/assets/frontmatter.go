package assets

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the subset of asset metadata agentkit reads
type FrontMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseFrontMatter extracts YAML front matter delimited by "---" lines.
// Content without front matter yields a zero FrontMatter and the full text as body.
func ParseFrontMatter(content []byte) (FrontMatter, string, error) {
	var fm FrontMatter
	text := string(content)

	if !strings.HasPrefix(text, "---") {
		return fm, text, nil
	}

	rest := strings.TrimPrefix(text[3:], "\n")
	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return fm, text, nil
	}

	body := strings.TrimPrefix(rest[idx+4:], "\n")
	if err := yaml.Unmarshal([]byte(rest[:idx]), &fm); err != nil {
		return FrontMatter{}, text, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return fm, body, nil
}
