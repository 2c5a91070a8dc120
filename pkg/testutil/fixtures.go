package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// FileTree maps slash-separated relative paths to file contents
type FileTree map[string]string

// Fixture asset names, grouped by category
var (
	FixtureAgents       = []string{"code-reviewer", "doc-writer", "test-runner"}
	FixtureCommands     = []string{"bootstrap", "brainstorm"}
	FixtureSkills       = []string{"pdf-tools"}
	FixtureArchitecture = []string{"overview"}
)

// DefaultSourceTree returns a source tree with every category populated.
// Agents are split across the developers and utilities subfolders.
func DefaultSourceTree() FileTree {
	return FileTree{
		"agents/developers/code-reviewer.md": "---\nname: code-reviewer\ndescription: Reviews diffs for correctness\n---\nReview the change.\n",
		"agents/developers/test-runner.md":   "---\nname: test-runner\ndescription: Runs and triages tests\n---\nRun the tests.\n",
		"agents/utilities/doc-writer.md":     "# Doc writer\n\nWrite the docs.\n",
		"commands/bootstrap.md":              "Bootstrap a project.\n",
		"commands/brainstorm.md":             "Brainstorm ideas.\n",
		"skills/pdf-tools/SKILL.md":          "---\nname: pdf-tools\ndescription: Work with PDF files\n---\nUse the scripts.\n",
		"skills/pdf-tools/scripts/split.sh":  "#!/bin/sh\necho split\n",
		"architecture/overview.md":           "# Overview\n",
	}
}

// WriteTree writes every file in tree under root, creating parents
func WriteTree(t *testing.T, root string, tree FileTree) {
	t.Helper()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), tree[name])
	}
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of path, failing the test if unreadable
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
