// Package testutil provides utilities for testing agentkit components.
//
// Key components:
//   - Environment: isolated home, project and source directories under t.TempDir()
//   - Source fixtures: a small asset tree shaped like the bundled one
//   - FailingFS: a types.FS wrapper that injects errors on chosen paths
//
// Usage guidelines:
//   - Tests run against the real filesystem; symlinks are the subject under test
//   - Every Environment points HOME and the XDG variables at its own temp dirs
//   - All test data should be defined inline, not in external files
package testutil
