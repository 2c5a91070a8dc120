// Package assets catalogues the source assets agentkit installs.
//
// A source root holds four category folders:
//
//	agents/developers/*.md
//	agents/utilities/*.md
//	commands/*.md
//	skills/<name>/SKILL.md
//	architecture/*.md
//
// Agents from both subfolders share one namespace. The catalogue is read-only;
// nothing in this package writes to a source root except Materialize, which
// refreshes the copy of the embedded bundle.
package assets
