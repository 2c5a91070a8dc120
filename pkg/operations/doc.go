// Package operations provides the idempotent filesystem sync primitives every
// agentkit engine is built from.
//
// Each primitive returns a types.Result instead of an error so that callers can
// process a whole batch and report a tally:
//
//   - EnsureDir: recursive mkdir
//   - CreateSymlink: link, relink if pointing elsewhere, refuse to clobber real files
//   - CopyFile / CopyDir: content-compared copies
//   - RemoveItem: unlink, delete, or recursively remove
//   - ListItems: direct children with symlink metadata
//   - MergeFiles: regenerate one document from many sources, written atomically
//
// A failure on one path is an error Result for that path only; it never aborts
// siblings.
package operations
