// Package filesystem provides the OS-backed implementation of types.FS.
//
// Engines never call package os directly for asset I/O; they go through
// types.FS so tests can inject failures for individual paths.
package filesystem
