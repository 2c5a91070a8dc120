// Package paths resolves every location agentkit reads or writes.
//
// Resolution is deterministic: once a Paths value is built from the home and
// working directories, every method is a pure string computation with no I/O.
// Application directories follow the XDG Base Directory specification, with
// AGENTKIT_DATA_DIR and AGENTKIT_CONFIG_DIR as overrides.
package paths
