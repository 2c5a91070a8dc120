// Package state reconciles the two records of whether an item is disabled:
// the .disabled suffix on its installed filename and the Config Store's
// disabled set. An item is disabled when either says so. Transitions always
// write the Config Store first, then rename on disk, so an interrupted
// transition leaves the durable record correct.
//
// It also detects dangling symlinks left behind when a source asset disappears.
package state
