// Package datastore implements the Config Store: the single JSON document
// recording which items are disabled and which targets are installed.
//
// The document lives at <home>/.claude/agentkit.json regardless of scope or
// target. Every mutation is a read-modify-write that is persisted before the
// call returns. A missing or unreadable document is treated as empty, since
// the .disabled filename markers can always rebuild what it recorded.
//
// Keys the store does not understand are carried through untouched, so a
// document written by a newer agentkit survives a round trip through an older one.
package datastore
