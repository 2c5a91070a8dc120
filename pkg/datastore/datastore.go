package datastore

import "github.com/arthur-debert/agentkit/pkg/types"

// ConfigStore persists disabled items and installed targets. Mutations are
// idempotent and saved immediately; repeating one is a silent no-op.
type ConfigStore interface {
	// Load reads the document, returning the empty document when it is
	// missing or malformed.
	Load() *Document

	// Save writes the document atomically.
	Save(doc *Document) error

	// IsDisabled reports whether the Config Store lists the item as disabled.
	IsDisabled(category types.Category, name string) bool

	// DisableItem adds the item to the disabled set.
	DisableItem(category types.Category, name string) error

	// EnableItem removes the item from the disabled set.
	EnableItem(category types.Category, name string) error

	// GetDisabledItems returns the sorted disabled names of a category.
	GetDisabledItems(category types.Category) []string

	// AddTarget records a target id as installed.
	AddTarget(id string) error

	// RemoveTarget forgets a target id.
	RemoveTarget(id string) error

	// GetTargets returns the sorted installed target ids.
	GetTargets() []string

	// Path returns the document location.
	Path() string
}
