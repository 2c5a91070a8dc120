package types

import (
	"fmt"
	"strings"
)

// Scope selects the root configuration tree an operation works on
type Scope string

const (
	// ScopeGlobal is the user's home-level configuration tree
	ScopeGlobal Scope = "global"
	// ScopeProject is the current working directory's configuration tree
	ScopeProject Scope = "project"
)

// AllScopes lists scopes in the order `--all` processes them
var AllScopes = []Scope{ScopeGlobal, ScopeProject}

// ParseScope parses a scope name
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "g":
		return ScopeGlobal, nil
	case "project", "p", "local":
		return ScopeProject, nil
	default:
		return "", fmt.Errorf("unknown scope %q (expected global or project)", s)
	}
}

// Symlinks reports whether installs in this scope link back to the source.
// Project trees are committable, so they always get copies.
func (s Scope) Symlinks() bool {
	return s == ScopeGlobal
}
