package types

import (
	"fmt"
	"strings"
)

// Category classifies an asset and names its directory under a config root
type Category string

const (
	CategoryAgents       Category = "agents"
	CategoryCommands     Category = "commands"
	CategorySkills       Category = "skills"
	CategoryArchitecture Category = "architecture"
)

// DisabledSuffix marks an installed item as turned off without removing it
const DisabledSuffix = ".disabled"

// MarkdownExt is the extension of file-based assets
const MarkdownExt = ".md"

// AllCategories in install order
var AllCategories = []Category{CategoryAgents, CategoryCommands, CategorySkills, CategoryArchitecture}

// ToggleCategories can be enabled and disabled, probed in this order when
// resolving a bare name.
var ToggleCategories = []Category{CategoryAgents, CategoryCommands, CategorySkills}

// ParseCategory accepts singular or plural category names
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "agent", "agents":
		return CategoryAgents, nil
	case "command", "commands":
		return CategoryCommands, nil
	case "skill", "skills":
		return CategorySkills, nil
	case "architecture", "arch":
		return CategoryArchitecture, nil
	default:
		return "", fmt.Errorf("unknown type %q (expected agent, command or skill)", s)
	}
}

// IsDir reports whether assets of this category are directories
func (c Category) IsDir() bool {
	return c == CategorySkills
}

// GlobalOnly reports whether the category is never installed per project
func (c Category) GlobalOnly() bool {
	return c == CategoryCommands
}

// Toggleable reports whether items in this category can be enabled/disabled
func (c Category) Toggleable() bool {
	for _, t := range ToggleCategories {
		if t == c {
			return true
		}
	}
	return false
}

// AppliesTo reports whether the category is installed for the scope
func (c Category) AppliesTo(scope Scope) bool {
	return !(c.GlobalOnly() && scope == ScopeProject)
}

// Prefix is the display prefix used for names in this category
func (c Category) Prefix() string {
	switch c {
	case CategoryAgents:
		return "@"
	case CategoryCommands:
		return "/"
	default:
		return ""
	}
}

// Title returns the capitalised display form
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FileName returns the on-disk entry name for a logical name in this category
func (c Category) FileName(name string, disabled bool) string {
	fileName := name
	if !c.IsDir() {
		fileName += MarkdownExt
	}
	if disabled {
		fileName += DisabledSuffix
	}
	return fileName
}

// IsDisabledName reports whether an on-disk name carries the disabled marker
func IsDisabledName(name string) bool {
	return strings.HasSuffix(name, DisabledSuffix)
}

// CleanName strips the disabled marker and the markdown extension
func CleanName(name string) string {
	name = strings.TrimSuffix(name, DisabledSuffix)
	return strings.TrimSuffix(name, MarkdownExt)
}

// SplitPrefixedName resolves "@name" to agents and "/name" to commands.
// Bare names return an empty category.
func SplitPrefixedName(s string) (Category, string) {
	switch {
	case strings.HasPrefix(s, "@"):
		return CategoryAgents, s[1:]
	case strings.HasPrefix(s, "/"):
		return CategoryCommands, s[1:]
	default:
		return "", s
	}
}
