// Package prompt asks the user for the choices a command was not given on
// the command line: scope, targets, items and confirmations.
//
// Every Prompter returns an error with code CANCELLED when the user backs
// out, which the CLI reports without failing.
package prompt

import (
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Prompter collects interactive choices
type Prompter interface {
	// ChooseScope asks where a verb applies. With allowBoth the answer may
	// be both scopes, global first.
	ChooseScope(verb string, allowBoth bool) ([]types.Scope, error)
	// ChooseTargets asks which of the available targets to act on
	ChooseTargets(verb string, available []targets.Target, preselected []string) ([]targets.Target, error)
	// SelectItems asks which candidates to toggle
	SelectItems(verb string, candidates []types.InstalledItem) ([]types.InstalledItem, error)
	// Confirm asks a yes/no question
	Confirm(question string) (bool, error)
}

// Cancelled is returned when the user backs out of a prompt
func Cancelled(what string) error {
	return errors.Newf(errors.ErrCancelled, "%s cancelled", what)
}

const separatorRune = "──"

// Separator renders the group header placed between categories
func Separator(category types.Category) string {
	return separatorRune + " " + category.Title() + " " + separatorRune
}

// IsSeparator reports whether an option label is a group header
func IsSeparator(label string) bool {
	return strings.HasPrefix(label, separatorRune)
}

// ItemLabel is the option label for an item
func ItemLabel(item types.InstalledItem) string {
	label := item.DisplayName()
	if item.Category == types.CategorySkills {
		label += " (skill)"
	}
	if !item.Known {
		label += " (user)"
	}
	return label
}

// GroupedOptions lays candidates out with a separator before each category
// and returns the labels with a map back to the items.
func GroupedOptions(candidates []types.InstalledItem) ([]string, map[string]types.InstalledItem) {
	var labels []string
	byLabel := map[string]types.InstalledItem{}
	var current types.Category
	for _, item := range candidates {
		if item.Category != current {
			current = item.Category
			labels = append(labels, Separator(current))
		}
		label := ItemLabel(item)
		labels = append(labels, label)
		byLabel[label] = item
	}
	return labels, byLabel
}

// PickItems maps chosen labels back to items, dropping separators
func PickItems(chosen []string, byLabel map[string]types.InstalledItem) []types.InstalledItem {
	var items []types.InstalledItem
	for _, label := range chosen {
		if IsSeparator(label) {
			continue
		}
		if item, ok := byLabel[label]; ok {
			items = append(items, item)
		}
	}
	return items
}

// ScopeLabel describes a scope choice
func ScopeLabel(scope types.Scope) string {
	switch scope {
	case types.ScopeProject:
		return "Project (./.claude in the current directory)"
	default:
		return "Global (~/.claude, available everywhere)"
	}
}

// BothLabel is the option for acting on both scopes
const BothLabel = "Both"
