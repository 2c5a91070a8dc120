// Package list implements the read-only listing of installed items
package list

import (
	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// ListOptions defines the options for the list command
type ListOptions struct {
	// Scopes to list; empty means global
	Scopes []types.Scope
}

// CategoryListing holds the items of one category directory
type CategoryListing struct {
	Category types.Category        `json:"category"`
	Dir      string                `json:"dir"`
	Items    []types.InstalledItem `json:"items"`
}

// ScopeListing groups the category listings of one scope
type ScopeListing struct {
	Scope      types.Scope       `json:"scope"`
	Categories []CategoryListing `json:"categories"`
}

// ListResult is returned by List
type ListResult struct {
	Scopes []ScopeListing `json:"scopes"`
}

// Count returns the number of items listed across all scopes
func (r *ListResult) Count() int {
	n := 0
	for _, s := range r.Scopes {
		for _, c := range s.Categories {
			n += len(c.Items)
		}
	}
	return n
}

// List reports the items in the native target's category directories for
// each scope, with their effective enabled state.
func List(ctx *commands.Context, opts ListOptions) (*ListResult, error) {
	logger := logging.GetLogger("commands.list")

	scopes := opts.Scopes
	if len(scopes) == 0 {
		scopes = []types.Scope{types.ScopeGlobal}
	}

	reconciler := ctx.Reconciler()
	known := ctx.Catalog.KnownNames()
	result := &ListResult{}

	for _, scope := range scopes {
		listing := ScopeListing{Scope: scope}
		for _, category := range types.AllCategories {
			if !category.AppliesTo(scope) {
				continue
			}
			items, err := reconciler.Installed(scope, category, known)
			if err != nil {
				return nil, err
			}
			listing.Categories = append(listing.Categories, CategoryListing{
				Category: category,
				Dir:      ctx.Paths.CategoryDir(scope, category),
				Items:    items,
			})
		}
		result.Scopes = append(result.Scopes, listing)
	}

	logger.Debug().Int("items", result.Count()).Msg("List complete")
	return result, nil
}
