// Package toggle implements the Enable/Disable Engine. Explicit names, --all
// and interactive selections all resolve to a list of Items that are driven
// through the state reconciler one at a time.
package toggle

import (
	"strings"

	"github.com/arthur-debert/agentkit/pkg/commands"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Item identifies one toggleable asset
type Item struct {
	Category types.Category `json:"category"`
	Name     string         `json:"name"`
}

// String renders the item with its category prefix (@agent, /command)
func (i Item) String() string {
	return i.Category.Prefix() + i.Name
}

// ToggleOptions defines the options for the enable and disable commands
type ToggleOptions struct {
	// Enable selects the direction; false disables
	Enable bool
	Scope  types.Scope
	// Items are the resolved selections
	Items []Item
	// All replaces Items with every item currently in the opposite state
	All bool
}

// ToggleResult reports each transition and any regenerated rules files
type ToggleResult struct {
	Enable  bool           `json:"enable"`
	Results []types.Result `json:"results"`
	Rules   []types.Result `json:"rules,omitempty"`
	Tally   types.Tally    `json:"tally"`
}

// Verb returns "enable" or "disable"
func (o ToggleOptions) Verb() string {
	if o.Enable {
		return "enable"
	}
	return "disable"
}

// Toggle runs the Enable/Disable Engine. Items already in the wanted state
// are accepted silently. The error is non-nil only when the Config Store
// cannot be written.
func Toggle(ctx *commands.Context, opts ToggleOptions) (*ToggleResult, error) {
	logger := logging.GetLogger("commands.toggle")
	logger.Debug().
		Str("verb", opts.Verb()).
		Str("scope", string(opts.Scope)).
		Int("items", len(opts.Items)).
		Bool("all", opts.All).
		Msg("Starting toggle command")

	items := opts.Items
	if opts.All {
		candidates, err := Candidates(ctx, opts.Scope, opts.Enable)
		if err != nil {
			return nil, err
		}
		items = make([]Item, 0, len(candidates))
		for _, c := range candidates {
			items = append(items, Item{Category: c.Category, Name: c.Name})
		}
	}

	result := &ToggleResult{Enable: opts.Enable}
	reconciler := ctx.Reconciler()
	touchedAgents := false

	for i, item := range items {
		var r types.Result
		var err error
		if opts.Enable {
			r, err = reconciler.TransitionToEnabled(item.Category, item.Name, opts.Scope)
		} else {
			r, err = reconciler.TransitionToDisabled(item.Category, item.Name, opts.Scope)
		}
		result.Results = append(result.Results, r)
		if err != nil {
			result.Tally = types.NewTally(result.Results)
			return result, err
		}
		if item.Category == types.CategoryAgents && r.Status != types.StatusError {
			touchedAgents = true
		}
		logger.Info().
			Int("done", i+1).
			Int("total", len(items)).
			Str("item", item.String()).
			Str("status", string(r.Status)).
			Msg(opts.Verb())
	}

	if touchedAgents {
		syncer := ctx.Syncer(false)
		for _, t := range ctx.InstalledMergeTargets() {
			result.Rules = append(result.Rules, ctx.RegenerateRules(syncer, t))
		}
	}

	result.Tally = types.NewTally(result.Results)
	return result, nil
}

// Resolve maps a user-supplied name to an Item. An explicit category wins,
// then the @ and / prefixes; a bare name is probed in the agents, commands
// and skills directories of scope, then in the source catalog.
func Resolve(ctx *commands.Context, scope types.Scope, raw string, category types.Category) (Item, error) {
	prefixed, name := types.SplitPrefixedName(strings.TrimSpace(raw))
	name = types.CleanName(name)
	if name == "" {
		return Item{}, errors.New(errors.ErrInvalidInput, "empty item name")
	}

	if category == "" {
		category = prefixed
	}
	if category != "" {
		if !category.Toggleable() {
			return Item{}, errors.Newf(errors.ErrInvalidInput, "%s cannot be enabled or disabled", category)
		}
		if !category.AppliesTo(scope) {
			return Item{}, errors.Newf(errors.ErrUnsupported, "%s are global-only; %q cannot be toggled in %s scope",
				category, name, scope)
		}
		return Item{Category: category, Name: name}, nil
	}

	reconciler := ctx.Reconciler()
	syncer := ctx.Syncer(false)
	for _, c := range types.ToggleCategories {
		if !c.AppliesTo(scope) {
			continue
		}
		loc := reconciler.Locate(c, name, scope)
		if syncer.Exists(loc.EnabledPath) || syncer.Exists(loc.DisabledPath) {
			return Item{Category: c, Name: name}, nil
		}
	}
	for _, c := range types.ToggleCategories {
		if !c.AppliesTo(scope) {
			continue
		}
		if _, ok := ctx.Catalog.Find(c, name); ok {
			return Item{Category: c, Name: name}, nil
		}
	}

	return Item{}, errors.Newf(errors.ErrNotFound, "no agent, command or skill named %q", name).
		WithDetail("scope", string(scope))
}

// Candidates lists the items a toggle in the given direction could change:
// enabled items for disable, disabled items for enable. Names the Config
// Store disables that are not installed are enable candidates too. The list
// is grouped by category.
func Candidates(ctx *commands.Context, scope types.Scope, enable bool) ([]types.InstalledItem, error) {
	reconciler := ctx.Reconciler()
	known := ctx.Catalog.KnownNames()
	var out []types.InstalledItem

	for _, category := range types.ToggleCategories {
		if !category.AppliesTo(scope) {
			continue
		}
		items, err := reconciler.Installed(scope, category, known)
		if err != nil {
			return nil, err
		}

		seen := map[string]bool{}
		for _, item := range items {
			seen[item.Name] = true
			if item.Enabled != enable {
				out = append(out, item)
			}
		}

		if enable {
			for _, name := range ctx.Store.GetDisabledItems(category) {
				if !seen[name] {
					out = append(out, types.InstalledItem{Name: name, Category: category, Known: known[name]})
				}
			}
		}
	}
	return out, nil
}
