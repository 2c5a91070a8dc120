package prompt

import (
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/pterm/pterm"
)

// Interactive prompts on the terminal with pterm
type Interactive struct{}

// NewInteractive creates a terminal Prompter
func NewInteractive() *Interactive {
	return &Interactive{}
}

func (p *Interactive) ChooseScope(verb string, allowBoth bool) ([]types.Scope, error) {
	options := []string{ScopeLabel(types.ScopeGlobal), ScopeLabel(types.ScopeProject)}
	if allowBoth {
		options = append(options, BothLabel)
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Where do you want to " + verb + "?").
		Show()
	if err != nil {
		return nil, Cancelled(verb)
	}

	switch choice {
	case ScopeLabel(types.ScopeProject):
		return []types.Scope{types.ScopeProject}, nil
	case BothLabel:
		return types.AllScopes, nil
	default:
		return []types.Scope{types.ScopeGlobal}, nil
	}
}

func (p *Interactive) ChooseTargets(verb string, available []targets.Target, preselected []string) ([]targets.Target, error) {
	if len(available) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(available))
	byName := map[string]targets.Target{}
	pre := map[string]bool{}
	for _, id := range preselected {
		pre[id] = true
	}
	var defaults []string
	for _, t := range available {
		names = append(names, t.DisplayName)
		byName[t.DisplayName] = t
		if pre[t.ID] {
			defaults = append(defaults, t.DisplayName)
		}
	}

	chosen, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(names).
		WithDefaultOptions(defaults).
		WithFilter(false).
		WithDefaultText("Which editors do you want to " + verb + "?").
		Show()
	if err != nil || len(chosen) == 0 {
		return nil, Cancelled(verb)
	}

	out := make([]targets.Target, 0, len(chosen))
	for _, name := range chosen {
		out = append(out, byName[name])
	}
	return out, nil
}

func (p *Interactive) SelectItems(verb string, candidates []types.InstalledItem) ([]types.InstalledItem, error) {
	labels, byLabel := GroupedOptions(candidates)
	chosen, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(labels).
		WithMaxHeight(15).
		WithDefaultText("Select items to " + verb).
		Show()
	if err != nil {
		return nil, Cancelled(verb)
	}
	items := PickItems(chosen, byLabel)
	if len(items) == 0 {
		return nil, Cancelled(verb)
	}
	return items, nil
}

func (p *Interactive) Confirm(question string) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(question).
		WithDefaultValue(false).
		Show()
	if err != nil {
		return false, Cancelled("confirmation")
	}
	return ok, nil
}
