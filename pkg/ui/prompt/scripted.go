package prompt

import (
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Scripted answers prompts from preset values. A nil field means the
// question cannot be answered and the Prompter reports an error.
type Scripted struct {
	Scopes  []types.Scope
	Targets []string
	// Items are display names (@agent, /command, skill) to select
	Items   []string
	Answers []bool

	// Asked records every question, in order
	Asked []string
}

// NewNonInteractive returns a Prompter that refuses every question. It is
// used when stdin is not a terminal.
func NewNonInteractive() *Scripted {
	return &Scripted{}
}

func (s *Scripted) unanswerable(what, hint string) error {
	return errors.Newf(errors.ErrInvalidInput, "cannot ask for %s without a terminal; %s", what, hint)
}

func (s *Scripted) ChooseScope(verb string, allowBoth bool) ([]types.Scope, error) {
	s.Asked = append(s.Asked, "scope:"+verb)
	if s.Scopes == nil {
		return nil, s.unanswerable("a scope", "pass --global or --project")
	}
	if len(s.Scopes) > 1 && !allowBoth {
		return s.Scopes[:1], nil
	}
	return s.Scopes, nil
}

func (s *Scripted) ChooseTargets(verb string, available []targets.Target, _ []string) ([]targets.Target, error) {
	s.Asked = append(s.Asked, "targets:"+verb)
	if s.Targets == nil {
		return nil, s.unanswerable("targets", "pass --target")
	}
	var out []targets.Target
	for _, id := range s.Targets {
		for _, t := range available {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	if len(out) == 0 {
		return nil, Cancelled(verb)
	}
	return out, nil
}

func (s *Scripted) SelectItems(verb string, candidates []types.InstalledItem) ([]types.InstalledItem, error) {
	s.Asked = append(s.Asked, "items:"+verb)
	if s.Items == nil {
		return nil, s.unanswerable("items", "name an item or pass --all")
	}
	want := map[string]bool{}
	for _, name := range s.Items {
		want[name] = true
	}
	var out []types.InstalledItem
	for _, item := range candidates {
		if want[item.DisplayName()] {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil, Cancelled(verb)
	}
	return out, nil
}

func (s *Scripted) Confirm(question string) (bool, error) {
	s.Asked = append(s.Asked, "confirm:"+question)
	if len(s.Answers) == 0 {
		return false, s.unanswerable("confirmation", "pass --yes")
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
