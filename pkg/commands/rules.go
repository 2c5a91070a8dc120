package commands

import (
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// RulesSections returns the merge sections for every agent that is not
// disabled. Merge-required targets are global-only, so the disabled state is
// read for the global scope.
func (c *Context) RulesSections() []operations.MergeSection {
	reconciler := c.Reconciler()
	var sections []operations.MergeSection
	for _, agent := range c.Catalog.Assets(types.CategoryAgents) {
		if reconciler.CurrentlyDisabled(types.CategoryAgents, agent.Name, types.ScopeGlobal) {
			continue
		}
		sections = append(sections, operations.MergeSection{
			Name:        agent.Name,
			Description: agent.Description,
			Path:        agent.Path,
		})
	}
	return sections
}

// RegenerateRules rewrites the merged rules file of a merge-required target
func (c *Context) RegenerateRules(s *operations.Syncer, t targets.Target) types.Result {
	r := s.MergeFiles(c.Paths.RulesFilePath(t), c.RulesSections())
	r.Category = types.CategoryAgents
	return r
}

// InstalledMergeTargets returns the merge-required targets recorded in the
// Config Store, in registry order.
func (c *Context) InstalledMergeTargets() []targets.Target {
	installed := map[string]bool{}
	for _, id := range c.Store.GetTargets() {
		installed[id] = true
	}

	var out []targets.Target
	for _, t := range targets.All() {
		if !t.Native() && installed[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
