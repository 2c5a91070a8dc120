package prompt_test

import (
	"testing"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/targets"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidates = []types.InstalledItem{
	{Name: "code-reviewer", Category: types.CategoryAgents, Known: true},
	{Name: "doc-writer", Category: types.CategoryAgents, Known: true},
	{Name: "bootstrap", Category: types.CategoryCommands, Known: true},
	{Name: "pdf-tools", Category: types.CategorySkills},
}

func TestGroupedOptions(t *testing.T) {
	labels, byLabel := prompt.GroupedOptions(candidates)

	assert.Equal(t, []string{
		"── Agents ──",
		"@code-reviewer",
		"@doc-writer",
		"── Commands ──",
		"/bootstrap",
		"── Skills ──",
		"pdf-tools (skill) (user)",
	}, labels)

	picked := prompt.PickItems([]string{"── Agents ──", "@doc-writer", "pdf-tools (skill) (user)"}, byLabel)
	require.Len(t, picked, 2)
	assert.Equal(t, "doc-writer", picked[0].Name)
	assert.Equal(t, "pdf-tools", picked[1].Name)
}

func TestScripted(t *testing.T) {
	p := &prompt.Scripted{
		Scopes:  types.AllScopes,
		Targets: []string{"cursor"},
		Items:   []string{"/bootstrap"},
		Answers: []bool{true},
	}

	scopes, err := p.ChooseScope("install", false)
	require.NoError(t, err)
	assert.Equal(t, []types.Scope{types.ScopeGlobal}, scopes)

	tgts, err := p.ChooseTargets("uninstall", targets.All(), nil)
	require.NoError(t, err)
	require.Len(t, tgts, 1)
	assert.Equal(t, "cursor", tgts[0].ID)

	items, err := p.SelectItems("disable", candidates)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, types.CategoryCommands, items[0].Category)

	ok, err := p.Confirm("Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{"scope:install", "targets:uninstall", "items:disable", "confirm:Proceed?"}, p.Asked)
}

func TestScriptedNothingChosenIsCancelled(t *testing.T) {
	p := &prompt.Scripted{Items: []string{"@missing"}}
	_, err := p.SelectItems("enable", candidates)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))
}

func TestNonInteractive(t *testing.T) {
	p := prompt.NewNonInteractive()

	_, err := p.ChooseScope("install", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "--global")

	_, err = p.Confirm("Remove?")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
