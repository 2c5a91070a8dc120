package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"code-reviewer.md", "code-reviewer"},
		{"code-reviewer.md.disabled", "code-reviewer"},
		{"my-skill", "my-skill"},
		{"my-skill.disabled", "my-skill"},
		{"notes.txt", "notes.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.in))
		})
	}
}

func TestCategoryFileName(t *testing.T) {
	assert.Equal(t, "code-reviewer.md", CategoryAgents.FileName("code-reviewer", false))
	assert.Equal(t, "code-reviewer.md.disabled", CategoryAgents.FileName("code-reviewer", true))
	assert.Equal(t, "tdd", CategorySkills.FileName("tdd", false))
	assert.Equal(t, "tdd.disabled", CategorySkills.FileName("tdd", true))
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"agent":   CategoryAgents,
		"Agents":  CategoryAgents,
		"command": CategoryCommands,
		"skills":  CategorySkills,
		"arch":    CategoryArchitecture,
	} {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCategory("widgets")
	assert.Error(t, err)
}

func TestSplitPrefixedName(t *testing.T) {
	cat, name := SplitPrefixedName("@code-reviewer")
	assert.Equal(t, CategoryAgents, cat)
	assert.Equal(t, "code-reviewer", name)

	cat, name = SplitPrefixedName("/bootstrap")
	assert.Equal(t, CategoryCommands, cat)
	assert.Equal(t, "bootstrap", name)

	cat, name = SplitPrefixedName("tdd")
	assert.Equal(t, Category(""), cat)
	assert.Equal(t, "tdd", name)
}

func TestCategoryScopeRules(t *testing.T) {
	assert.False(t, CategoryCommands.AppliesTo(ScopeProject))
	assert.True(t, CategoryCommands.AppliesTo(ScopeGlobal))
	assert.True(t, CategoryAgents.AppliesTo(ScopeProject))
	assert.True(t, CategorySkills.IsDir())
	assert.False(t, CategoryArchitecture.Toggleable())
	assert.True(t, CategorySkills.Toggleable())
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("global")
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, s)
	assert.True(t, s.Symlinks())

	s, err = ParseScope("project")
	require.NoError(t, err)
	assert.False(t, s.Symlinks())

	_, err = ParseScope("galaxy")
	assert.Error(t, err)
}
