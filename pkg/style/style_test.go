package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	for _, status := range []types.SyncStatus{
		types.StatusCreated, types.StatusUpdated, types.StatusExists,
		types.StatusSkipped, types.StatusRemoved, types.StatusError,
	} {
		label := StatusLabel(status)
		assert.Contains(t, label, string(status))
		assert.NotNil(t, StatusStyle(status))
	}
}

func TestCategoryStyle(t *testing.T) {
	for _, category := range types.AllCategories {
		rendered := CategoryStyle(category).Render("name")
		assert.True(t, strings.Contains(rendered, "name"))
	}
}
