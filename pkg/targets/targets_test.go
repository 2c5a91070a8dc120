package targets

import (
	"testing"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	claude := MustGet("claude")
	assert.True(t, claude.Native())
	assert.True(t, claude.SupportsScope(types.ScopeProject))

	cursor := MustGet("cursor")
	assert.False(t, cursor.Native())
	assert.Equal(t, ".cursorrules", cursor.RulesFile)
	assert.True(t, cursor.SupportsScope(types.ScopeGlobal))
	assert.False(t, cursor.SupportsScope(types.ScopeProject))

	assert.Equal(t, "claude", IDs()[0])
	assert.Len(t, All(), len(IDs()))
}

func TestMustGetPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustGet("emacs") })
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		want    []string
		wantErr bool
	}{
		{name: "empty defaults to claude", ids: nil, want: []string{"claude"}},
		{name: "explicit", ids: []string{"cursor", "claude"}, want: []string{"cursor", "claude"}},
		{name: "dedupes and normalises", ids: []string{"Cursor", "cursor ", ""}, want: []string{"cursor"}},
		{name: "unknown", ids: []string{"emacs"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.ids)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTarget))
				assert.Contains(t, err.Error(), "available:")
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, tg := range got {
				ids = append(ids, tg.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
