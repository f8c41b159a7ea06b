package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SeedsMerge(t *testing.T) {
	store := NewConfigStore(
		map[string]any{"site.name": "Vabank.dev", "render.strict": true},
		map[string]any{"site.name": "Override"},
	)

	assert.Equal(t, "Override", store.GetString("site.name"))
	assert.True(t, store.GetBool("render.strict"))
}

func TestConfigStore_SetAndKeys(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("server.addr", ":4002"))
	require.NoError(t, store.Set("content.source", "memory"))

	assert.Equal(t, []string{"content.source", "server.addr"}, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "memory", store.GetString("content.source"))
}
