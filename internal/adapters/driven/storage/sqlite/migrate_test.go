package sqlite

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.up.sql":   {Data: []byte("SELECT 1;")},
		"002_next.up.sql":    {Data: []byte("SELECT 1;")},
		"001_first.up.sql":   {Data: []byte("SELECT 1;")},
		"001_first.down.sql": {Data: []byte("SELECT 1;")},
		"notes.up.sql":       {Data: []byte("SELECT 1;")},
	}

	got, err := pendingMigrations(fsys, 1)
	require.NoError(t, err)

	assert.Equal(t, []migration{
		{version: 2, name: "002_next.up.sql"},
		{version: 10, name: "010_later.up.sql"},
	}, got)
}

func TestMigrate_FailedScriptIsNotRecorded(t *testing.T) {
	store := setupTestStore(t)

	err := store.migrate(fstest.MapFS{
		"002_broken.up.sql": {Data: []byte("CREATE TABLE nope (;")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.up.sql")

	v, err := store.SchemaVersion(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSchemaFS_HasUpAndDown(t *testing.T) {
	up, err := pendingMigrations(schemaFS(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, up)
	assert.Equal(t, 1, up[0].version)
}
