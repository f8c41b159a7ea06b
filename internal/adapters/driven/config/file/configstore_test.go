package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ConfigStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestNewConfigStore(t *testing.T) {
	store, dir := newTestStore(t)

	assert.Equal(t, filepath.Join(dir, FileName), store.Path())
	assert.Empty(t, store.Keys())
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "opening must not create the file")
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".vabank", FileName), store.Path())
}

func TestNewConfigStore_Errors(t *testing.T) {
	_, err := NewConfigStore("/dev/null/cannot/create")
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not toml {{[["), 0600))
	_, err = NewConfigStore(dir)
	assert.ErrorContains(t, err, "parsing")
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Set("sanity.project_id", "abc123"))
	require.NoError(t, store.Set("sanity.use_cdn", false))
	require.NoError(t, store.Set("listing.works.step", 6))
	require.NoError(t, store.Set("server.cors_origins", []string{"https://vabank.dev"}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "# vabank settings")
	assert.Contains(t, text, "[sanity]")
	assert.Regexp(t, `project_id = ['"]abc123['"]`, text)
	assert.NotContains(t, text, `"sanity.project_id"`)

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reloaded.GetString("sanity.project_id"))
	assert.False(t, reloaded.GetBool("sanity.use_cdn"))
	assert.Equal(t, 6, reloaded.GetInt("listing.works.step"))
	assert.Equal(t, []string{"https://vabank.dev"}, reloaded.GetStringSlice("server.cors_origins"))
	assert.Equal(t, []string{"listing.works.step", "sanity.project_id", "sanity.use_cdn", "server.cors_origins"}, reloaded.Keys())
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[content]
source = "export"
export_path = "/srv/content.ndjson"

[listing.posts]
page_size = 12

[server]
cors_origins = "https://vabank.dev, http://localhost:3000"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "export", store.GetString("content.source"))
	assert.Equal(t, "/srv/content.ndjson", store.GetString("content.export_path"))
	assert.Equal(t, 12, store.GetInt("listing.posts.page_size"))
	assert.Equal(t, []string{"https://vabank.dev", "http://localhost:3000"}, store.GetStringSlice("server.cors_origins"))
}

func TestConfigStore_Save(t *testing.T) {
	store, dir := newTestStore(t)
	store.Put("site.name", "Vabank.dev")

	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "Vabank.dev", reloaded.GetString("site.name"))
}

func TestConfigStore_WriteError(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("site.name", "x"))
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("site.name", "y"))
	assert.Equal(t, "x", store.GetString("site.name"))
}

func TestConfigStore_RejectsUnencodableValue(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Error(t, store.Set("channel", make(chan int)))
	_, ok := store.Get("channel")
	assert.False(t, ok)
}

func TestConfigStore_Load(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("site.name", "x"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid ][}{"), 0600))
	assert.Error(t, store.Load())

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, store.Load())
	assert.Empty(t, store.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("sanity.token", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}
