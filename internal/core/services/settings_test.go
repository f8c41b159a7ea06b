package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/memory"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

func noEnv(string) (string, bool) { return "", false }

func newSettings(seed map[string]any) (*SettingsService, *memory.ConfigStore) {
	store := memory.NewConfigStore(seed)
	return NewSettingsService(store).WithEnv(noEnv), store
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	svc, _ := newSettings(nil)

	settings, err := svc.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Sanity, settings.Sanity)
	assert.Equal(t, defaults.Content, settings.Content)
	assert.Equal(t, defaults.Site, settings.Site)
	assert.Equal(t, defaults.Listings, settings.Listings)
	assert.Equal(t, defaults, svc.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	svc, _ := newSettings(map[string]any{
		"sanity.project_id":       "abc123",
		"sanity.use_cdn":          false,
		"content.source":          "sanity",
		"content.timeout":         "3s",
		"site.base_url":           "https://example.com/",
		"server.cors_origins":     []any{"https://a.test"},
		"render.strict":           true,
		"listing.works.page_size": int64(9),
		"listing.practices.step":  int64(2),
		"listing.posts.page_size": int64(-1),
	})

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, "abc123", settings.Sanity.ProjectID)
	assert.False(t, settings.Sanity.UseCDN)
	assert.Equal(t, domain.SourceSanity, settings.Content.Source)
	assert.Equal(t, 3*time.Second, settings.Content.Timeout)
	assert.Equal(t, "https://example.com", settings.Site.BaseURL)
	assert.Equal(t, []string{"https://a.test"}, settings.Server.CORSOrigins)
	assert.True(t, settings.Render.Strict)
	assert.Equal(t, 9, settings.Listings[domain.KindWork].PageSize)
	assert.Equal(t, 2, settings.Listings[domain.KindPractice].Step)
	assert.Equal(t, 6, settings.Listings[domain.KindPost].PageSize)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	svc, _ := newSettings(map[string]any{
		"content.source":  "ftp",
		"content.timeout": "soon",
	})

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.SourceMirror, settings.Content.Source)
	assert.Equal(t, domain.DefaultContentTimeout, settings.Content.Timeout)
}

func TestSettingsService_Get_TimeoutAsSeconds(t *testing.T) {
	svc, _ := newSettings(map[string]any{"content.timeout": int64(4)})

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 4*time.Second, settings.Content.Timeout)
}

func TestSettingsService_Get_EnvOverrides(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{"sanity.token": "file-token", "content.source": "mirror"})
	env := map[string]string{EnvSanityToken: "env-token", EnvContentSource: "export", EnvSanityProject: "p1"}
	svc := NewSettingsService(store).WithEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, "env-token", settings.Sanity.Token)
	assert.Equal(t, "p1", settings.Sanity.ProjectID)
	assert.Equal(t, domain.SourceExport, settings.Content.Source)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	svc, store := newSettings(nil)
	settings := domain.DefaultAppSettings()
	settings.Sanity.ProjectID = "proj"
	settings.Content.Timeout = 7 * time.Second
	settings.Listings[domain.KindPost] = domain.ListingConfig{PageSize: 3, Step: 3, AllLabel: domain.AllArticlesLabel}

	require.NoError(t, svc.Save(&settings))
	_, tokenSaved := store.Get("sanity.token")
	assert.False(t, tokenSaved)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "proj", got.Sanity.ProjectID)
	assert.Equal(t, 7*time.Second, got.Content.Timeout)
	assert.Equal(t, 3, got.Listings[domain.KindPost].PageSize)
}

func TestSettingsService_Set(t *testing.T) {
	svc, store := newSettings(nil)

	require.NoError(t, svc.Set("render.strict", "true"))
	require.NoError(t, svc.Set("listing.works.step", "12"))
	require.NoError(t, svc.Set("content.timeout", "1m"))
	require.NoError(t, svc.Set("server.cors_origins", "https://a.test, ,https://b.test"))
	require.NoError(t, svc.Set("content.source", "export"))

	assert.Equal(t, true, store.GetBool("render.strict"))
	assert.Equal(t, 12, store.GetInt("listing.works.step"))
	assert.Equal(t, "1m0s", store.GetString("content.timeout"))
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, store.GetStringSlice("server.cors_origins"))
	assert.Equal(t, "export", store.GetString("content.source"))
}

func TestSettingsService_SetRejectsBadInput(t *testing.T) {
	svc, _ := newSettings(nil)

	tests := []struct {
		key   string
		value string
	}{
		{"no.such.key", "x"},
		{"render.strict", "maybe"},
		{"listing.posts.page_size", "0"},
		{"listing.posts.step", "abc"},
		{"content.timeout", "-1s"},
		{"content.source", "ftp"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := svc.Set(tt.key, tt.value)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), err)
		})
	}
}

func TestSettingsService_Validate(t *testing.T) {
	svc, _ := newSettings(nil)
	assert.NoError(t, svc.Validate())

	svc, _ = newSettings(map[string]any{"content.source": "sanity"})
	assert.True(t, errors.Is(svc.Validate(), domain.ErrInvalidInput))

	svc, _ = newSettings(map[string]any{"content.source": "sanity", "sanity.project_id": "p"})
	assert.NoError(t, svc.Validate())

	svc, _ = newSettings(map[string]any{"content.source": "export"})
	assert.True(t, errors.Is(svc.Validate(), domain.ErrInvalidInput))
}

func TestSettableKeys(t *testing.T) {
	keys := SettableKeys()

	assert.Contains(t, keys, "sanity.project_id")
	assert.Contains(t, keys, "listing.practices.page_size")
}
