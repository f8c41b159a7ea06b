package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySanityProject  = "sanity.project_id"
	keySanityDataset  = "sanity.dataset"
	keySanityVersion  = "sanity.api_version"
	keySanityToken    = "sanity.token"
	keySanityCDN      = "sanity.use_cdn"
	keyContentSource  = "content.source"
	keyContentExport  = "content.export_path"
	keyContentTimeout = "content.timeout"
	keySiteBaseURL    = "site.base_url"
	keySiteName       = "site.name"
	keySiteDesc       = "site.description"
	keyServerAddr     = "server.addr"
	keyServerCORS     = "server.cors_origins"
	keyRenderStrict   = "render.strict"
	keyRenderStyle    = "render.code_style"
)

// Environment overrides, typically set through a .env file.
//
//nolint:gosec // G101: These are variable names, not credentials.
const (
	EnvSanityToken   = "VABANK_SANITY_TOKEN"
	EnvSanityProject = "VABANK_SANITY_PROJECT_ID"
	EnvContentSource = "VABANK_CONTENT_SOURCE"
)

func listingKey(kind domain.ContentKind, field string) string {
	return "listing." + kind.Plural() + "." + field
}

type keyType int

const (
	typeString keyType = iota
	typeBool
	typeInt
	typeDuration
	typeList
)

// settableKeys lists the keys accepted by Set and how their values parse.
func settableKeys() map[string]keyType {
	keys := map[string]keyType{
		keySanityProject:  typeString,
		keySanityDataset:  typeString,
		keySanityVersion:  typeString,
		keySanityToken:    typeString,
		keySanityCDN:      typeBool,
		keyContentSource:  typeString,
		keyContentExport:  typeString,
		keyContentTimeout: typeDuration,
		keySiteBaseURL:    typeString,
		keySiteName:       typeString,
		keySiteDesc:       typeString,
		keyServerAddr:     typeString,
		keyServerCORS:     typeList,
		keyRenderStrict:   typeBool,
		keyRenderStyle:    typeString,
	}
	for _, k := range domain.AllContentKinds() {
		keys[listingKey(k, "page_size")] = typeInt
		keys[listingKey(k, "step")] = typeInt
	}
	return keys
}

// SettableKeys returns the names of all keys accepted by Set.
func SettableKeys() []string {
	keys := settableKeys()
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	return out
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
// Environment overrides are read with os.LookupEnv.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// WithEnv replaces the environment lookup. Used by tests.
func (s *SettingsService) WithEnv(lookup func(string) (string, bool)) *SettingsService {
	s.lookupEnv = lookup
	return s
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Sanity: domain.SanitySettings{
			ProjectID:  s.getEnvOr(EnvSanityProject, s.configStore.GetString(keySanityProject)),
			Dataset:    s.getString(keySanityDataset, defaults.Sanity.Dataset),
			APIVersion: s.getString(keySanityVersion, defaults.Sanity.APIVersion),
			Token:      s.getEnvOr(EnvSanityToken, s.configStore.GetString(keySanityToken)),
			UseCDN:     s.getBool(keySanityCDN, defaults.Sanity.UseCDN),
		},
		Content: domain.ContentSettings{
			Source:     s.getSource(defaults.Content.Source),
			ExportPath: s.configStore.GetString(keyContentExport),
			Timeout:    s.getDuration(keyContentTimeout, defaults.Content.Timeout),
		},
		Site: domain.SiteSettings{
			BaseURL:     strings.TrimRight(s.getString(keySiteBaseURL, defaults.Site.BaseURL), "/"),
			Name:        s.getString(keySiteName, defaults.Site.Name),
			Description: s.getString(keySiteDesc, defaults.Site.Description),
		},
		Server: domain.ServerSettings{
			Addr:        s.getString(keyServerAddr, defaults.Server.Addr),
			CORSOrigins: s.configStore.GetStringSlice(keyServerCORS),
		},
		Render: domain.RenderSettings{
			Strict:    s.getBool(keyRenderStrict, defaults.Render.Strict),
			CodeStyle: s.getString(keyRenderStyle, defaults.Render.CodeStyle),
		},
		Listings: make(map[domain.ContentKind]domain.ListingConfig, len(defaults.Listings)),
	}

	for kind, cfg := range defaults.Listings {
		cfg.PageSize = s.getInt(listingKey(kind, "page_size"), cfg.PageSize)
		cfg.Step = s.getInt(listingKey(kind, "step"), cfg.Step)
		settings.Listings[kind] = cfg
	}

	return settings, nil
}

// Save persists application settings. The Sanity token is only written when set.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keySanityProject, settings.Sanity.ProjectID},
		{keySanityDataset, settings.Sanity.Dataset},
		{keySanityVersion, settings.Sanity.APIVersion},
		{keySanityCDN, settings.Sanity.UseCDN},
		{keyContentSource, settings.Content.Source.String()},
		{keyContentExport, settings.Content.ExportPath},
		{keyContentTimeout, settings.Content.Timeout.String()},
		{keySiteBaseURL, settings.Site.BaseURL},
		{keySiteName, settings.Site.Name},
		{keySiteDesc, settings.Site.Description},
		{keyServerAddr, settings.Server.Addr},
		{keyRenderStrict, settings.Render.Strict},
		{keyRenderStyle, settings.Render.CodeStyle},
	}
	if settings.Sanity.Token != "" {
		values = append(values, struct {
			key   string
			value any
		}{keySanityToken, settings.Sanity.Token})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	for kind, cfg := range settings.Listings {
		if err := s.configStore.Set(listingKey(kind, "page_size"), cfg.PageSize); err != nil {
			return fmt.Errorf("save %s page size: %w", kind, err)
		}
		if err := s.configStore.Set(listingKey(kind, "step"), cfg.Step); err != nil {
			return fmt.Errorf("save %s step: %w", kind, err)
		}
	}

	return nil
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	typ, ok := settableKeys()[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch typ {
	case typeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case typeInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case typeDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s must be a positive duration such as 10s", domain.ErrInvalidInput, key)
		}
		parsed = d.String()
	case typeList:
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		parsed = list
	default:
		if key == keyContentSource && !domain.ContentSource(value).IsValid() {
			return fmt.Errorf("%w: unknown content source %q", domain.ErrInvalidInput, value)
		}
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks that the configured content source can be used.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch settings.Content.Source {
	case domain.SourceSanity:
		if !settings.Sanity.IsConfigured() {
			return fmt.Errorf("%w: %s is required for the sanity source", domain.ErrInvalidInput, keySanityProject)
		}
	case domain.SourceExport:
		if settings.Content.ExportPath == "" {
			return fmt.Errorf("%w: %s is required for the export source", domain.ErrInvalidInput, keyContentExport)
		}
	}
	return nil
}

// Helper methods for reading config values with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); exists {
		return s.configStore.GetBool(key)
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

// getDuration accepts a duration string ("15s") or a number of seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if str := s.configStore.GetString(key); str != "" {
		if d, err := time.ParseDuration(str); err == nil && d > 0 {
			return d
		}
		return defaultVal
	}
	if secs := s.configStore.GetInt(key); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

func (s *SettingsService) getSource(defaultVal domain.ContentSource) domain.ContentSource {
	src := domain.ContentSource(s.getEnvOr(EnvContentSource, s.configStore.GetString(keyContentSource)))
	if src.IsValid() {
		return src
	}
	return defaultVal
}

func (s *SettingsService) getEnvOr(name, fallback string) string {
	if s.lookupEnv != nil {
		if v, ok := s.lookupEnv(name); ok && v != "" {
			return v
		}
	}
	return fallback
}
