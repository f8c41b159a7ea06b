package domain

import "time"

const unknownDescription = "Unknown"

// ContentSource selects where content is read from.
type ContentSource string

// Available content sources.
const (
	// SourceSanity queries the Sanity HTTP API on every load.
	SourceSanity ContentSource = "sanity"

	// SourceMirror reads the local SQLite mirror filled by `vabank sync`.
	SourceMirror ContentSource = "mirror"

	// SourceExport reads an NDJSON dataset export from disk.
	SourceExport ContentSource = "export"

	// SourceMemory serves a fixed demo collection from memory.
	SourceMemory ContentSource = "memory"
)

// AllContentSources returns every content source.
func AllContentSources() []ContentSource {
	return []ContentSource{SourceSanity, SourceMirror, SourceExport, SourceMemory}
}

// IsValid returns true if the source is recognised.
func (s ContentSource) IsValid() bool {
	switch s {
	case SourceSanity, SourceMirror, SourceExport, SourceMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ContentSource) String() string {
	return string(s)
}

// Description returns a human-readable description of the source.
func (s ContentSource) Description() string {
	switch s {
	case SourceSanity:
		return "Sanity API (live)"
	case SourceMirror:
		return "Local mirror (SQLite)"
	case SourceExport:
		return "Dataset export (NDJSON)"
	case SourceMemory:
		return "In-memory"
	default:
		return unknownDescription
	}
}

// SanitySettings configures the Sanity content API.
type SanitySettings struct {
	ProjectID  string `json:"projectId"`
	Dataset    string `json:"dataset"`
	APIVersion string `json:"apiVersion"`
	Token      string `json:"-"`
	UseCDN     bool   `json:"useCdn"`
}

// IsConfigured returns true if a project id is set.
func (s SanitySettings) IsConfigured() bool {
	return s.ProjectID != ""
}

// ContentSettings configures content loading.
type ContentSettings struct {
	Source     ContentSource `json:"source"`
	ExportPath string        `json:"exportPath,omitempty"`
	Timeout    time.Duration `json:"timeout"`
}

// SiteSettings holds public site identity.
type SiteSettings struct {
	BaseURL     string `json:"baseUrl"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Addr        string   `json:"addr"`
	CORSOrigins []string `json:"corsOrigins,omitempty"`
}

// RenderSettings configures the rich-content renderer.
type RenderSettings struct {
	// Strict makes unknown block types an error instead of a plain-text fallback.
	Strict bool `json:"strict"`

	// CodeStyle is the syntax highlighting style name.
	CodeStyle string `json:"codeStyle"`
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Sanity   SanitySettings                `json:"sanity"`
	Content  ContentSettings               `json:"content"`
	Site     SiteSettings                  `json:"site"`
	Server   ServerSettings                `json:"server"`
	Render   RenderSettings                `json:"render"`
	Listings map[ContentKind]ListingConfig `json:"listings"`
}

// Listing returns the listing configuration for a kind, normalised.
func (s *AppSettings) Listing(kind ContentKind) ListingConfig {
	if cfg, ok := s.Listings[kind]; ok {
		return cfg.Normalized()
	}
	return DefaultListingConfig(kind)
}

// DefaultContentTimeout bounds one content fetch.
const DefaultContentTimeout = 10 * time.Second

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	listings := make(map[ContentKind]ListingConfig, 3)
	for _, k := range AllContentKinds() {
		listings[k] = DefaultListingConfig(k)
	}
	return AppSettings{
		Sanity: SanitySettings{
			Dataset:    "production",
			APIVersion: "2024-01-01",
			UseCDN:     true,
		},
		Content: ContentSettings{
			Source:  SourceMirror,
			Timeout: DefaultContentTimeout,
		},
		Site: SiteSettings{
			BaseURL:     "https://vabank.dev",
			Name:        "Vabank.dev",
			Description: "From replatforming to AI-driven innovation, we craft modern digital solutions that move your business ahead of the curve.",
		},
		Server: ServerSettings{
			Addr: ":4002",
		},
		Render: RenderSettings{
			CodeStyle: "onedark",
		},
		Listings: listings,
	}
}
