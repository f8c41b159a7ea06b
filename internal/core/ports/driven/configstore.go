package driven

// ConfigReader reads flat dot-notation keys such as "sanity.project_id".
// The typed getters return the zero value for missing keys and for
// values of another type.
type ConfigReader interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Keys lists the stored keys in sorted order.
	Keys() []string
}

// ConfigStore is a ConfigReader backed by persistent storage.
type ConfigStore interface {
	ConfigReader

	// Set stores a value and writes it through to storage.
	Set(key string, value any) error

	Save() error

	// Load replaces the values with what storage holds.
	Load() error

	// Path names the backing file, for display.
	Path() string
}
