package driving

import "github.com/vabank-dev/vabank/internal/core/domain"

// SettingsService reads and writes the persisted configuration.
type SettingsService interface {
	// Get merges stored values, environment overrides and defaults.
	Get() (*domain.AppSettings, error)

	Save(settings *domain.AppSettings) error

	// Set parses value for the key's type and stores it. Unknown keys
	// and unparsable values fail with domain.ErrInvalidInput.
	Set(key, value string) error

	GetDefaults() domain.AppSettings

	// Validate reports settings the selected content source cannot run with.
	Validate() error
}
