package driving

import "github.com/custodia-labs/discreta/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its dotted config key.
	// The value is parsed according to the key's type.
	Set(key, value string) error

	// Reset restores the default settings.
	Reset() error

	// Keys lists the settable config keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
