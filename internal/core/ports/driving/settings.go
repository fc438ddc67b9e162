package driving

import (
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetBaseURL updates the remote service address.
	SetBaseURL(url string) error

	// SetTimeout updates the per-request timeout.
	SetTimeout(timeout time.Duration) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Validate checks if current settings are usable.
	Validate() error

	// Path returns the location settings are persisted at, or an
	// empty string when settings are not backed by a file.
	Path() string
}
