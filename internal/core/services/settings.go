package services

import (
	"fmt"
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Configuration keys.
const (
	keyAPIBaseURL     = "api.base_url"
	keyAPITimeoutSecs = "api.timeout_seconds"
	keyUploadRate     = "upload.requests_per_second"
	keyNotifyLifeSecs = "notify.lifetime_seconds"
	keyWatchSettleMS  = "watch.settle_ms"
	keyVerbose        = "verbose"
)

// SettingsService manages application settings on top of a ConfigStore.
// Missing keys fall back to defaults, so a fresh install works without
// a config file.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := domain.AppSettings{
		API: domain.APISettings{
			BaseURL: s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			Timeout: time.Duration(s.getInt(keyAPITimeoutSecs, int(defaults.API.Timeout/time.Second))) * time.Second,
		},
		Upload: domain.UploadSettings{
			RequestsPerSecond: s.getFloat(keyUploadRate, defaults.Upload.RequestsPerSecond),
		},
		Notify: domain.NotifySettings{
			Lifetime: time.Duration(s.getInt(keyNotifyLifeSecs, int(defaults.Notify.Lifetime/time.Second))) * time.Second,
		},
		Watch: domain.WatchSettings{
			Settle: time.Duration(s.getInt(keyWatchSettleMS, int(defaults.Watch.Settle/time.Millisecond))) * time.Millisecond,
		},
		Verbose: s.getBool(keyVerbose, defaults.Verbose),
	}

	return &settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("settings must not be nil")
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	values := map[string]any{
		keyAPIBaseURL:     settings.API.BaseURL,
		keyAPITimeoutSecs: int(settings.API.Timeout / time.Second),
		keyUploadRate:     settings.Upload.RequestsPerSecond,
		keyNotifyLifeSecs: int(settings.Notify.Lifetime / time.Second),
		keyWatchSettleMS:  int(settings.Watch.Settle / time.Millisecond),
		keyVerbose:        settings.Verbose,
	}
	for key, value := range values {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}

	return s.configStore.Save()
}

// SetBaseURL updates the remote service address.
func (s *SettingsService) SetBaseURL(url string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.API.BaseURL = url
	return s.Save(settings)
}

// SetTimeout updates the per-request timeout.
func (s *SettingsService) SetTimeout(timeout time.Duration) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.API.Timeout = timeout
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultSettings()
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// getString returns the config value or the default if not set.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt returns the config value or the default if not set.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

// getFloat returns the config value or the default if not set.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

// getBool returns the config value or the default if not set.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
