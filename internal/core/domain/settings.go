package domain

import (
	"fmt"
	"strings"
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL is where the question-answering service listens
	// when run with its stock configuration.
	DefaultBaseURL = "http://localhost:5000/api"

	// DefaultRequestTimeout bounds every remote request. Answering a
	// question runs a retrieval pipeline server-side and can be slow.
	DefaultRequestTimeout = 120 * time.Second

	// DefaultNotificationLifetime is how long a notification stays
	// visible before it expires on its own.
	DefaultNotificationLifetime = 5 * time.Second

	// DefaultUploadRate is the ceiling on upload requests per second.
	DefaultUploadRate = 4.0

	// DefaultWatchSettle is how long the watcher waits after the last
	// write event before treating a file as fully copied.
	DefaultWatchSettle = 2 * time.Second
)

// APISettings holds the remote service connection configuration.
type APISettings struct {
	// BaseURL is the service address including any path prefix,
	// e.g. "http://localhost:5000/api".
	BaseURL string

	// Timeout bounds each request end to end.
	Timeout time.Duration
}

// UploadSettings holds upload behaviour configuration.
type UploadSettings struct {
	// RequestsPerSecond caps how fast sequential uploads are issued.
	RequestsPerSecond float64
}

// NotifySettings holds notification behaviour configuration.
type NotifySettings struct {
	// Lifetime is how long a notification stays active.
	Lifetime time.Duration
}

// WatchSettings holds watch-folder behaviour configuration.
type WatchSettings struct {
	// Settle is the quiet period after the last write before a new
	// file is picked up for upload.
	Settle time.Duration
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	API     APISettings
	Upload  UploadSettings
	Notify  NotifySettings
	Watch   WatchSettings
	Verbose bool
}

// DefaultSettings returns the configuration used when nothing has been
// saved yet.
func DefaultSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultRequestTimeout,
		},
		Upload: UploadSettings{
			RequestsPerSecond: DefaultUploadRate,
		},
		Notify: NotifySettings{
			Lifetime: DefaultNotificationLifetime,
		},
		Watch: WatchSettings{
			Settle: DefaultWatchSettle,
		},
	}
}

// Validate checks the settings for values that cannot work.
func (s AppSettings) Validate() error {
	if strings.TrimSpace(s.API.BaseURL) == "" {
		return ErrNoBaseURL
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", s.API.Timeout)
	}
	if s.Upload.RequestsPerSecond <= 0 {
		return fmt.Errorf("upload rate must be positive, got %g", s.Upload.RequestsPerSecond)
	}
	if s.Notify.Lifetime <= 0 {
		return fmt.Errorf("notification lifetime must be positive, got %s", s.Notify.Lifetime)
	}
	return nil
}
