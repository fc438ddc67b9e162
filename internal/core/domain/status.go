package domain

import "time"

// ServiceStatus is the remote service's health probe response.
type ServiceStatus struct {
	// Status is the service's self-reported state, e.g. "healthy".
	Status string

	// Message is a human-readable banner.
	Message string

	// Version is the service version string.
	Version string
}

// Healthy returns true if the service reported itself operational.
func (s ServiceStatus) Healthy() bool {
	return s.Status == "healthy"
}

// CleanupEntry describes one file in the service's deletion schedule.
type CleanupEntry struct {
	// Name is the stored file name.
	Name string

	// UploadedAt is when the service received the file.
	UploadedAt time.Time

	// MinutesRemaining is how long until automatic deletion.
	MinutesRemaining int
}

// CleanupStatus describes the service's automatic file cleanup schedule.
type CleanupStatus struct {
	// IntervalMinutes is the retention window applied to every upload.
	IntervalMinutes int

	// TotalFiles is the number of files currently held.
	TotalFiles int

	// Files lists the per-file deletion schedule.
	Files []CleanupEntry
}
