package domain

import (
	"fmt"
	"time"
)

// DocumentRecord describes one file currently held by the remote service.
// Records are a client-side mirror of the service's authoritative list;
// they are replaced wholesale on every refresh and never mutated in place.
type DocumentRecord struct {
	// Name is the stored file name, unique on the service.
	Name string

	// Size is the file size in bytes.
	Size int64

	// TimeRemaining is the number of minutes until the service deletes
	// the file. Nil when the service did not report a retention window.
	TimeRemaining *int

	// UploadedAt is when the service received the file. Nil when the
	// service did not report it.
	UploadedAt *time.Time
}

// SizeLabel returns the size formatted for display, e.g. "1.2 MB".
func (r DocumentRecord) SizeLabel() string {
	return FormatBytes(r.Size)
}

// ExpiryLabel returns a short expiry hint, e.g. "7 min left".
// Returns an empty string when no retention window is known.
func (r DocumentRecord) ExpiryLabel() string {
	if r.TimeRemaining == nil {
		return ""
	}
	if *r.TimeRemaining <= 0 {
		return "expiring"
	}
	return fmt.Sprintf("%d min left", *r.TimeRemaining)
}

// FormatBytes renders a byte count with a binary-ish human unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
