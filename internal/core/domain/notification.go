package domain

import "time"

const unknownDescription = "Unknown"

// NotificationKind classifies a transient notification.
type NotificationKind string

// Available notification kinds.
const (
	// NotificationSuccess reports a completed operation.
	NotificationSuccess NotificationKind = "success"

	// NotificationError reports a failed operation.
	NotificationError NotificationKind = "error"

	// NotificationWarning reports a recoverable problem, such as
	// unsupported files being dropped from a selection.
	NotificationWarning NotificationKind = "warning"

	// NotificationInfo reports neutral status information.
	NotificationInfo NotificationKind = "info"
)

// IsValid returns true if the notification kind is recognised.
func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationSuccess, NotificationError, NotificationWarning, NotificationInfo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k NotificationKind) String() string {
	return string(k)
}

// Symbol returns a one-character marker for terminal rendering.
func (k NotificationKind) Symbol() string {
	switch k {
	case NotificationSuccess:
		return "✓"
	case NotificationError:
		return "✗"
	case NotificationWarning:
		return "!"
	case NotificationInfo:
		return "·"
	default:
		return "?"
	}
}

// Description returns a human-readable description of the kind.
func (k NotificationKind) Description() string {
	switch k {
	case NotificationSuccess:
		return "Success"
	case NotificationError:
		return "Error"
	case NotificationWarning:
		return "Warning"
	case NotificationInfo:
		return "Info"
	default:
		return unknownDescription
	}
}

// Notification is a transient user-facing message. Notifications are
// identified by a collision-resistant ID so that dismissal and automatic
// expiry can target one entry without disturbing the rest of the queue.
type Notification struct {
	// ID uniquely identifies the notification (UUID).
	ID string

	// Kind classifies the notification for rendering.
	Kind NotificationKind

	// Message is the human-readable body.
	Message string

	// CreatedAt is when the notification was emitted.
	CreatedAt time.Time
}
