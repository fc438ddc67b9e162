package driving

import "github.com/askpdf-labs/askpdf-cli/internal/core/domain"

// Notifier is the sink services emit user-facing notifications into.
// Producers only ever add notifications; queue management belongs to
// NotificationCenter.
type Notifier interface {
	// Notify emits a notification of the given kind and returns the
	// stored value.
	Notify(message string, kind domain.NotificationKind) domain.Notification

	// Success emits a success notification.
	Success(message string) domain.Notification

	// Error emits an error notification.
	Error(message string) domain.Notification

	// Warning emits a warning notification.
	Warning(message string) domain.Notification

	// Info emits an info notification.
	Info(message string) domain.Notification
}

// NotificationCenter owns the queue of active notifications. Entries
// expire on their own after a fixed lifetime; Dismiss removes one early.
type NotificationCenter interface {
	Notifier

	// Dismiss removes a notification by ID. Dismissing an unknown ID
	// (already expired, already dismissed) is a no-op.
	Dismiss(id string)

	// Active returns the notifications currently alive, oldest first.
	Active() []domain.Notification
}
