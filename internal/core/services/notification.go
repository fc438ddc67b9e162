package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure NotificationService implements the interface.
var _ driving.NotificationCenter = (*NotificationService)(nil)

// NotificationService owns the queue of transient notifications.
// Every entry expires on its own once the configured lifetime elapses.
// Expiry and manual dismissal share one removal path, so whichever
// happens first wins and the other is a harmless no-op.
type NotificationService struct {
	lifetime time.Duration

	mu    sync.Mutex
	queue []domain.Notification
}

// NewNotificationService creates a notification service. A
// non-positive lifetime falls back to the default.
func NewNotificationService(lifetime time.Duration) *NotificationService {
	if lifetime <= 0 {
		lifetime = domain.DefaultNotificationLifetime
	}
	return &NotificationService{lifetime: lifetime}
}

// Notify appends a notification and schedules its expiry.
// Unrecognised kinds are coerced to info.
func (s *NotificationService) Notify(message string, kind domain.NotificationKind) domain.Notification {
	if !kind.IsValid() {
		kind = domain.NotificationInfo
	}

	n := domain.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.queue = append(s.queue, n)
	s.mu.Unlock()

	time.AfterFunc(s.lifetime, func() {
		s.Dismiss(n.ID)
	})

	return n
}

// Success emits a success notification.
func (s *NotificationService) Success(message string) domain.Notification {
	return s.Notify(message, domain.NotificationSuccess)
}

// Error emits an error notification.
func (s *NotificationService) Error(message string) domain.Notification {
	return s.Notify(message, domain.NotificationError)
}

// Warning emits a warning notification.
func (s *NotificationService) Warning(message string) domain.Notification {
	return s.Notify(message, domain.NotificationWarning)
}

// Info emits an info notification.
func (s *NotificationService) Info(message string) domain.Notification {
	return s.Notify(message, domain.NotificationInfo)
}

// Dismiss removes a notification by ID. Unknown IDs are ignored.
func (s *NotificationService) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.queue {
		if n.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Active returns the notifications currently alive, oldest first.
func (s *NotificationService) Active() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.queue))
	copy(out, s.queue)
	return out
}

// Lifetime returns how long a notification stays active.
func (s *NotificationService) Lifetime() time.Duration {
	return s.lifetime
}
