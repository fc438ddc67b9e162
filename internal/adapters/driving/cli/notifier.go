package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure EchoNotifier implements the interface.
var _ driving.NotificationCenter = (*EchoNotifier)(nil)

// EchoNotifier wraps a NotificationCenter and mirrors every emission to
// an attached writer. The chat interface renders notifications as
// toasts; plain commands attach their output stream so the same
// notifications appear as lines of text while an upload runs.
type EchoNotifier struct {
	inner driving.NotificationCenter

	mu  sync.Mutex
	out io.Writer
}

// NewEchoNotifier wraps a notification center. Nothing is echoed until
// a writer is attached.
func NewEchoNotifier(inner driving.NotificationCenter) *EchoNotifier {
	return &EchoNotifier{inner: inner}
}

// Attach directs a copy of every notification to w.
func (e *EchoNotifier) Attach(w io.Writer) {
	e.mu.Lock()
	e.out = w
	e.mu.Unlock()
}

// Detach stops echoing.
func (e *EchoNotifier) Detach() {
	e.mu.Lock()
	e.out = nil
	e.mu.Unlock()
}

// Notify emits a notification of the given kind.
func (e *EchoNotifier) Notify(message string, kind domain.NotificationKind) domain.Notification {
	n := e.inner.Notify(message, kind)
	e.echo(n)
	return n
}

// Success emits a success notification.
func (e *EchoNotifier) Success(message string) domain.Notification {
	n := e.inner.Success(message)
	e.echo(n)
	return n
}

// Error emits an error notification.
func (e *EchoNotifier) Error(message string) domain.Notification {
	n := e.inner.Error(message)
	e.echo(n)
	return n
}

// Warning emits a warning notification.
func (e *EchoNotifier) Warning(message string) domain.Notification {
	n := e.inner.Warning(message)
	e.echo(n)
	return n
}

// Info emits an info notification.
func (e *EchoNotifier) Info(message string) domain.Notification {
	n := e.inner.Info(message)
	e.echo(n)
	return n
}

// Dismiss removes a notification by ID.
func (e *EchoNotifier) Dismiss(id string) {
	e.inner.Dismiss(id)
}

// Active returns the notifications currently alive.
func (e *EchoNotifier) Active() []domain.Notification {
	return e.inner.Active()
}

func (e *EchoNotifier) echo(n domain.Notification) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.out == nil {
		return
	}
	fmt.Fprintf(e.out, "%s %s\n", n.Kind.Symbol(), n.Message)
}
