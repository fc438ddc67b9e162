// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewChat is the question/answer conversation view.
	ViewChat ViewType = iota
	// ViewDocuments is the uploaded documents view.
	ViewDocuments
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewDocuments:
		return "documents"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// AnswerReceived signals that a submitted question has finished, whether
// it was accepted or not. The transcript holds the outcome.
type AnswerReceived struct {
	Question string
	Accepted bool
}

// DocumentsRefreshed signals that a document list refresh completed.
type DocumentsRefreshed struct {
	Err error
}

// DocumentRemoved signals that a document deletion completed.
type DocumentRemoved struct {
	Name string
	Err  error
}

// UploadCompleted carries the outcome of an upload batch.
type UploadCompleted struct {
	Result domain.BatchResult
	Err    error
}

// StatusChecked carries the service health probe outcome.
type StatusChecked struct {
	Status *domain.ServiceStatus
	Err    error
}

// ToastTick drives periodic re-rendering of the notification stack so
// expired notifications disappear without user input.
type ToastTick struct {
	Time time.Time
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
