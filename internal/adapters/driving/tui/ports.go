// Package tui provides an interactive terminal user interface for askpdf.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat asks questions about the uploaded documents.
	Chat driving.ChatService

	// Registry mirrors the service-side file list.
	Registry driving.RegistryService

	// Upload stages and uploads PDF files.
	Upload driving.UploadService

	// Notifier publishes transient notifications.
	Notifier driving.NotificationCenter

	// Status reports service health. Optional; the TUI runs without it.
	Status driving.StatusService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	chat driving.ChatService,
	registry driving.RegistryService,
	upload driving.UploadService,
	notifier driving.NotificationCenter,
) *Ports {
	return &Ports{
		Chat:     chat,
		Registry: registry,
		Upload:   upload,
		Notifier: notifier,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Registry == nil {
		return ErrMissingRegistryService
	}
	if p.Upload == nil {
		return ErrMissingUploadService
	}
	if p.Notifier == nil {
		return ErrMissingNotifier
	}
	return nil
}
