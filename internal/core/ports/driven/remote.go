package driven

import (
	"context"
	"io"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// RemoteStore is the question-answering service the client talks to.
// The service holds the uploaded documents, answers questions about
// them, and deletes uploads once their retention window elapses.
//
// All methods surface failures through the domain error taxonomy:
// *domain.TransportError when the service cannot be reached and
// *domain.RemoteError when the service answers with a failure.
type RemoteStore interface {
	// Upload sends one document to the service. The reader supplies
	// the file bytes; filename is the name the service stores it under.
	Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadReceipt, error)

	// ListFiles returns the authoritative list of stored documents.
	ListFiles(ctx context.Context) ([]domain.DocumentRecord, error)

	// Delete removes one stored document by name.
	Delete(ctx context.Context, name string) error

	// Ask submits a question about the stored documents and returns
	// the generated answer with its source citations.
	Ask(ctx context.Context, question string) (*domain.Answer, error)

	// Health probes the service's health endpoint.
	Health(ctx context.Context) (*domain.ServiceStatus, error)

	// CleanupStatus reports the service's automatic deletion schedule.
	CleanupStatus(ctx context.Context) (*domain.CleanupStatus, error)

	// Close releases any held connections.
	Close() error
}
