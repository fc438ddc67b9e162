package memory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
)

// Ensure RemoteStore implements the interface.
var _ driven.RemoteStore = (*RemoteStore)(nil)

// DefaultRetentionMinutes is the retention window the in-memory service
// reports for uploads.
const DefaultRetentionMinutes = 30

// RemoteStore is an in-memory implementation of driven.RemoteStore.
// It backs tests and demo mode: uploads land in a map, questions get a
// canned answer citing the stored files, and the same validation rules
// apply as on the real service.
type RemoteStore struct {
	mu        sync.RWMutex
	files     map[string]storedFile
	order     []string
	retention int
}

type storedFile struct {
	size       int64
	uploadedAt time.Time
}

// NewRemoteStore creates a new in-memory remote store.
func NewRemoteStore() *RemoteStore {
	return &RemoteStore{
		files:     make(map[string]storedFile),
		retention: DefaultRetentionMinutes,
	}
}

// Upload stores a document. Non-PDF names are rejected the way the real
// service rejects them.
func (s *RemoteStore) Upload(_ context.Context, filename string, r io.Reader) (*domain.UploadReceipt, error) {
	if !domain.IsSupportedFile(filename) {
		return nil, &domain.RemoteError{
			Op:         "upload",
			StatusCode: http.StatusBadRequest,
			Reason:     "Invalid file format. Please upload a .pdf file.",
		}
	}

	size, err := io.Copy(io.Discard, r)
	if err != nil {
		return nil, &domain.TransportError{Op: "upload", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.files[filename]; !exists {
		s.order = append(s.order, filename)
	}
	s.files[filename] = storedFile{size: size, uploadedAt: time.Now()}

	return &domain.UploadReceipt{
		Message:      "File uploaded successfully",
		FileName:     filename,
		Size:         size,
		AutoDeleteIn: s.retention,
	}, nil
}

// ListFiles returns the stored documents in upload order.
func (s *RemoteStore) ListFiles(_ context.Context) ([]domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.DocumentRecord, 0, len(s.order))
	for _, name := range s.order {
		f := s.files[name]
		remaining := s.minutesRemaining(f)
		uploadedAt := f.uploadedAt
		records = append(records, domain.DocumentRecord{
			Name:          name,
			Size:          f.size,
			TimeRemaining: &remaining,
			UploadedAt:    &uploadedAt,
		})
	}
	return records, nil
}

// Delete removes a stored document by name.
func (s *RemoteStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[name]; !ok {
		return &domain.RemoteError{
			Op:         "delete",
			StatusCode: http.StatusNotFound,
			Reason:     "File not found",
		}
	}

	delete(s.files, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ask returns a canned answer citing the stored documents.
func (s *RemoteStore) Ask(_ context.Context, question string) (*domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, &domain.RemoteError{
			Op:         "ask",
			StatusCode: http.StatusBadRequest,
			Reason:     "No documents have been uploaded yet",
		}
	}

	first := s.order[0]
	return &domain.Answer{
		Text: fmt.Sprintf("This is a demo answer to %q based on %d stored document(s).", question, len(s.order)),
		Citations: []domain.Citation{
			{Source: first, Page: 1, Excerpt: "Demo excerpt from the first stored document."},
		},
	}, nil
}

// Health reports the demo service as healthy.
func (s *RemoteStore) Health(_ context.Context) (*domain.ServiceStatus, error) {
	return &domain.ServiceStatus{
		Status:  "healthy",
		Message: "In-memory demo service",
		Version: "demo",
	}, nil
}

// CleanupStatus reports the deletion schedule for the stored documents.
func (s *RemoteStore) CleanupStatus(_ context.Context) (*domain.CleanupStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := &domain.CleanupStatus{
		IntervalMinutes: s.retention,
		TotalFiles:      len(s.order),
	}
	for _, name := range s.order {
		f := s.files[name]
		status.Files = append(status.Files, domain.CleanupEntry{
			Name:             name,
			UploadedAt:       f.uploadedAt,
			MinutesRemaining: s.minutesRemaining(f),
		})
	}
	return status, nil
}

// Close is a no-op for the in-memory store.
func (s *RemoteStore) Close() error {
	return nil
}

// SetRetention overrides the reported retention window.
func (s *RemoteStore) SetRetention(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retention = minutes
}

func (s *RemoteStore) minutesRemaining(f storedFile) int {
	elapsed := int(time.Since(f.uploadedAt).Minutes())
	remaining := s.retention - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
