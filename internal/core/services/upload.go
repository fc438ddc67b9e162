package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure UploadService implements the interface.
var _ driving.UploadService = (*UploadService)(nil)

// User-facing upload messages.
const (
	msgUnsupportedFiles = "Only PDF files are allowed"
	msgNoPendingFiles   = "No files selected for upload"
)

// UploadService stages local files and sends them to the remote service
// one at a time. Sequential uploads keep per-file notifications in
// batch order; the rate limiter spaces requests so a large batch cannot
// hammer the service.
type UploadService struct {
	remote   driven.RemoteStore
	notifier driving.Notifier
	registry driving.RegistryRefresher
	limiter  *rate.Limiter

	mu      sync.Mutex
	pending []string
}

// NewUploadService creates an upload service. A non-positive
// requestsPerSecond falls back to the default rate.
func NewUploadService(
	remote driven.RemoteStore,
	notifier driving.Notifier,
	registry driving.RegistryRefresher,
	requestsPerSecond float64,
) *UploadService {
	if requestsPerSecond <= 0 {
		requestsPerSecond = domain.DefaultUploadRate
	}
	return &UploadService{
		remote:   remote,
		notifier: notifier,
		registry: registry,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Select filters candidate paths down to the supported document format.
// The accepted subset replaces the pending batch and is returned. Iff at
// least one candidate was dropped, a single warning notification is
// emitted. No network traffic.
func (s *UploadService) Select(paths []string) []string {
	accepted := make([]string, 0, len(paths))
	for _, p := range paths {
		if domain.IsSupportedFile(p) {
			accepted = append(accepted, p)
		}
	}

	if len(accepted) < len(paths) && s.notifier != nil {
		s.notifier.Warning(msgUnsupportedFiles)
	}

	s.mu.Lock()
	s.pending = make([]string, len(accepted))
	copy(s.pending, accepted)
	s.mu.Unlock()

	return accepted
}

// Pending returns a snapshot of the staged batch.
func (s *UploadService) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.pending))
	copy(out, s.pending)
	return out
}

// Upload sends the pending batch to the service, strictly one file at a
// time. A failed file never aborts the batch: its error is reported and
// the loop moves on. After the last file the batch is cleared and the
// registry refreshed regardless of how many files made it. A summary
// notification is emitted iff at least one upload succeeded.
func (s *UploadService) Upload(ctx context.Context) (domain.BatchResult, error) {
	if s.remote == nil {
		return domain.BatchResult{}, domain.ErrNotImplemented
	}

	s.mu.Lock()
	batch := make([]string, len(s.pending))
	copy(batch, s.pending)
	s.mu.Unlock()

	if len(batch) == 0 {
		if s.notifier != nil {
			s.notifier.Error(msgNoPendingFiles)
		}
		return domain.BatchResult{}, domain.ErrNoPendingFiles
	}

	var result domain.BatchResult
	for _, path := range batch {
		name := filepath.Base(path)

		if err := s.limiter.Wait(ctx); err != nil {
			result.Failed++
			s.notifyFailure(name, err)
			continue
		}

		receipt, err := s.uploadOne(ctx, path)
		if err != nil {
			result.Failed++
			s.notifyFailure(name, err)
			continue
		}

		result.Uploaded++
		s.notifySuccess(name, receipt)
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	if s.registry != nil {
		if err := s.registry.Refresh(ctx); err != nil && s.notifier != nil {
			s.notifier.Error(fmt.Sprintf("Could not refresh file list: %s", domain.FailureReason(err)))
		}
	}

	if result.Uploaded > 0 && s.notifier != nil {
		s.notifier.Success(fmt.Sprintf("Successfully uploaded %d file(s)", result.Uploaded))
	}

	return result, nil
}

// uploadOne opens the file and streams it to the service.
func (s *UploadService) uploadOne(ctx context.Context, path string) (*domain.UploadReceipt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.remote.Upload(ctx, filepath.Base(path), f)
}

func (s *UploadService) notifySuccess(name string, receipt *domain.UploadReceipt) {
	if s.notifier == nil {
		return
	}
	stored := name
	if receipt != nil && receipt.FileName != "" {
		stored = receipt.FileName
	}
	if receipt != nil && receipt.AutoDeleteIn > 0 {
		s.notifier.Success(fmt.Sprintf("Uploaded %s. Auto-deletes in %d minutes.", stored, receipt.AutoDeleteIn))
		return
	}
	s.notifier.Success(fmt.Sprintf("Uploaded %s.", stored))
}

func (s *UploadService) notifyFailure(name string, err error) {
	if s.notifier == nil {
		return
	}
	s.notifier.Error(fmt.Sprintf("Upload failed for %s: %s", name, domain.FailureReason(err)))
}
