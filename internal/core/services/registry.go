package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure RegistryService implements the interfaces.
var (
	_ driving.RegistryService   = (*RegistryService)(nil)
	_ driving.DocumentGate      = (*RegistryService)(nil)
	_ driving.RegistryRefresher = (*RegistryService)(nil)
)

// RegistryService maintains the client-side mirror of the files held by
// the remote service. The service's list is authoritative: every refresh
// replaces the mirror wholesale, and deletions go to the service first.
//
// The registry deliberately holds no notification reference; callers
// decide how refresh and remove failures are surfaced.
type RegistryService struct {
	remote driven.RemoteStore

	mu      sync.RWMutex
	records []domain.DocumentRecord
	loading int
}

// NewRegistryService creates a registry service.
func NewRegistryService(remote driven.RemoteStore) *RegistryService {
	return &RegistryService{remote: remote}
}

// Refresh replaces the mirror with the service's current file list.
// Overlapping refreshes are permitted; whichever response lands last
// wins. On failure the previous mirror is kept.
func (s *RegistryService) Refresh(ctx context.Context) error {
	if s.remote == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	records, err := s.remote.ListFiles(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		return fmt.Errorf("refreshing file list: %w", err)
	}

	s.records = records
	return nil
}

// Remove deletes one file on the service, then refreshes the mirror.
// The mirror is never updated optimistically: a failed delete leaves it
// untouched, so a transient failure cannot hide a file that still
// exists remotely.
func (s *RegistryService) Remove(ctx context.Context, name string) error {
	if s.remote == nil {
		return domain.ErrNotImplemented
	}

	if err := s.remote.Delete(ctx, name); err != nil {
		return fmt.Errorf("removing %q: %w", name, err)
	}

	return s.Refresh(ctx)
}

// Records returns a snapshot of the mirrored file list.
func (s *RegistryService) Records() []domain.DocumentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DocumentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// HasAny returns true if at least one document is loaded. Pure read;
// never triggers a fetch.
func (s *RegistryService) HasAny() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records) > 0
}

// Loading returns true while any refresh is in flight.
func (s *RegistryService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}
