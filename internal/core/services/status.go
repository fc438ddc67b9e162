package services

import (
	"context"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure StatusService implements the interface.
var _ driving.StatusService = (*StatusService)(nil)

// StatusService reports the remote service's health and its automatic
// file cleanup schedule.
type StatusService struct {
	remote driven.RemoteStore
}

// NewStatusService creates a status service.
func NewStatusService(remote driven.RemoteStore) *StatusService {
	return &StatusService{remote: remote}
}

// Check probes the service's health endpoint.
func (s *StatusService) Check(ctx context.Context) (*domain.ServiceStatus, error) {
	if s.remote == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.remote.Health(ctx)
}

// Cleanup reports the service's automatic deletion schedule.
func (s *StatusService) Cleanup(ctx context.Context) (*domain.CleanupStatus, error) {
	if s.remote == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.remote.CleanupStatus(ctx)
}
