package driving

import (
	"context"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// StatusService reports the remote service's health and its automatic
// file cleanup schedule.
type StatusService interface {
	// Check probes the service's health endpoint.
	Check(ctx context.Context) (*domain.ServiceStatus, error)

	// Cleanup reports the service's automatic deletion schedule.
	Cleanup(ctx context.Context) (*domain.CleanupStatus, error)
}
