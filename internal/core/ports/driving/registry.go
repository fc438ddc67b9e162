package driving

import (
	"context"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// DocumentGate reports whether the remote service currently holds any
// documents. It is the gating signal for operations that only make
// sense with documents present, such as asking a question.
type DocumentGate interface {
	// HasAny returns true if at least one document is loaded.
	// Pure read; never triggers network traffic.
	HasAny() bool
}

// RegistryRefresher triggers a re-fetch of the remote file list.
type RegistryRefresher interface {
	// Refresh replaces the local mirror with the service's list.
	Refresh(ctx context.Context) error
}

// RegistryService maintains the client-side mirror of the files held
// by the remote service.
type RegistryService interface {
	// Refresh replaces the local mirror with the service's list.
	// On failure the previous mirror is kept. Concurrent refreshes
	// are permitted; the last response to land wins.
	Refresh(ctx context.Context) error

	// Remove deletes one file on the service, then refreshes. The
	// mirror is never updated optimistically: a failed delete leaves
	// it untouched.
	Remove(ctx context.Context, name string) error

	// Records returns a snapshot of the mirrored file list.
	Records() []domain.DocumentRecord

	// HasAny returns true if at least one document is loaded.
	HasAny() bool

	// Loading returns true while any refresh is in flight.
	Loading() bool
}
