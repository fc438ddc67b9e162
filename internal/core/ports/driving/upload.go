package driving

import (
	"context"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// UploadService stages local files and sends them to the remote
// service one at a time.
type UploadService interface {
	// Select filters candidate paths down to the supported document
	// format. The accepted subset replaces the pending batch and is
	// returned. Dropping at least one candidate emits a single
	// warning notification. No network traffic.
	Select(paths []string) []string

	// Pending returns a snapshot of the staged batch.
	Pending() []string

	// Upload sends the pending batch sequentially. Per-file outcomes
	// are reported through notifications; the returned BatchResult
	// carries the tallies. An empty batch returns
	// domain.ErrNoPendingFiles without touching the network. The
	// batch is cleared and the registry refreshed afterwards either
	// way.
	Upload(ctx context.Context) (domain.BatchResult, error)
}
