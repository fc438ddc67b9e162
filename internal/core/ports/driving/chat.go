package driving

import (
	"context"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// ChatService runs the question/answer session against the uploaded
// documents. One question is in flight at a time; there is no queueing.
type ChatService interface {
	// Ask submits a question. It returns false without any effect
	// when the question is blank after trimming, no documents are
	// loaded, or an answer is already pending. Otherwise the user
	// message is appended, the service is queried, and the assistant's
	// answer (or a failure stand-in) is appended before Ask returns
	// true.
	Ask(ctx context.Context, question string) bool

	// Transcript returns a snapshot of the session's messages in
	// append order.
	Transcript() []domain.ChatMessage

	// Awaiting returns true while an answer is pending.
	Awaiting() bool

	// Reset clears the transcript. No-op while an answer is pending.
	Reset()
}
