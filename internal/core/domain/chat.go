package domain

import "time"

// Sender identifies who produced a chat message.
type Sender string

// Available senders.
const (
	// SenderUser is the person asking questions.
	SenderUser Sender = "user"

	// SenderAssistant is the remote answering service.
	SenderAssistant Sender = "assistant"
)

// IsValid returns true if the sender is recognised.
func (s Sender) IsValid() bool {
	switch s {
	case SenderUser, SenderAssistant:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Sender) String() string {
	return string(s)
}

// Citation is one source reference attached to an answer. The remote
// service grounds every answer in the uploaded documents and reports
// where the supporting passages came from.
type Citation struct {
	// Source is the name of the document the passage came from.
	Source string

	// Page is the 1-based page number within the document.
	// Zero when the service could not attribute a page.
	Page int

	// Excerpt is a short extract of the supporting passage.
	Excerpt string
}

// ChatMessage is one entry in the question/answer transcript.
type ChatMessage struct {
	// ID uniquely identifies the message (UUID).
	ID string

	// Sender is who produced the message.
	Sender Sender

	// Body is the message text.
	Body string

	// Citations lists the sources behind an assistant answer.
	// Always empty for user messages.
	Citations []Citation

	// Failed marks an assistant message that stands in for an answer
	// the service could not produce.
	Failed bool

	// CreatedAt is when the message was appended to the transcript.
	CreatedAt time.Time
}

// HasCitations returns true if the message carries source references.
func (m ChatMessage) HasCitations() bool {
	return len(m.Citations) > 0
}

// Answer is the remote service's response to a question.
type Answer struct {
	// Text is the generated answer.
	Text string

	// Citations lists the passages the answer was grounded in.
	Citations []Citation
}
