package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// failedAnswerPrefix opens the assistant message that stands in for an
// answer the service could not produce.
const failedAnswerPrefix = "Sorry, I couldn't answer that: "

// ChatService runs the question/answer session against the uploaded
// documents. The session is a two-state machine: idle, or awaiting one
// answer. Questions arriving while an answer is pending are ignored
// rather than queued.
type ChatService struct {
	remote   driven.RemoteStore
	notifier driving.Notifier
	gate     driving.DocumentGate

	mu       sync.Mutex
	messages []domain.ChatMessage
	awaiting bool
}

// NewChatService creates a chat service. The gate decides whether
// questions are accepted at all; with no documents loaded there is
// nothing to ask about.
func NewChatService(
	remote driven.RemoteStore,
	notifier driving.Notifier,
	gate driving.DocumentGate,
) *ChatService {
	return &ChatService{
		remote:   remote,
		notifier: notifier,
		gate:     gate,
	}
}

// Ask submits a question. It returns false without any effect when the
// trimmed question is empty, no documents are loaded, or an answer is
// already pending. Otherwise the user message is appended, the service
// queried, and the assistant's answer (or a failure stand-in) appended
// before Ask returns true. The session is back to idle on return.
func (s *ChatService) Ask(ctx context.Context, question string) bool {
	question = strings.TrimSpace(question)
	if s.remote == nil {
		return false
	}

	s.mu.Lock()
	if question == "" || s.awaiting || s.gate == nil || !s.gate.HasAny() {
		s.mu.Unlock()
		return false
	}
	s.awaiting = true
	s.messages = append(s.messages, domain.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    domain.SenderUser,
		Body:      question,
		CreatedAt: time.Now(),
	})
	s.mu.Unlock()

	answer, err := s.remote.Ask(ctx, question)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting = false

	if err != nil {
		reason := domain.FailureReason(err)
		s.messages = append(s.messages, domain.ChatMessage{
			ID:        uuid.New().String(),
			Sender:    domain.SenderAssistant,
			Body:      failedAnswerPrefix + reason,
			Failed:    true,
			CreatedAt: time.Now(),
		})
		if s.notifier != nil {
			s.notifier.Error(fmt.Sprintf("Question failed: %s", reason))
		}
		return true
	}

	s.messages = append(s.messages, domain.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    domain.SenderAssistant,
		Body:      answer.Text,
		Citations: answer.Citations,
		CreatedAt: time.Now(),
	})
	return true
}

// Transcript returns a snapshot of the session's messages in append
// order.
func (s *ChatService) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Awaiting returns true while an answer is pending.
func (s *ChatService) Awaiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Reset clears the transcript. No-op while an answer is pending.
func (s *ChatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.awaiting {
		return
	}
	s.messages = nil
}
