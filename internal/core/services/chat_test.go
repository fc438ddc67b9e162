package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

func TestNewChatService(t *testing.T) {
	svc := NewChatService(&mockRemote{}, &recordingNotifier{}, &stubGate{hasAny: true})
	require.NotNil(t, svc)
	assert.Empty(t, svc.Transcript())
	assert.False(t, svc.Awaiting())
}

func TestChatService_Ask_Success(t *testing.T) {
	remote := &mockRemote{
		AskFunc: func(_ context.Context, question string) (*domain.Answer, error) {
			return &domain.Answer{
				Text: "The report covers Q3 revenue.",
				Citations: []domain.Citation{
					{Source: "report.pdf", Page: 4, Excerpt: "revenue grew 12%"},
				},
			}, nil
		},
	}
	notifier := &recordingNotifier{}
	svc := NewChatService(remote, notifier, &stubGate{hasAny: true})

	ok := svc.Ask(context.Background(), "What does the report cover?")
	require.True(t, ok)
	assert.False(t, svc.Awaiting())

	transcript := svc.Transcript()
	require.Len(t, transcript, 2)

	assert.Equal(t, domain.SenderUser, transcript[0].Sender)
	assert.Equal(t, "What does the report cover?", transcript[0].Body)
	assert.Empty(t, transcript[0].Citations)
	assert.NotEmpty(t, transcript[0].ID)

	assert.Equal(t, domain.SenderAssistant, transcript[1].Sender)
	assert.Equal(t, "The report covers Q3 revenue.", transcript[1].Body)
	assert.False(t, transcript[1].Failed)
	require.Len(t, transcript[1].Citations, 1)
	assert.Equal(t, "report.pdf", transcript[1].Citations[0].Source)
	assert.Equal(t, 4, transcript[1].Citations[0].Page)

	assert.NotEqual(t, transcript[0].ID, transcript[1].ID)
	assert.Empty(t, notifier.all())
}

func TestChatService_Ask_NoDocuments_NoOp(t *testing.T) {
	remote := &mockRemote{}
	notifier := &recordingNotifier{}
	svc := NewChatService(remote, notifier, &stubGate{hasAny: false})

	ok := svc.Ask(context.Background(), "Anyone there?")

	assert.False(t, ok)
	assert.Empty(t, svc.Transcript())
	assert.Empty(t, remote.callLog())
	assert.Empty(t, notifier.all())
	assert.False(t, svc.Awaiting())
}

func TestChatService_Ask_BlankQuestion_NoOp(t *testing.T) {
	remote := &mockRemote{}
	svc := NewChatService(remote, &recordingNotifier{}, &stubGate{hasAny: true})

	for _, q := range []string{"", "   ", "\t\n  "} {
		ok := svc.Ask(context.Background(), q)
		assert.False(t, ok, "question %q should be rejected", q)
	}

	assert.Empty(t, svc.Transcript())
	assert.Empty(t, remote.callLog())
}

func TestChatService_Ask_TrimsQuestion(t *testing.T) {
	var sent string
	remote := &mockRemote{
		AskFunc: func(_ context.Context, question string) (*domain.Answer, error) {
			sent = question
			return &domain.Answer{Text: "ok"}, nil
		},
	}
	svc := NewChatService(remote, &recordingNotifier{}, &stubGate{hasAny: true})

	require.True(t, svc.Ask(context.Background(), "  What about margins?  "))

	assert.Equal(t, "What about margins?", sent)
	assert.Equal(t, "What about margins?", svc.Transcript()[0].Body)
}

func TestChatService_Ask_Failure(t *testing.T) {
	remote := &mockRemote{
		AskFunc: func(_ context.Context, _ string) (*domain.Answer, error) {
			return nil, &domain.RemoteError{Op: "ask", StatusCode: 503, Reason: "model overloaded"}
		},
	}
	notifier := &recordingNotifier{}
	gate := &stubGate{hasAny: true}
	svc := NewChatService(remote, notifier, gate)

	ok := svc.Ask(context.Background(), "Summarise the report")
	require.True(t, ok, "a failed question still counts as handled")

	transcript := svc.Transcript()
	require.Len(t, transcript, 2)

	assert.Equal(t, domain.SenderUser, transcript[0].Sender)

	failure := transcript[1]
	assert.Equal(t, domain.SenderAssistant, failure.Sender)
	assert.True(t, failure.Failed)
	assert.Contains(t, failure.Body, "model overloaded")
	assert.Empty(t, failure.Citations)

	errNotes := notifier.byKind(domain.NotificationError)
	require.Len(t, errNotes, 1)
	assert.Contains(t, errNotes[0].Message, "model overloaded")

	// Back to idle: the next question goes straight through.
	remote.AskFunc = func(_ context.Context, _ string) (*domain.Answer, error) {
		return &domain.Answer{Text: "recovered"}, nil
	}
	require.True(t, svc.Ask(context.Background(), "Try again?"))
	assert.Len(t, svc.Transcript(), 4)
}

func TestChatService_Ask_WhileAwaiting_NoOp(t *testing.T) {
	release := make(chan struct{})
	remote := &mockRemote{
		AskFunc: func(_ context.Context, _ string) (*domain.Answer, error) {
			<-release
			return &domain.Answer{Text: "slow answer"}, nil
		},
	}
	svc := NewChatService(remote, &recordingNotifier{}, &stubGate{hasAny: true})

	done := make(chan bool, 1)
	go func() { done <- svc.Ask(context.Background(), "first") }()

	require.Eventually(t, svc.Awaiting, time.Second, time.Millisecond)

	// A second question while the first is pending is dropped outright.
	assert.False(t, svc.Ask(context.Background(), "second"))
	assert.Len(t, svc.Transcript(), 1)

	close(release)
	assert.True(t, <-done)

	transcript := svc.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "first", transcript[0].Body)
	assert.Equal(t, "slow answer", transcript[1].Body)
	assert.False(t, svc.Awaiting())
}

func TestChatService_Transcript_ReturnsCopy(t *testing.T) {
	svc := NewChatService(&mockRemote{}, &recordingNotifier{}, &stubGate{hasAny: true})
	require.True(t, svc.Ask(context.Background(), "q"))

	transcript := svc.Transcript()
	transcript[0].Body = "mutated"

	assert.Equal(t, "q", svc.Transcript()[0].Body)
}

func TestChatService_Reset(t *testing.T) {
	svc := NewChatService(&mockRemote{}, &recordingNotifier{}, &stubGate{hasAny: true})
	require.True(t, svc.Ask(context.Background(), "q"))
	require.Len(t, svc.Transcript(), 2)

	svc.Reset()
	assert.Empty(t, svc.Transcript())
}

func TestChatService_Reset_WhileAwaiting_NoOp(t *testing.T) {
	release := make(chan struct{})
	remote := &mockRemote{
		AskFunc: func(_ context.Context, _ string) (*domain.Answer, error) {
			<-release
			return &domain.Answer{Text: "late"}, nil
		},
	}
	svc := NewChatService(remote, &recordingNotifier{}, &stubGate{hasAny: true})

	done := make(chan bool, 1)
	go func() { done <- svc.Ask(context.Background(), "pending") }()
	require.Eventually(t, svc.Awaiting, time.Second, time.Millisecond)

	svc.Reset()
	assert.NotEmpty(t, svc.Transcript(), "reset must not clear a session mid-question")

	close(release)
	require.True(t, <-done)
	assert.Len(t, svc.Transcript(), 2)
}

func TestChatService_Ask_NilRemote(t *testing.T) {
	svc := NewChatService(nil, &recordingNotifier{}, &stubGate{hasAny: true})
	assert.False(t, svc.Ask(context.Background(), "q"))
}

func TestChatService_GateCheckedPerAsk(t *testing.T) {
	remote := &mockRemote{}
	gate := &stubGate{hasAny: true}
	svc := NewChatService(remote, &recordingNotifier{}, gate)

	require.True(t, svc.Ask(context.Background(), "while loaded"))

	// Documents disappeared (e.g. all expired server-side): asking
	// becomes a no-op again.
	gate.set(false)
	assert.False(t, svc.Ask(context.Background(), "after expiry"))
	assert.Len(t, svc.Transcript(), 2)
}
