package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// mockRemote implements driven.RemoteStore with injectable behaviour.
// Unset functions fall back to benign defaults.
type mockRemote struct {
	mu    sync.Mutex
	calls []string

	UploadFunc        func(ctx context.Context, filename string, r io.Reader) (*domain.UploadReceipt, error)
	ListFilesFunc     func(ctx context.Context) ([]domain.DocumentRecord, error)
	DeleteFunc        func(ctx context.Context, name string) error
	AskFunc           func(ctx context.Context, question string) (*domain.Answer, error)
	HealthFunc        func(ctx context.Context) (*domain.ServiceStatus, error)
	CleanupStatusFunc func(ctx context.Context) (*domain.CleanupStatus, error)
}

func (m *mockRemote) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// callLog returns the recorded remote operations in invocation order.
func (m *mockRemote) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *mockRemote) countCalls(prefix string) int {
	count := 0
	for _, c := range m.callLog() {
		if strings.HasPrefix(c, prefix) {
			count++
		}
	}
	return count
}

func (m *mockRemote) Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadReceipt, error) {
	m.record("upload " + filename)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, r)
	}
	return &domain.UploadReceipt{
		Message:      "File uploaded successfully",
		FileName:     filename,
		AutoDeleteIn: 30,
	}, nil
}

func (m *mockRemote) ListFiles(ctx context.Context) ([]domain.DocumentRecord, error) {
	m.record("list-files")
	if m.ListFilesFunc != nil {
		return m.ListFilesFunc(ctx)
	}
	return nil, nil
}

func (m *mockRemote) Delete(ctx context.Context, name string) error {
	m.record("delete " + name)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, name)
	}
	return nil
}

func (m *mockRemote) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	m.record("ask " + question)
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	return &domain.Answer{Text: "mock answer"}, nil
}

func (m *mockRemote) Health(ctx context.Context) (*domain.ServiceStatus, error) {
	m.record("health")
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return &domain.ServiceStatus{Status: "healthy"}, nil
}

func (m *mockRemote) CleanupStatus(ctx context.Context) (*domain.CleanupStatus, error) {
	m.record("cleanup-status")
	if m.CleanupStatusFunc != nil {
		return m.CleanupStatusFunc(ctx)
	}
	return &domain.CleanupStatus{}, nil
}

func (m *mockRemote) Close() error {
	return nil
}

// recordingNotifier implements driving.Notifier and keeps every emitted
// notification in order.
type recordingNotifier struct {
	mu    sync.Mutex
	notes []domain.Notification
}

func (n *recordingNotifier) Notify(message string, kind domain.NotificationKind) domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	note := domain.Notification{
		ID:        fmt.Sprintf("note-%d", len(n.notes)+1),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	n.notes = append(n.notes, note)
	return note
}

func (n *recordingNotifier) Success(message string) domain.Notification {
	return n.Notify(message, domain.NotificationSuccess)
}

func (n *recordingNotifier) Error(message string) domain.Notification {
	return n.Notify(message, domain.NotificationError)
}

func (n *recordingNotifier) Warning(message string) domain.Notification {
	return n.Notify(message, domain.NotificationWarning)
}

func (n *recordingNotifier) Info(message string) domain.Notification {
	return n.Notify(message, domain.NotificationInfo)
}

// all returns the emitted notifications in order.
func (n *recordingNotifier) all() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.notes))
	copy(out, n.notes)
	return out
}

// byKind returns the emitted notifications of one kind, in order.
func (n *recordingNotifier) byKind(kind domain.NotificationKind) []domain.Notification {
	var out []domain.Notification
	for _, note := range n.all() {
		if note.Kind == kind {
			out = append(out, note)
		}
	}
	return out
}

// stubGate implements driving.DocumentGate.
type stubGate struct {
	mu     sync.Mutex
	hasAny bool
}

func (g *stubGate) HasAny() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasAny
}

func (g *stubGate) set(v bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hasAny = v
}

// stubRefresher implements driving.RegistryRefresher and counts calls.
type stubRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *stubRefresher) Refresh(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *stubRefresher) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
