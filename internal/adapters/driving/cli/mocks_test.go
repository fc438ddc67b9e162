package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// setupTestServices installs mock services and returns a cleanup that
// restores whatever was wired before.
func setupTestServices() func() {
	oldNotifier := notifier
	oldRegistry := registryService
	oldUpload := uploadService
	oldChat := chatService
	oldSettings := settingsService
	oldStatus := statusService

	notifier = NewEchoNotifier(&stubCenter{})
	registryService = &mockRegistry{}
	uploadService = &mockUpload{}
	chatService = &mockChat{}
	settingsService = &mockSettings{
		settings: domain.DefaultSettings(),
		path:     "/home/test/.askpdf/config.toml",
	}
	statusService = &mockStatus{}

	return func() {
		notifier = oldNotifier
		registryService = oldRegistry
		uploadService = oldUpload
		chatService = oldChat
		settingsService = oldSettings
		statusService = oldStatus
	}
}

func intPtr(v int) *int {
	return &v
}

// stubCenter implements driving.NotificationCenter and records every
// emission.
type stubCenter struct {
	mu    sync.Mutex
	notes []domain.Notification
}

func (c *stubCenter) Notify(message string, kind domain.NotificationKind) domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := domain.Notification{
		ID:        fmt.Sprintf("note-%d", len(c.notes)+1),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	c.notes = append(c.notes, n)
	return n
}

func (c *stubCenter) Success(message string) domain.Notification {
	return c.Notify(message, domain.NotificationSuccess)
}

func (c *stubCenter) Error(message string) domain.Notification {
	return c.Notify(message, domain.NotificationError)
}

func (c *stubCenter) Warning(message string) domain.Notification {
	return c.Notify(message, domain.NotificationWarning)
}

func (c *stubCenter) Info(message string) domain.Notification {
	return c.Notify(message, domain.NotificationInfo)
}

func (c *stubCenter) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.notes {
		if n.ID == id {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			return
		}
	}
}

func (c *stubCenter) Active() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.notes))
	copy(out, c.notes)
	return out
}

// mockRegistry implements driving.RegistryService with injectable
// behaviour. Unset functions fall back to a two-document mirror.
type mockRegistry struct {
	mu      sync.Mutex
	removed []string

	RefreshFunc func(ctx context.Context) error
	RemoveFunc  func(ctx context.Context, name string) error
	RecordsFunc func() []domain.DocumentRecord
	HasAnyFunc  func() bool
}

func (m *mockRegistry) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

func (m *mockRegistry) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	m.removed = append(m.removed, name)
	m.mu.Unlock()
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, name)
	}
	return nil
}

func (m *mockRegistry) Records() []domain.DocumentRecord {
	if m.RecordsFunc != nil {
		return m.RecordsFunc()
	}
	return []domain.DocumentRecord{
		{Name: "report.pdf", Size: 1258291, TimeRemaining: intPtr(12)},
		{Name: "notes.pdf", Size: 524288, TimeRemaining: intPtr(25)},
	}
}

func (m *mockRegistry) HasAny() bool {
	if m.HasAnyFunc != nil {
		return m.HasAnyFunc()
	}
	return len(m.Records()) > 0
}

func (m *mockRegistry) Loading() bool {
	return false
}

func (m *mockRegistry) removedNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.removed))
	copy(out, m.removed)
	return out
}

// mockUpload implements driving.UploadService. The default behaviour
// stages supported files and reports them all uploaded.
type mockUpload struct {
	mu      sync.Mutex
	pending []string

	SelectFunc func(paths []string) []string
	UploadFunc func(ctx context.Context) (domain.BatchResult, error)
}

func (m *mockUpload) Select(paths []string) []string {
	if m.SelectFunc != nil {
		return m.SelectFunc(paths)
	}
	accepted := make([]string, 0, len(paths))
	for _, p := range paths {
		if domain.IsSupportedFile(p) {
			accepted = append(accepted, p)
		}
	}
	m.mu.Lock()
	m.pending = accepted
	m.mu.Unlock()
	return accepted
}

func (m *mockUpload) Pending() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.pending))
	copy(out, m.pending)
	return out
}

func (m *mockUpload) Upload(ctx context.Context) (domain.BatchResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx)
	}
	m.mu.Lock()
	n := len(m.pending)
	m.pending = nil
	m.mu.Unlock()
	if n == 0 {
		return domain.BatchResult{}, domain.ErrNoPendingFiles
	}
	return domain.BatchResult{Uploaded: n}, nil
}

// mockChat implements driving.ChatService. The default behaviour
// answers every question with a fixed cited answer.
type mockChat struct {
	mu         sync.Mutex
	questions  []string
	transcript []domain.ChatMessage

	AskFunc        func(ctx context.Context, question string) bool
	TranscriptFunc func() []domain.ChatMessage
}

func (m *mockChat) Ask(ctx context.Context, question string) bool {
	m.mu.Lock()
	m.questions = append(m.questions, question)
	m.mu.Unlock()
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcript = append(m.transcript,
		domain.ChatMessage{ID: "q-1", Sender: domain.SenderUser, Body: question},
		domain.ChatMessage{
			ID:     "a-1",
			Sender: domain.SenderAssistant,
			Body:   "The refund policy lasts 30 days.",
			Citations: []domain.Citation{
				{Source: "policy.pdf", Page: 3, Excerpt: "Refunds are accepted within 30 days of purchase."},
			},
		},
	)
	return true
}

func (m *mockChat) Transcript() []domain.ChatMessage {
	if m.TranscriptFunc != nil {
		return m.TranscriptFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ChatMessage, len(m.transcript))
	copy(out, m.transcript)
	return out
}

func (m *mockChat) Awaiting() bool {
	return false
}

func (m *mockChat) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcript = nil
}

func (m *mockChat) askedQuestions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.questions))
	copy(out, m.questions)
	return out
}

// mockSettings implements driving.SettingsService over an in-memory
// settings value.
type mockSettings struct {
	mu       sync.Mutex
	settings domain.AppSettings
	saved    []domain.AppSettings
	path     string

	GetFunc  func() (*domain.AppSettings, error)
	SaveFunc func(settings *domain.AppSettings) error
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	settings := m.settings
	return &settings, nil
}

func (m *mockSettings) Save(settings *domain.AppSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = *settings
	m.saved = append(m.saved, *settings)
	return nil
}

func (m *mockSettings) SetBaseURL(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.API.BaseURL = url
	return nil
}

func (m *mockSettings) SetTimeout(timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.API.Timeout = timeout
	return nil
}

func (m *mockSettings) GetDefaults() domain.AppSettings {
	return domain.DefaultSettings()
}

func (m *mockSettings) Validate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.Validate()
}

func (m *mockSettings) Path() string {
	return m.path
}

func (m *mockSettings) lastSaved() (domain.AppSettings, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saved) == 0 {
		return domain.AppSettings{}, false
	}
	return m.saved[len(m.saved)-1], true
}

// mockStatus implements driving.StatusService.
type mockStatus struct {
	CheckFunc   func(ctx context.Context) (*domain.ServiceStatus, error)
	CleanupFunc func(ctx context.Context) (*domain.CleanupStatus, error)
}

func (m *mockStatus) Check(ctx context.Context) (*domain.ServiceStatus, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	return &domain.ServiceStatus{
		Status:  "healthy",
		Message: "PDF Q&A API is running",
		Version: "1.0.0",
	}, nil
}

func (m *mockStatus) Cleanup(ctx context.Context) (*domain.CleanupStatus, error) {
	if m.CleanupFunc != nil {
		return m.CleanupFunc(ctx)
	}
	return &domain.CleanupStatus{
		IntervalMinutes: 30,
		TotalFiles:      1,
		Files: []domain.CleanupEntry{
			{Name: "report.pdf", UploadedAt: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC), MinutesRemaining: 12},
		},
	}, nil
}
