package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/messages"
	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return NewPorts(
		&MockChatService{},
		&MockRegistryService{},
		&MockUploadService{},
		&MockNotificationCenter{},
	)
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewChat, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_MissingChat(t *testing.T) {
	ports := newTestPorts()
	ports.Chat = nil

	app, err := NewApp(ports)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingChatService)
}

func TestNewApp_MissingNotifier(t *testing.T) {
	ports := newTestPorts()
	ports.Notifier = nil

	app, err := NewApp(ports)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingNotifier)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)

	result := app.WithContext(context.Background())

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_CheckService(t *testing.T) {
	ports := newTestPorts()
	ports.Status = &MockStatusService{
		CheckFunc: func(ctx context.Context) (*domain.ServiceStatus, error) {
			return &domain.ServiceStatus{Status: "healthy", Version: "1.2.0"}, nil
		},
	}
	app, err := NewApp(ports)
	require.NoError(t, err)

	msg := app.checkService()()

	checked, ok := msg.(messages.StatusChecked)
	require.True(t, ok)
	require.NotNil(t, checked.Status)
	assert.Equal(t, "1.2.0", checked.Status.Version)
	assert.NoError(t, checked.Err)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_Tab_SwitchesToDocuments(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyTab})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDocuments, changed.View)
}

func TestApp_Update_ViewChanged_ToDocuments(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewDocuments})

	assert.Equal(t, messages.ViewDocuments, app.CurrentView())

	// Switching reloads the document list
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.DocumentsRefreshed)
	assert.True(t, ok)
}

func TestApp_Update_ViewChanged_ToChat(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewDocuments

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewChat})

	assert.Equal(t, messages.ViewChat, app.CurrentView())
	assert.Nil(t, cmd)
}

func TestApp_Update_Tab_TogglesBack(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewDocuments

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyTab})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewChat, changed.View)
}

func TestApp_Update_KeyForwardedToChat(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	assert.Equal(t, "hi", app.Question())
}

func TestApp_Update_KeyForwardedToDocuments(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewDocuments

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})

	assert.Contains(t, app.View(), "Upload a PDF")
}

func TestApp_Update_AnswerReceived_WhileDocumentsActive(t *testing.T) {
	ports := newTestPorts()
	ports.Chat = &MockChatService{
		TranscriptFunc: func() []domain.ChatMessage {
			return []domain.ChatMessage{
				{Sender: domain.SenderUser, Body: "What does the contract say?"},
				{Sender: domain.SenderAssistant, Body: "It covers twelve months."},
			}
		},
	}
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	app.currentView = messages.ViewDocuments

	app.Update(messages.AnswerReceived{Question: "What does the contract say?", Accepted: true})

	assert.Len(t, app.Transcript(), 2)
}

func TestApp_Update_DocumentsRefreshed_WhileChatActive(t *testing.T) {
	ports := newTestPorts()
	ports.Registry = &MockRegistryService{
		RecordsFunc: func() []domain.DocumentRecord {
			return []domain.DocumentRecord{
				{Name: "report.pdf", Size: 1024},
				{Name: "notes.pdf", Size: 2048},
			}
		},
	}
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	app.Update(messages.DocumentsRefreshed{})

	assert.Len(t, app.Records(), 2)
}

func TestApp_Update_StatusChecked_Unhealthy(t *testing.T) {
	notifier := &MockNotificationCenter{}
	ports := newTestPorts()
	ports.Notifier = notifier
	app, err := NewApp(ports)
	require.NoError(t, err)

	app.Update(messages.StatusChecked{Status: &domain.ServiceStatus{Status: "degraded"}})

	require.Len(t, notifier.Notifications, 1)
	assert.Equal(t, domain.NotificationWarning, notifier.Notifications[0].Kind)
	assert.Contains(t, notifier.Notifications[0].Message, "degraded")
}

func TestApp_Update_StatusChecked_Error(t *testing.T) {
	notifier := &MockNotificationCenter{}
	ports := newTestPorts()
	ports.Notifier = notifier
	app, err := NewApp(ports)
	require.NoError(t, err)

	app.Update(messages.StatusChecked{Err: errors.New("connection refused")})

	require.Len(t, notifier.Notifications, 1)
	assert.Equal(t, domain.NotificationWarning, notifier.Notifications[0].Kind)
}

func TestApp_Update_StatusChecked_Healthy(t *testing.T) {
	notifier := &MockNotificationCenter{}
	ports := newTestPorts()
	ports.Notifier = notifier
	app, err := NewApp(ports)
	require.NoError(t, err)

	app.Update(messages.StatusChecked{Status: &domain.ServiceStatus{Status: "healthy"}})

	assert.Empty(t, notifier.Notifications)
}

func TestApp_Update_ToastTick(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ToastTick{})

	assert.NotNil(t, cmd)
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ErrorOccurred{Err: errors.New("something broke")})

	assert.Error(t, app.Err())
}

func TestApp_Update_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Chat(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, app.View(), "askpdf")
}

func TestApp_View_Documents(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewDocuments

	assert.Contains(t, app.View(), "Documents (0)")
}

func TestApp_View_ShowsToasts(t *testing.T) {
	notifier := &MockNotificationCenter{}
	ports := newTestPorts()
	ports.Notifier = notifier
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	notifier.Success("Uploaded report.pdf")

	assert.Contains(t, app.View(), "✓ Uploaded report.pdf")
}
