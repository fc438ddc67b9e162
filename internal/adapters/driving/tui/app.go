package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/components/toast"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/keymap"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/messages"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/styles"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/views/chat"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/views/documents"
	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the shared key bindings.
	keymap *keymap.KeyMap

	// chatView is the question-and-answer view component.
	chatView *chat.View

	// documentsView is the uploaded documents view component.
	documentsView *documents.View

	// toasts renders active notifications above the current view.
	toasts *toast.Stack

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	chatView := chat.NewView(s, km, ports.Chat, ports.Registry)
	documentsView := documents.NewView(s, km, ports.Registry, ports.Upload)
	toasts := toast.NewStack(ports.Notifier, s)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		chatView:      chatView,
		documentsView: documentsView,
		toasts:        toasts,
		currentView:   messages.ViewChat, // Start with chat
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	a.documentsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("askpdf"),
		a.chatView.Init(),
		a.documentsView.Init(),
		a.toasts.Tick(),
	}

	if a.ports.Status != nil {
		cmds = append(cmds, a.checkService())
	}

	return tea.Batch(cmds...)
}

// checkService returns a command that probes the service health once.
func (a *App) checkService() tea.Cmd {
	return func() tea.Msg {
		status, err := a.ports.Status.Check(a.ctx)
		return messages.StatusChecked{Status: status, Err: err}
	}
}

// switchView returns a command that toggles between chat and documents.
func (a *App) switchView() tea.Cmd {
	next := messages.ViewDocuments
	if a.currentView == messages.ViewDocuments {
		next = messages.ViewChat
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: next}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.toasts.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global view toggle with tab
		if msg.String() == "tab" {
			return a, a.switchView()
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
		default:
			a.chatView, cmd = a.chatView.Update(msg)
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Reload the document list when switching to it
		if msg.View == messages.ViewDocuments {
			return a, a.documentsView.Init()
		}
		return a, nil

	case messages.AnswerReceived:
		// Always forward; the answer may arrive while another view is active
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.DocumentsRefreshed, messages.DocumentRemoved, messages.UploadCompleted:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.StatusChecked:
		if msg.Err != nil {
			a.ports.Notifier.Warning("Cannot reach the askpdf service")
			return a, nil
		}
		if msg.Status != nil && !msg.Status.Healthy() {
			a.ports.Notifier.Warning(fmt.Sprintf("Service reported status %q", msg.Status.Status))
		}
		return a, nil

	case messages.ToastTick:
		a.toasts, cmd = a.toasts.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
		default:
			a.chatView, cmd = a.chatView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	default:
		a.chatView, cmd = a.chatView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDocuments:
		body = a.documentsView.View()
	default:
		body = a.chatView.View()
	}

	if toasts := a.toasts.View(); toasts != "" {
		overlay := lipgloss.PlaceHorizontal(a.width, lipgloss.Right, toasts)
		return lipgloss.JoinVertical(lipgloss.Left, overlay, body)
	}

	return body
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Question returns the current question input.
func (a *App) Question() string {
	return a.chatView.Question()
}

// Transcript returns the conversation transcript.
func (a *App) Transcript() []domain.ChatMessage {
	return a.chatView.Transcript()
}

// Records returns the current document list.
func (a *App) Records() []domain.DocumentRecord {
	return a.documentsView.Records()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
	a.toasts.SetWidth(width)
}
