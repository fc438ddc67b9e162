// Package chat provides the question/answer conversation view for the TUI.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/components/input"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/components/status"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/keymap"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/messages"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/styles"
	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// View represents the chat view with the transcript, question input,
// and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	statusbar *status.Bar
	spin      spinner.Model

	chatService driving.ChatService
	gate        driving.DocumentGate
	ctx         context.Context

	transcript []domain.ChatMessage
	width      int
	height     int
	ready      bool
	err        error
	asking     bool
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	chatService driving.ChatService,
	gate driving.DocumentGate,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Subtitle

	bar := status.NewBar(s, km)
	bar.SetHints(km.ChatHelp())

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.New(s, "Ask: ", "Ask a question about your documents..."),
		statusbar:   bar,
		spin:        sp,
		chatService: chatService,
		gate:        gate,
		ctx:         context.Background(),
		width:       80,
		height:      24,
		ready:       false,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnswerReceived:
		v.handleAnswerReceived(msg)
		return v, nil

	case spinner.TickMsg:
		if !v.asking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component (cursor blink and friends)
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		question := strings.TrimSpace(v.input.Value())
		if question == "" || v.asking {
			return v, nil
		}
		v.asking = true
		v.err = nil
		v.statusbar.SetState(status.StateThinking)
		return v, tea.Batch(v.ask(question), v.spin.Tick)
	}

	if msg.Type == tea.KeyEsc {
		if v.input.Value() != "" {
			v.input.Reset()
			return v, nil
		}
		// Second Esc clears the conversation; a pending answer keeps it.
		if len(v.transcript) > 0 && !v.asking && v.chatService != nil {
			v.chatService.Reset()
			v.transcript = v.chatService.Transcript()
			v.statusbar.Clear()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// ask returns a command that submits the question and reports back.
func (v *View) ask(question string) tea.Cmd {
	return func() tea.Msg {
		if v.chatService == nil {
			return messages.ErrorOccurred{Err: ErrNoChatService}
		}

		accepted := v.chatService.Ask(v.ctx, question)
		return messages.AnswerReceived{Question: question, Accepted: accepted}
	}
}

// handleAnswerReceived refreshes the transcript after a question ran.
func (v *View) handleAnswerReceived(msg messages.AnswerReceived) {
	v.asking = false
	if v.chatService != nil {
		v.transcript = v.chatService.Transcript()
	}

	if msg.Accepted {
		v.input.Reset()
		v.statusbar.Clear()
		return
	}

	v.statusbar.SetState(status.StateError)
	if v.gate != nil && !v.gate.HasAny() {
		v.statusbar.SetMessage("Upload a document before asking")
	} else {
		v.statusbar.SetMessage("Question was not accepted")
	}
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("askpdf")
	sections = append(sections, header, "")

	sections = append(sections, v.renderTranscript(), "")

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	sections = append(sections, v.input.View())

	if v.asking {
		waiting := v.spin.View() + v.styles.Muted.Render(" Waiting for the answer...")
		sections = append(sections, waiting)
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript renders the most recent messages that fit the
// available height, oldest of those first.
func (v *View) renderTranscript() string {
	if len(v.transcript) == 0 {
		hint := v.styles.Muted.Render("Ask anything about your uploaded documents.")
		if v.gate != nil && !v.gate.HasAny() {
			warn := v.styles.Warning.Render("No documents uploaded yet. Press tab to open the documents view.")
			return hint + "\n" + warn
		}
		return hint
	}

	blocks := make([]string, 0, len(v.transcript))
	for i := range v.transcript {
		blocks = append(blocks, v.renderMessage(&v.transcript[i]))
	}

	budget := v.transcriptHeight()
	kept := make([]string, 0, len(blocks))
	used := 0
	for i := len(blocks) - 1; i >= 0; i-- {
		lines := strings.Count(blocks[i], "\n") + 2
		if used+lines > budget && len(kept) > 0 {
			break
		}
		kept = append([]string{blocks[i]}, kept...)
		used += lines
	}

	return strings.Join(kept, "\n\n")
}

// renderMessage formats a single chat message with its citations.
func (v *View) renderMessage(m *domain.ChatMessage) string {
	w := v.contentWidth()

	var b strings.Builder
	if m.Sender == domain.SenderUser {
		b.WriteString(v.styles.Subtitle.Render("You"))
	} else {
		b.WriteString(v.styles.Title.Render("Assistant"))
	}
	b.WriteString("\n")

	if m.Failed {
		b.WriteString(v.styles.Error.Width(w).Render(m.Body))
	} else {
		b.WriteString(v.styles.Normal.Width(w).Render(m.Body))
	}

	for i, c := range m.Citations {
		b.WriteString("\n")
		ref := fmt.Sprintf("  [%d] %s", i+1, c.Source)
		if c.Page > 0 {
			ref += fmt.Sprintf(", page %d", c.Page)
		}
		b.WriteString(v.styles.Muted.Render(ref))
		if c.Excerpt != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Width(w).Render("      " + c.Excerpt))
		}
	}

	return b.String()
}

// transcriptHeight returns the line budget for the transcript area.
func (v *View) transcriptHeight() int {
	// Reserve lines for header, input, spinner, status bar, and padding
	reserved := 10
	available := v.height - reserved
	if available < 4 {
		available = 4
	}
	return available
}

// contentWidth returns the wrapping width for message bodies.
func (v *View) contentWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Question returns the current input value.
func (v *View) Question() string {
	return v.input.Value()
}

// SetQuestion sets the input value.
func (v *View) SetQuestion(question string) {
	v.input.SetValue(question)
}

// Transcript returns the cached transcript snapshot.
func (v *View) Transcript() []domain.ChatMessage {
	return v.transcript
}

// Asking returns true while an answer is pending.
func (v *View) Asking() bool {
	return v.asking
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
