// Package toast renders the active notification queue as a transient
// stack. Notifications expire on their own; a periodic tick keeps the
// rendering in step with the queue.
package toast

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/messages"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/styles"
	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// TickInterval is how often the stack re-renders to drop expired
// notifications.
const TickInterval = 500 * time.Millisecond

// Stack displays the notifications currently alive in the centre.
type Stack struct {
	center driving.NotificationCenter
	styles *styles.Styles
	width  int
}

// NewStack creates a toast stack over a notification centre.
func NewStack(center driving.NotificationCenter, s *styles.Styles) *Stack {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Stack{
		center: center,
		styles: s,
		width:  80,
	}
}

// Tick returns a command that emits the next ToastTick.
func (s *Stack) Tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return messages.ToastTick{Time: t}
	})
}

// Update handles toast messages. Each tick schedules the next one.
func (s *Stack) Update(msg tea.Msg) (*Stack, tea.Cmd) {
	if _, ok := msg.(messages.ToastTick); ok {
		return s, s.Tick()
	}
	return s, nil
}

// View renders the active notifications, oldest first. Returns the
// empty string when nothing is alive.
func (s *Stack) View() string {
	if s.center == nil {
		return ""
	}

	active := s.center.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, n := range active {
		lines = append(lines, s.renderToast(n))
	}

	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}

// renderToast formats a single notification line.
func (s *Stack) renderToast(n domain.Notification) string {
	text := fmt.Sprintf("%s %s", n.Kind.Symbol(), n.Message)

	maxLen := s.width - 4
	if maxLen < 20 {
		maxLen = 20
	}
	if len(text) > maxLen {
		text = text[:maxLen-3] + "..."
	}

	return s.styleFor(n.Kind).Render(text)
}

// styleFor maps a notification kind to its display style.
func (s *Stack) styleFor(kind domain.NotificationKind) lipgloss.Style {
	switch kind {
	case domain.NotificationSuccess:
		return s.styles.Success
	case domain.NotificationError:
		return s.styles.Error
	case domain.NotificationWarning:
		return s.styles.Warning
	case domain.NotificationInfo:
		return s.styles.Normal
	}
	return s.styles.Normal
}

// Count returns the number of notifications currently displayed.
func (s *Stack) Count() int {
	if s.center == nil {
		return 0
	}
	return len(s.center.Active())
}

// SetWidth sets the maximum toast width.
func (s *Stack) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Stack) Width() int {
	return s.width
}
