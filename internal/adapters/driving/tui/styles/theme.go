// Package styles defines the colour palette and the lipgloss styles shared
// by the TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles are derived from.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color // slightly darker than Background, used for bars
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the Tokyo Night palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7AA2F7"),
		Secondary:  lipgloss.Color("#BB9AF7"),
		Background: lipgloss.Color("#1A1B26"),
		Surface:    lipgloss.Color("#16161E"),
		Foreground: lipgloss.Color("#C0CAF5"),
		Muted:      lipgloss.Color("#565F89"),
		Success:    lipgloss.Color("#9ECE6A"),
		Warning:    lipgloss.Color("#E0AF68"),
		Error:      lipgloss.Color("#F7768E"),
		Border:     lipgloss.Color("#3B4261"),
	}
}

// Styles carries the pre-built lipgloss styles handed to every view.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style // bold primary, view headings
	Subtitle   lipgloss.Style // bold secondary
	Normal     lipgloss.Style // default text
	Muted      lipgloss.Style // de-emphasised text
	Selected   lipgloss.Style // highlighted list rows
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style // rounded border around text inputs
	StatusBar  lipgloss.Style
	Help       lipgloss.Style // key hints
	Border     lipgloss.Style // generic rounded container
}

// NewStyles derives the shared styles from theme. A nil theme falls back to
// the default palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	bordered := func() lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)
	}

	s := &Styles{theme: theme}
	s.Title = fg(theme.Primary).Bold(true)
	s.Subtitle = fg(theme.Secondary).Bold(true)
	s.Normal = fg(theme.Foreground)
	s.Muted = fg(theme.Muted)
	s.Selected = fg(theme.Foreground).Background(theme.Primary).Bold(true)
	s.Error = fg(theme.Error)
	s.Success = fg(theme.Success)
	s.Warning = fg(theme.Warning)
	s.InputField = bordered().Padding(0, 1)
	s.StatusBar = fg(theme.Muted).Background(theme.Surface).Padding(0, 1)
	s.Help = fg(theme.Muted)
	s.Border = bordered()

	return s
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
