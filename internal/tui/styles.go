package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/issue-import/internal/domain"
)

// Colors defines the color palette.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains the lipgloss styles for progress and console output.
type Styles struct {
	Spinner lipgloss.Style
	Status  lipgloss.Style
	Debug   lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Spinner: lipgloss.NewStyle().Foreground(Colors.Primary),
		Status:  lipgloss.NewStyle(),
		Debug:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Warn:    lipgloss.NewStyle().Foreground(Colors.Warning).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		Success: lipgloss.NewStyle().Foreground(Colors.Success),
	}
}

// FormatEvent renders an event as one line of console output.
func (s Styles) FormatEvent(e domain.Event) string {
	switch e.Level {
	case domain.LevelDebug:
		return s.Debug.Render(e.Message)
	case domain.LevelWarn:
		return s.Warn.Render("warning:") + " " + e.Message
	case domain.LevelError:
		return s.Error.Render("error:") + " " + e.Message
	default:
		return e.Message
	}
}
