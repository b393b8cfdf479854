package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/issue-import/internal/domain"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case MsgEvent:
		return m.handleEvent(msg.Event)
	case MsgDone:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		m.status = "Cancelling"
		if m.cancel != nil {
			m.cancel()
		}
	}
	return m, nil
}

func (m *Model) handleEvent(e domain.Event) (tea.Model, tea.Cmd) {
	switch {
	case e.Level >= domain.LevelWarn:
		return m, tea.Println(m.styles.FormatEvent(e))
	case e.Level == domain.LevelInfo:
		m.status = e.Message
		if e.Level >= m.minLevel {
			return m, tea.Println(m.styles.FormatEvent(e))
		}
	case e.Level >= m.minLevel:
		return m, tea.Println(m.styles.FormatEvent(e))
	}
	return m, nil
}
