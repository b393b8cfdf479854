package tui

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Status.Render(m.status) + "\n"
}
