package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.s.quitting {
		return ""
	}

	if !m.ready {
		return m.styles.Muted.Render("Loading...")
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.s.root.Render(), m.renderStatus())
}

// renderStatus renders the bottom line: the prompt while it is open,
// otherwise the error or status text followed by key help
func (m Model) renderStatus() string {
	s := m.s
	line := lipgloss.NewStyle().MaxWidth(m.width)

	if s.promptOpen {
		return line.Render(m.styles.Prompt.Render("Parent id: ") + s.prompt.Value() + "█")
	}

	var left string
	switch {
	case s.err != nil:
		left = m.styles.Error.Render(s.err.Error())
	case s.status != "":
		left = m.styles.Status.Render(s.status)
	}
	if s.notice != "" {
		if left != "" {
			left += "  "
		}
		left += m.styles.Notice.Render(s.notice)
	}

	help := m.styles.Help.Render(helpText(append(
		m.keys.ShortHelp(),
		s.home.Table().Keys.ShortHelp()...,
	)...))
	if left == "" {
		return line.Render(help)
	}
	return line.Render(left + "  " + help)
}
