package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavedeck/internal/ui/render"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var content string
	if m.Layout.Narrow {
		content = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, m.Browser.View(), m.Tracks.View()),
			m.Queue.View(),
		)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.Browser.View(), m.Tracks.View(), m.Queue.View())
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, m.Controls.View(), m.Volume.View())

	sections := make([]string, 0, 4)
	for _, s := range []string{content, controls} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	sections = append(sections, m.statusLine(), m.helpLine())
	return strings.Join(sections, "\n")
}

func (m Model) statusLine() string {
	s := m.Browser.Theme().S()
	if m.ErrorMsg != "" {
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}
	status := "focus: " + m.Dispatcher.CurrentFocus()
	return s.Muted.Render(render.Fit(status, m.Width))
}

func (m Model) helpLine() string {
	return m.Help.ShortHelpView(m.Keys.Help("global", "playback"))
}
