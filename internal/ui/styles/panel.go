package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavedeck/internal/ui/render"
)

// PanelStyle returns the bordered panel style for the focus state.
func (t *Theme) PanelStyle(focused bool) lipgloss.Style {
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// Panel draws a bordered box of exactly width x height cells holding a
// title, a separator and the body lines. Lines beyond the box are dropped.
func (t *Theme) Panel(title string, lines []string, width, height int, focused bool) string {
	innerW := width - 2
	innerH := height - 2
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	titleStyle := t.S().Muted
	if focused {
		titleStyle = t.S().Title
	}

	rows := make([]string, 0, innerH)
	rows = append(rows, titleStyle.Render(render.Fit(title, innerW)))
	if innerH > 1 {
		rows = append(rows, t.S().Subtle.Render(render.Separator(innerW)))
	}
	for _, line := range lines {
		if len(rows) == innerH {
			break
		}
		rows = append(rows, render.Pad(render.TruncateStyled(line, innerW), innerW))
	}
	for len(rows) < innerH {
		rows = append(rows, strings.Repeat(" ", innerW))
	}

	return t.PanelStyle(focused).Render(strings.Join(rows, "\n"))
}
