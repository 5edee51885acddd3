package queuepanel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/wavedeck/internal/icons"
	"github.com/llehouerou/wavedeck/internal/ui/render"
)

// View renders the queue panel.
func (m *Model) View() string {
	t := m.Theme()
	innerW := max(m.Width()-2, 0)

	marker := icons.Current()
	blank := strings.Repeat(" ", runewidth.StringWidth(marker))

	start, end := m.cursor.VisibleRange(len(m.paths), m.ListHeight())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		prefix := blank
		if i == m.current {
			prefix = marker
		}
		line := render.Fit(prefix+filepath.Base(m.paths[i]), innerW)
		switch {
		case i == m.cursor.Pos() && m.Focused():
			line = t.S().Cursor.Render(line)
		case i == m.cursor.Pos():
			line = t.S().Dimmed.Render(line)
		case i == m.current:
			line = t.S().Playing.Render(line)
		default:
			line = t.S().Base.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.paths) == 0 {
		lines = append(lines, t.S().Subtle.Render("(queue empty)"))
	}

	title := "Playlist"
	if m.current >= 0 {
		title = fmt.Sprintf("Playlist %d/%d", m.current+1, len(m.paths))
	} else if len(m.paths) > 0 {
		title = fmt.Sprintf("Playlist (%d)", len(m.paths))
	}
	return m.Panel(title, lines)
}
