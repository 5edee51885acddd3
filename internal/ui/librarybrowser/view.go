package librarybrowser

import (
	"path/filepath"

	"github.com/llehouerou/wavedeck/internal/icons"
	"github.com/llehouerou/wavedeck/internal/ui/render"
)

// View renders the browser panel.
func (m *Model) View() string {
	title := "Library"
	if rel, err := filepath.Rel(m.root, m.dir); err == nil && rel != "." {
		title += " / " + rel
	}

	t := m.Theme()
	innerW := max(m.Width()-2, 0)
	start, end := m.cursor.VisibleRange(len(m.entries), m.ListHeight())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.entries[i]
		name := icons.FormatAudio(e.Name)
		if e.IsDir {
			name = icons.FormatDir(e.Name)
		}
		line := render.Fit(name, innerW)
		switch {
		case i == m.cursor.Pos() && m.Focused():
			line = t.S().Cursor.Render(line)
		case i == m.cursor.Pos():
			line = t.S().Dimmed.Render(line)
		case e.IsDir:
			line = t.S().Base.Render(line)
		default:
			line = t.S().Muted.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.entries) == 0 {
		lines = append(lines, t.S().Subtle.Render("(empty)"))
	}
	return m.Panel(title, lines)
}
