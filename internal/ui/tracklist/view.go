package tracklist

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/wavedeck/internal/ui/render"
)

const sizeColumnWidth = 9

// View renders the track list panel.
func (m *Model) View() string {
	t := m.Theme()
	innerW := max(m.Width()-2, 0)
	titleW := max(innerW-sizeColumnWidth, 0)

	start, end := m.cursor.VisibleRange(len(m.tracks), m.ListHeight())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		tr := m.tracks[i]
		label := tr.Label()
		if tr.Artist != "" {
			label += " · " + tr.Artist
		}
		size := fmt.Sprintf("%*s", sizeColumnWidth, humanize.Bytes(uint64(max(tr.Size, 0))))
		line := render.Fit(label, titleW) + render.Truncate(size, innerW-titleW)

		switch {
		case i == m.cursor.Pos() && m.Focused():
			line = t.S().Cursor.Render(line)
		case i == m.cursor.Pos():
			line = t.S().Dimmed.Render(line)
		case tr.Path == m.playing:
			line = t.S().Playing.Render(line)
		default:
			line = t.S().Base.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.tracks) == 0 {
		lines = append(lines, t.S().Subtle.Render("(no tracks)"))
	}
	return m.Panel(fmt.Sprintf("Tracks (%d)", len(m.tracks)), lines)
}
