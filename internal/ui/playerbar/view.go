package playerbar

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/llehouerou/wavedeck/internal/icons"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui/render"
)

// View renders the controls panel: the loaded track and the transport state.
func (m *Model) View() string {
	w, h := m.Width(), m.Height()
	if w < 3 || h < 3 {
		return ""
	}
	t := m.Theme()
	innerW := w - 2

	track := "Nothing loaded"
	trackStyle := t.S().Muted
	if path := m.transport.Track(); path != "" {
		track = filepath.Base(path)
		trackStyle = t.S().Playing
	}

	status := stateIcon(m.transport.State()) + "  " + formatDuration(m.transport.Position())
	if m.transport.Recording() {
		status += "  " + t.S().Error.Render(icons.Record())
	}

	lines := []string{
		trackStyle.Render(render.Fit(track, innerW)),
		render.Row(t.S().Base.Render(status), t.S().Subtle.Render(m.transport.State().String()), innerW),
	}
	for len(lines) < h-2 {
		lines = append(lines, strings.Repeat(" ", innerW))
	}
	return t.PanelStyle(m.Focused()).Render(strings.Join(lines[:h-2], "\n"))
}

func stateIcon(s player.State) string {
	switch s {
	case player.Playing:
		return icons.Playing()
	case player.Paused:
		return icons.Paused()
	default:
		return icons.Stopped()
	}
}

// formatDuration formats a duration as m:ss or h:mm:ss.
func formatDuration(d time.Duration) string {
	d = max(d, 0).Round(time.Second)
	h := int(d.Hours())
	mins := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, s)
	}
	return fmt.Sprintf("%d:%02d", mins, s)
}
