// Package volume is the volume meter component.
package volume

import (
	"fmt"
	"strings"

	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// Model is the volume component. Its level follows SetVolume actions; input
// only ever requests a new level.
type Model struct {
	ui.Base
	level uint8
	step  uint8
	muted uint8 // level before mute, 0 when not muted
}

// New creates a volume meter at level percent moving by step.
func New(level, step uint8) *Model {
	return &Model{level: min(level, 100), step: max(step, 1)}
}

// Level returns the current level in percent.
func (m *Model) Level() uint8 {
	return m.level
}

// Muted reports whether the level was dropped to zero by mute.
func (m *Model) Muted() bool {
	return m.muted > 0
}

// HandleEvent turns volume keys, wheel and clicks into SetVolume requests.
// The wheel follows list scrolling: a positive delta (wheel down) lowers
// the volume.
func (m *Model) HandleEvent(ev event.Event) (action.Action, error) {
	switch e := ev.(type) {
	case event.KeyEvent:
		switch {
		case e.Code == event.KeyVolumeUp, e.Code == event.KeyUp, e.Code == event.KeyRight:
			return m.request(int(m.level) + int(m.step)), nil
		case e.Code == event.KeyVolumeDown, e.Code == event.KeyDown, e.Code == event.KeyLeft:
			return m.request(int(m.level) - int(m.step)), nil
		case e.Code == event.KeyChar && e.Char == 'm':
			return m.toggleMute(), nil
		}
	case event.MouseEvent:
		if e.Kind == event.MouseClick {
			return m.clickLevel(e.X), nil
		}
		return m.request(int(m.level) - e.ScrollSteps()*int(m.step)), nil
	}
	return nil, nil
}

// Update follows volume changes from any source.
func (m *Model) Update(a action.Action) (action.Action, error) {
	if m.ApplyUI(a) {
		return nil, nil
	}
	switch v := a.(type) {
	case action.SetVolume:
		m.set(uint8(v))
	case action.Player:
		if v.Op == action.PlayerSetVolume {
			m.set(v.Volume)
		}
	}
	return nil, nil
}

func (m *Model) set(level uint8) {
	level = min(level, 100)
	if level > 0 {
		m.muted = 0
	}
	m.level = level
}

// request returns a SetVolume for the clamped level, nil when unchanged.
func (m *Model) request(level int) action.Action {
	v := uint8(min(max(level, 0), 100))
	if v == m.level {
		return nil
	}
	return action.SetVolume(v)
}

func (m *Model) toggleMute() action.Action {
	if m.muted > 0 {
		return m.request(int(m.muted))
	}
	if m.level == 0 {
		return nil
	}
	m.muted = m.level
	return action.SetVolume(0)
}

// clickLevel maps a click on the bar to a level. The bar spans the inner
// width of the panel.
func (m *Model) clickLevel(x uint16) action.Action {
	r := m.Area()
	barW := int(r.Width) - 2
	if barW < ui.MinBarWidth {
		return nil
	}
	col := int(x) - int(r.X) - 1
	if col < 0 || col >= barW {
		return nil
	}
	return m.request((col + 1) * 100 / barW)
}

// View renders the meter.
func (m *Model) View() string {
	w, h := m.Width(), m.Height()
	if w < 3 || h < 3 {
		return ""
	}
	t := m.Theme()
	innerW := w - 2

	label := fmt.Sprintf("Vol %3d%%", m.level)
	if m.Muted() {
		label = "Vol muted"
	}
	lines := []string{
		t.S().Base.Render(label),
		t.Bar(m.level, innerW),
	}
	for len(lines) < h-2 {
		lines = append(lines, "")
	}
	style := t.PanelStyle(m.Focused()).Width(innerW)
	return style.Render(strings.Join(lines[:h-2], "\n"))
}
