// Package queuepanel holds the play queue and decides what plays next.
package queuepanel

import (
	"slices"

	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
	"github.com/llehouerou/wavedeck/internal/ui/cursor"
)

// Model represents the queue panel state.
type Model struct {
	ui.Base
	paths   []string
	current int // index of the loaded track, -1 when none
	cursor  cursor.Cursor
}

// New creates an empty queue.
func New() *Model {
	return &Model{
		current: -1,
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// Paths returns the queued files in play order.
func (m *Model) Paths() []string {
	return m.paths
}

// Current returns the index of the loaded track, or -1.
func (m *Model) Current() int {
	return m.current
}

// Restore replaces the queue without requesting a load. An out-of-range
// current index means nothing is loaded.
func (m *Model) Restore(paths []string, current int) {
	m.paths = slices.Clone(paths)
	m.current = current
	if current < 0 || current >= len(m.paths) {
		m.current = -1
	}
	m.cursor.Reset()
	if m.current >= 0 {
		m.cursor.Jump(m.current, len(m.paths), m.ListHeight())
	}
}

// CursorPos returns the cursor index.
func (m *Model) CursorPos() int {
	return m.cursor.Pos()
}

// HandleEvent reacts to input delivered to the queue. Track-end
// notifications reach it whatever the focus.
func (m *Model) HandleEvent(ev event.Event) (action.Action, error) {
	if m.cursor.HandleEvent(ev, len(m.paths), m.ListHeight()) {
		return nil, nil
	}

	switch e := ev.(type) {
	case event.SystemEvent:
		if e.Kind == event.TrackEnded && m.current >= 0 {
			return action.NextTrack, nil
		}
	case event.KeyEvent:
		if len(m.paths) == 0 {
			return nil, nil
		}
		switch {
		case e.Code == event.KeyEnter:
			return action.Playlist{Op: action.PlaylistSelect, Index: m.cursor.Pos()}, nil
		case e.Code == event.KeyChar && e.Char == 'd':
			return action.Playlist{Op: action.PlaylistRemove, Index: m.cursor.Pos()}, nil
		case e.Code == event.KeyChar && e.Char == 'c':
			return action.Playlist{Op: action.PlaylistClear}, nil
		}
	case event.MouseEvent:
		if e.Kind == event.MouseClick {
			m.cursor.Click(m.RowAt(e.Y), len(m.paths), m.ListHeight())
		}
	}
	return nil, nil
}

// Update applies queue operations and answers next/previous requests.
func (m *Model) Update(a action.Action) (action.Action, error) {
	if m.ApplyUI(a) {
		return nil, nil
	}
	switch v := a.(type) {
	case action.Playlist:
		return m.apply(v), nil
	case action.Player:
		switch v.Op {
		case action.PlayerNext:
			return m.step(1), nil
		case action.PlayerPrevious:
			return m.step(-1), nil
		case action.PlayerLoadTrack:
			m.loaded(v.Path)
		}
	}
	return nil, nil
}

func (m *Model) apply(p action.Playlist) action.Action {
	switch p.Op {
	case action.PlaylistAdd:
		if p.Path != "" {
			m.paths = append(m.paths, p.Path)
		}
	case action.PlaylistRemove:
		if p.Index < 0 || p.Index >= len(m.paths) {
			return nil
		}
		m.paths = slices.Delete(m.paths, p.Index, p.Index+1)
		switch {
		case p.Index == m.current:
			m.current = -1
		case p.Index < m.current:
			m.current--
		}
		m.cursor.ClampToBounds(len(m.paths), m.ListHeight())
	case action.PlaylistClear:
		m.paths = nil
		m.current = -1
		m.cursor.Reset()
	case action.PlaylistSelect:
		if p.Index < 0 || p.Index >= len(m.paths) {
			return nil
		}
		m.current = p.Index
		return action.LoadTrack(m.paths[p.Index])
	}
	return nil
}

// step returns the load request for the neighbour of the current track.
func (m *Model) step(delta int) action.Action {
	next := m.current + delta
	if m.current < 0 || next < 0 || next >= len(m.paths) {
		return nil
	}
	m.current = next
	return action.LoadTrack(m.paths[next])
}

// loaded tracks a load requested elsewhere. Unknown files join the queue.
func (m *Model) loaded(path string) {
	if m.current >= 0 && m.current < len(m.paths) && m.paths[m.current] == path {
		return
	}
	if i := slices.Index(m.paths, path); i >= 0 {
		m.current = i
		return
	}
	m.paths = append(m.paths, path)
	m.current = len(m.paths) - 1
}
