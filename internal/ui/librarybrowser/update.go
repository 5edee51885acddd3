package librarybrowser

import (
	"path/filepath"

	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// HandleEvent reacts to input delivered to the browser.
func (m *Model) HandleEvent(ev event.Event) (action.Action, error) {
	if m.cursor.HandleEvent(ev, len(m.entries), m.ListHeight()) {
		return nil, nil
	}

	switch e := ev.(type) {
	case event.KeyEvent:
		switch {
		case e.Code == event.KeyEnter, e.Code == event.KeyRight:
			return m.activate()
		case e.Code == event.KeyLeft:
			return m.parent()
		case e.Code == event.KeyChar && e.Char == 'r':
			if err := m.Load(); err != nil {
				return nil, err
			}
			return action.Refresh, nil
		}
	case event.NavigationEvent:
		switch e.Direction() {
		case event.Right:
			return m.activate()
		case event.Left:
			return m.parent()
		}
	case event.MouseEvent:
		if e.Kind == event.MouseClick {
			m.cursor.Click(m.RowAt(e.Y), len(m.entries), m.ListHeight())
		}
	}
	return nil, nil
}

// Update applies actions broadcast by the dispatcher.
func (m *Model) Update(a action.Action) (action.Action, error) {
	m.ApplyUI(a)
	return nil, nil
}

// activate opens the selected folder or plays the selected file.
func (m *Model) activate() (action.Action, error) {
	sel, ok := m.Selected()
	if !ok {
		return nil, nil
	}
	path := filepath.Join(m.dir, sel.Name)
	if !sel.IsDir {
		return action.LoadTrack(path), nil
	}
	if err := m.open(path); err != nil {
		return nil, err
	}
	return action.Metadata{Op: action.MetadataLoad, Path: path}, nil
}

// parent moves one level up, never above the root.
func (m *Model) parent() (action.Action, error) {
	if m.atRoot() {
		return nil, nil
	}
	from := filepath.Base(m.dir)
	parent := filepath.Dir(m.dir)
	if err := m.open(parent); err != nil {
		return nil, err
	}
	for i, e := range m.entries {
		if e.IsDir && e.Name == from {
			m.cursor.Jump(i, len(m.entries), m.ListHeight())
			break
		}
	}
	return action.Metadata{Op: action.MetadataLoad, Path: parent}, nil
}
