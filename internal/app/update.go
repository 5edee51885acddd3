package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/dispatch"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
	"github.com/llehouerou/wavedeck/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		ev, ok := m.Keys.Resolve(msg.String())
		if !ok {
			return m, nil
		}
		return m.input(ev)

	case tea.MouseMsg:
		ev, ok := mouseEvent(msg)
		if !ok {
			return m, nil
		}
		return m.input(ev)

	case TrackFinishedMsg:
		m.Logger.Debug("track finished", "path", msg.Path)
		res := m.Dispatcher.Dispatch(event.System(event.TrackEnded))
		m.apply(res)
		return m, WatchTrackFinished(m.Transport)

	case TickMsg:
		return m, TickCmd()

	case action.Msg:
		m.Logger.Debug("external action", "source", msg.Source, "action", msg.Action.ActionType())
		res := m.Dispatcher.DispatchAction(msg.Action)
		m.apply(res)
		if res.Quit {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// input runs one user event through the dispatcher.
func (m Model) input(ev event.Event) (tea.Model, tea.Cmd) {
	res := m.Dispatcher.HandleInput(ev)
	m.apply(res)
	if res.Quit {
		return m, tea.Quit
	}
	return m, nil
}

// apply records the outcome of a dispatch pass for the status line.
func (m *Model) apply(res dispatch.Result) {
	if err := res.Err(); err != nil {
		m.ErrorMsg = errmsg.Message(err)
		return
	}
	if res.Redraw() {
		m.ErrorMsg = ""
	}
}

// resize lays the components out and tells them about the new size.
func (m *Model) resize(width, height int) {
	m.Width = width
	m.Height = height
	m.Layout = layout.Compute(width, height)
	for _, name := range ui.ComponentNames() {
		r := m.Layout.Areas[name]
		m.panel(name).SetArea(r)
		m.Dispatcher.UpdateArea(name, r)
	}
	m.Help.Width = width
	m.apply(m.Dispatcher.DispatchAction(action.UI{
		Op:     action.UIResize,
		Width:  uint16(min(max(width, 0), 0xffff)),
		Height: uint16(min(max(height, 0), 0xffff)),
	}))
}

// mouseEvent converts presses of the left button and the wheel. Releases,
// motion and other buttons have no event form.
func mouseEvent(msg tea.MouseMsg) (event.Event, bool) {
	if msg.Action != tea.MouseActionPress || msg.X < 0 || msg.Y < 0 || msg.X > 0xffff || msg.Y > 0xffff {
		return nil, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return event.Click(uint16(msg.X), uint16(msg.Y)), true
	case tea.MouseButtonWheelDown:
		return event.Scroll(1), true
	case tea.MouseButtonWheelUp:
		return event.Scroll(-1), true
	default:
		return nil, false
	}
}
