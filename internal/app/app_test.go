package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

func newTestModel(t *testing.T) (Model, *player.Null, string) {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"01 first.mp3", "02 second.mp3"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "album"), 0o755))

	cfg := &config.Config{DefaultFolder: root, Theme: "ocean", Volume: 50, VolumeStep: 5}
	tr := player.NewNull()
	m, err := New(cfg, tr, nil)
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), tr, root
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update should return Model")
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_InitialState(t *testing.T) {
	m, tr, root := newTestModel(t)

	assert.Equal(t, ui.ComponentNames(), m.Dispatcher.Names())
	assert.Equal(t, ui.LibraryBrowser, m.Dispatcher.CurrentFocus())
	assert.True(t, m.Browser.Focused())
	assert.Equal(t, root, m.Tracks.Dir())
	assert.Len(t, m.Tracks.Tracks(), 2)
	assert.Equal(t, uint8(50), tr.Volume())
	assert.Equal(t, uint8(50), m.Volume.Level())
	assert.Equal(t, "ocean", m.Queue.Theme().Name)
	assert.Empty(t, m.ErrorMsg)
}

func TestNew_UnreadableRoot(t *testing.T) {
	cfg := &config.Config{DefaultFolder: filepath.Join(t.TempDir(), "missing")}
	m, err := New(cfg, player.NewNull(), nil)
	require.NoError(t, err)
	assert.Contains(t, m.ErrorMsg, "list directory")
}

func TestUpdate_WindowSizeMsg_PlacesComponents(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
	for _, name := range ui.ComponentNames() {
		r, ok := m.Dispatcher.Areas().Area(name)
		require.True(t, ok, name)
		assert.False(t, r.Empty(), name)
	}
	name, ok := m.Dispatcher.ComponentAt(100, 1)
	require.True(t, ok)
	assert.Equal(t, ui.Playlist, name)
}

func TestUpdate_TabCyclesFocus(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ui.TrackList, m.Dispatcher.CurrentFocus())
	assert.True(t, m.Tracks.Focused())
	assert.False(t, m.Browser.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, ui.Volume, m.Dispatcher.CurrentFocus())
}

func TestUpdate_EnterOnTrackPlaysAndQueues(t *testing.T) {
	m, tr, root := newTestModel(t)
	first := filepath.Join(root, "01 first.mp3")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, player.Playing, tr.State())
	assert.Equal(t, first, tr.Track())
	assert.Equal(t, []string{first}, m.Queue.Paths())
	assert.Equal(t, 0, m.Queue.Current())
}

func TestUpdate_TrackFinishedAdvancesQueue(t *testing.T) {
	m, tr, root := newTestModel(t)
	second := filepath.Join(root, "02 second.mp3")

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyDown},
		runes("a"),
	)
	require.Len(t, m.Queue.Paths(), 2)

	tr.SimulateFinished()
	m, cmd := press(t, m, TrackFinishedMsg{Path: tr.Track()})

	assert.Equal(t, second, tr.Track())
	assert.Equal(t, player.Playing, tr.State())
	assert.Equal(t, 1, m.Queue.Current())
	assert.NotNil(t, cmd, "watch is re-armed")
}

func TestUpdate_VolumeKeys(t *testing.T) {
	m, tr, _ := newTestModel(t)

	m, _ = press(t, m, runes("+"), runes("+"))
	assert.Equal(t, uint8(60), tr.Volume())
	assert.Equal(t, uint8(60), m.Volume.Level())

	m, _ = press(t, m, runes("-"))
	assert.Equal(t, uint8(55), tr.Volume())
	assert.Equal(t, ui.LibraryBrowser, m.Dispatcher.CurrentFocus(), "global keys do not move focus")
}

func TestUpdate_ClickFocusesAndReachesComponent(t *testing.T) {
	m, tr, _ := newTestModel(t)
	r := m.Layout.Areas[ui.Volume]

	m, _ = press(t, m, tea.MouseMsg{
		X: int(r.X) + 10, Y: int(r.Y) + 2,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})

	assert.Equal(t, ui.Volume, m.Dispatcher.CurrentFocus())
	assert.True(t, m.Volume.Focused())
	assert.Equal(t, uint8(55), tr.Volume(), "click landed on the bar")
}

func TestUpdate_ScrollGoesToFocused(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = press(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	sel, ok := m.Tracks.Selected()
	require.True(t, ok)
	assert.Equal(t, "02 second.mp3", filepath.Base(sel.Path))
}

func TestUpdate_ErrorsReachStatusLine(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, runes("p"))
	assert.Contains(t, m.ErrorMsg, "no track loaded")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.ErrorMsg, "a clean pass clears the message")
}

func TestUpdate_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := press(t, m, runes("q"))
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, action.Msg{Source: "test", Action: action.Quit})
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, isQuit(cmd))
}

func TestUpdate_ActionMsg(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, action.Msg{Source: "test", Action: action.Playlist{Op: action.PlaylistAdd, Path: "/x.mp3"}})

	assert.Equal(t, []string{"/x.mp3"}, m.Queue.Paths())
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want event.Event
		ok   bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, event.Click(3, 4), true},
		{"wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, event.Scroll(1), true},
		{"wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, event.Scroll(-1), true},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, nil, false},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, nil, false},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, nil, false},
		{"negative coordinates", tea.MouseMsg{X: -1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mouseEvent(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "Library")
	assert.Contains(t, out, "Tracks (2)")
	assert.Contains(t, out, "Playlist")
	assert.Contains(t, out, "Nothing loaded")
	assert.Contains(t, out, "Vol  50%")
	assert.Contains(t, out, "focus: library_browser")

	empty := Model{}
	assert.Empty(t, empty.View())
}
