package playerbar

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

func TestHandleEvent_KeysBecomePlayerActions(t *testing.T) {
	tests := []struct {
		key  event.KeyCode
		want action.PlayerOp
	}{
		{event.KeySpace, action.PlayerToggle},
		{event.KeyPlay, action.PlayerPlay},
		{event.KeyPause, action.PlayerPause},
		{event.KeyStop, action.PlayerStop},
		{event.KeyNext, action.PlayerNext},
		{event.KeyPrevious, action.PlayerPrevious},
		{event.KeyRecord, action.PlayerRecord},
		{event.KeyFastForward, action.PlayerFastForward},
		{event.KeyRewind, action.PlayerRewind},
	}

	m := New(player.NewNull())
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, err := m.HandleEvent(event.Key(tt.key))
			require.NoError(t, err)
			assert.Equal(t, action.Player{Op: tt.want}, got)
		})
	}
}

func TestHandleEvent_IgnoresOtherInput(t *testing.T) {
	m := New(player.NewNull())
	for _, ev := range []event.Event{
		event.Key(event.KeyEnter),
		event.Key(event.KeyVolumeUp),
		event.Char('x'),
		event.Click(1, 1),
		event.System(event.TrackEnded),
	} {
		got, err := m.HandleEvent(ev)
		require.NoError(t, err)
		assert.Nil(t, got, ev.String())
	}
}

func TestUpdate_DrivesTransport(t *testing.T) {
	tr := player.NewNull()
	m := New(tr)

	_, err := m.Update(action.LoadTrack("/a.mp3"))
	require.NoError(t, err)
	assert.Equal(t, player.Playing, tr.State())
	assert.Equal(t, "/a.mp3", tr.Track())

	_, _ = m.Update(action.Player{Op: action.PlayerToggle})
	assert.Equal(t, player.Paused, tr.State())
	_, _ = m.Update(action.Player{Op: action.PlayerToggle})
	assert.Equal(t, player.Playing, tr.State())

	_, _ = m.Update(action.Player{Op: action.PlayerFastForward})
	_, _ = m.Update(action.Player{Op: action.PlayerRewind})
	assert.Equal(t, []time.Duration{SeekStep, -SeekStep}, tr.Seeks())

	_, _ = m.Update(action.Player{Op: action.PlayerRecord})
	assert.True(t, tr.Recording())

	_, _ = m.Update(action.Player{Op: action.PlayerStop})
	assert.Equal(t, player.Stopped, tr.State())

	// Toggle from stopped restarts the loaded track.
	_, err = m.Update(action.Player{Op: action.PlayerToggle})
	require.NoError(t, err)
	assert.Equal(t, player.Playing, tr.State())

	_, _ = m.Update(action.Player{Op: action.PlayerPause})
	assert.Equal(t, player.Paused, tr.State())
	_, _ = m.Update(action.Player{Op: action.PlayerPlay})
	assert.Equal(t, player.Playing, tr.State())
}

func TestUpdate_Volume(t *testing.T) {
	tr := player.NewNull()
	m := New(tr)

	_, _ = m.Update(action.SetVolume(40))
	assert.Equal(t, uint8(40), tr.Volume())

	_, _ = m.Update(action.Player{Op: action.PlayerSetVolume, Volume: 65})
	assert.Equal(t, uint8(65), tr.Volume())
}

func TestUpdate_PlayWithoutTrack(t *testing.T) {
	m := New(player.NewNull())

	_, err := m.Update(action.Player{Op: action.PlayerPlay})

	require.Error(t, err)
	assert.ErrorIs(t, err, player.ErrNoTrack)
	assert.ErrorIs(t, err, errmsg.ErrHandler)
}

func TestUpdate_LoadFailureIsIOError(t *testing.T) {
	tr := player.NewNull()
	tr.SetLoadError(os.ErrPermission)
	m := New(tr)

	_, err := m.Update(action.LoadTrack("/locked.mp3"))

	assert.ErrorIs(t, err, errmsg.ErrIO)
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Equal(t, player.Stopped, tr.State())
}

func TestView(t *testing.T) {
	tr := player.NewNull()
	m := New(tr)
	m.SetArea(area.Rect{Width: 40, Height: 4})

	assert.Contains(t, ansi.Strip(m.View()), "Nothing loaded")

	_, _ = m.Update(action.LoadTrack("/music/song.mp3"))
	_, _ = m.Update(action.Player{Op: action.PlayerRecord})
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "song.mp3")
	assert.Contains(t, out, "▶  0:00")
	assert.Contains(t, out, "REC")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{65 * time.Second, "1:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}
