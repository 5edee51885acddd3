package volume

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

func TestNew_Clamps(t *testing.T) {
	m := New(150, 0)
	assert.Equal(t, uint8(100), m.Level())
	assert.Equal(t, uint8(1), m.step)
}

func TestHandleEvent_Keys(t *testing.T) {
	tests := []struct {
		name  string
		level uint8
		ev    event.Event
		want  action.Action
	}{
		{"volume up", 50, event.Key(event.KeyVolumeUp), action.SetVolume(55)},
		{"volume down", 50, event.Key(event.KeyVolumeDown), action.SetVolume(45)},
		{"arrow up", 50, event.Key(event.KeyUp), action.SetVolume(55)},
		{"arrow left", 50, event.Key(event.KeyLeft), action.SetVolume(45)},
		{"clamped at max", 98, event.Key(event.KeyVolumeUp), action.SetVolume(100)},
		{"already max", 100, event.Key(event.KeyVolumeUp), nil},
		{"clamped at zero", 3, event.Key(event.KeyVolumeDown), action.SetVolume(0)},
		{"already zero", 0, event.Key(event.KeyVolumeDown), nil},
		{"unrelated key", 50, event.Key(event.KeyEnter), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.level, 5)
			got, err := m.HandleEvent(tt.ev)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.level, m.Level(), "input never changes the level directly")
		})
	}
}

func TestHandleEvent_Scroll(t *testing.T) {
	m := New(50, 5)

	got, _ := m.HandleEvent(event.Scroll(1))
	assert.Equal(t, action.SetVolume(45), got, "wheel down lowers")

	got, _ = m.HandleEvent(event.Scroll(-3))
	assert.Equal(t, action.SetVolume(55), got, "wheel up raises")

	got, _ = m.HandleEvent(event.Scroll(0))
	assert.Nil(t, got)
}

func TestHandleEvent_Click(t *testing.T) {
	m := New(30, 5)
	m.SetArea(area.Rect{X: 100, Y: 34, Width: 22, Height: 4})

	got, _ := m.HandleEvent(event.Click(110, 36))
	assert.Equal(t, action.SetVolume(50), got, "middle of a 20 cell bar")

	got, _ = m.HandleEvent(event.Click(120, 36))
	assert.Equal(t, action.SetVolume(100), got)

	got, _ = m.HandleEvent(event.Click(100, 36))
	assert.Nil(t, got, "border")
}

func TestMute(t *testing.T) {
	m := New(60, 5)

	got, _ := m.HandleEvent(event.Char('m'))
	assert.Equal(t, action.SetVolume(0), got)
	_, _ = m.Update(got)
	assert.True(t, m.Muted())
	assert.Equal(t, uint8(0), m.Level())

	got, _ = m.HandleEvent(event.Char('m'))
	assert.Equal(t, action.SetVolume(60), got)
	_, _ = m.Update(got)
	assert.False(t, m.Muted())
	assert.Equal(t, uint8(60), m.Level())
}

func TestUpdate_FollowsVolume(t *testing.T) {
	m := New(50, 5)

	got, err := m.Update(action.SetVolume(70))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, uint8(70), m.Level())

	_, _ = m.Update(action.Player{Op: action.PlayerSetVolume, Volume: 20})
	assert.Equal(t, uint8(20), m.Level())

	_, _ = m.Update(action.SetVolume(200))
	assert.Equal(t, uint8(100), m.Level())
}

func TestView(t *testing.T) {
	m := New(40, 5)
	m.SetArea(area.Rect{Width: 12, Height: 4})
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Vol  40%")
	assert.Contains(t, out, "████░░░░░░")
}
