// Package playerbar is the transport controls component. It turns playback
// keys into player actions and drives the transport when they come back.
package playerbar

import (
	"time"

	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// SeekStep is how far fast-forward and rewind move.
const SeekStep = 10 * time.Second

var playerKeys = map[event.KeyCode]action.PlayerOp{
	event.KeySpace:       action.PlayerToggle,
	event.KeyPlay:        action.PlayerPlay,
	event.KeyPause:       action.PlayerPause,
	event.KeyStop:        action.PlayerStop,
	event.KeyNext:        action.PlayerNext,
	event.KeyPrevious:    action.PlayerPrevious,
	event.KeyRecord:      action.PlayerRecord,
	event.KeyFastForward: action.PlayerFastForward,
	event.KeyRewind:      action.PlayerRewind,
}

// Model is the controls component.
type Model struct {
	ui.Base
	transport player.Transport
}

// New creates controls driving t.
func New(t player.Transport) *Model {
	return &Model{transport: t}
}

// HandleEvent maps playback keys to player actions.
func (m *Model) HandleEvent(ev event.Event) (action.Action, error) {
	k, ok := ev.(event.KeyEvent)
	if !ok {
		return nil, nil
	}
	if op, ok := playerKeys[k.Code]; ok {
		return action.Player{Op: op}, nil
	}
	return nil, nil
}

// Update applies player actions to the transport.
func (m *Model) Update(a action.Action) (action.Action, error) {
	if m.ApplyUI(a) {
		return nil, nil
	}
	switch v := a.(type) {
	case action.SetVolume:
		m.transport.SetVolume(uint8(v))
	case action.Player:
		return nil, m.apply(v)
	}
	return nil, nil
}

func (m *Model) apply(p action.Player) error {
	t := m.transport
	switch p.Op {
	case action.PlayerPlay:
		return m.play()
	case action.PlayerToggle:
		if t.State() == player.Stopped {
			return m.play()
		}
		t.Toggle()
	case action.PlayerPause:
		t.Pause()
	case action.PlayerStop:
		t.Stop()
	case action.PlayerRecord:
		t.ToggleRecording()
	case action.PlayerFastForward:
		t.Seek(SeekStep)
	case action.PlayerRewind:
		t.Seek(-SeekStep)
	case action.PlayerSetVolume:
		t.SetVolume(p.Volume)
	case action.PlayerLoadTrack:
		if err := t.Load(p.Path); err != nil {
			return errmsg.IO(errmsg.OpPlaybackStart, p.Path, err)
		}
	case action.PlayerNext, action.PlayerPrevious, action.PlayerVolumeUp, action.PlayerVolumeDown:
		// Answered by the playlist and volume components.
	}
	return nil
}

func (m *Model) play() error {
	if err := m.transport.Play(); err != nil {
		return errmsg.Wrap(errmsg.ErrHandler, errmsg.OpPlaybackStart, ui.Controls, err)
	}
	return nil
}
