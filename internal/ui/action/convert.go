package action

import "github.com/llehouerou/wavedeck/internal/event"

// IsInert reports whether a signals only "redraw" or "nothing happened".
// Inert actions are never turned back into events.
func IsInert(a Action) bool {
	switch v := a.(type) {
	case Basic:
		return v == Refresh
	case App:
		return v.Op == AppNoOp
	default:
		return false
	}
}

// IsQuit reports whether a ends the run loop.
func IsQuit(a Action) bool {
	v, ok := a.(App)
	return ok && v.Op == AppQuit
}

var basicEvents = map[Basic]event.Event{
	NavigateUp:    event.Navigate(event.Up),
	NavigateDown:  event.Navigate(event.Down),
	NavigateLeft:  event.Navigate(event.Left),
	NavigateRight: event.Navigate(event.Right),
	Select:        event.Key(event.KeyEnter),
	Back:          event.Key(event.KeyEscape),
	Play:          event.Key(event.KeyPlay),
	Pause:         event.Key(event.KeyPause),
	Stop:          event.Key(event.KeyStop),
	NextTrack:     event.Key(event.KeyNext),
	PreviousTrack: event.Key(event.KeyPrevious),
	VolumeUp:      event.Key(event.KeyVolumeUp),
	VolumeDown:    event.Key(event.KeyVolumeDown),
}

var playerKeys = map[PlayerOp]event.KeyCode{
	PlayerPlay:        event.KeyPlay,
	PlayerPause:       event.KeyPause,
	PlayerToggle:      event.KeySpace,
	PlayerStop:        event.KeyStop,
	PlayerNext:        event.KeyNext,
	PlayerPrevious:    event.KeyPrevious,
	PlayerRecord:      event.KeyRecord,
	PlayerFastForward: event.KeyFastForward,
	PlayerRewind:      event.KeyRewind,
	PlayerVolumeUp:    event.KeyVolumeUp,
	PlayerVolumeDown:  event.KeyVolumeDown,
}

var trackLoaded = event.System(event.TrackLoaded)

// ToEvent converts an action into the event it is re-dispatched as.
// It returns false when the action has no event form (Refresh, App NoOp,
// SetVolume, or an out-of-range payload).
func ToEvent(a Action) (event.Event, bool) {
	switch v := a.(type) {
	case Basic:
		ev, ok := basicEvents[v]
		return ev, ok
	case Key:
		return event.KeyEvent(v), true
	case SetVolume:
		return nil, false
	case Player:
		switch v.Op {
		case PlayerSetVolume, PlayerLoadTrack:
			return trackLoaded, true
		}
		code, ok := playerKeys[v.Op]
		if !ok {
			return nil, false
		}
		return event.Key(code), true
	case UI:
		switch v.Op {
		case UIFocus:
			return event.Focus(v.Dir), true
		case UIUpdateTheme, UIResize:
			return trackLoaded, true
		}
		return nil, false
	case Playlist, Metadata:
		return trackLoaded, true
	case App:
		switch v.Op {
		case AppError:
			return event.Failure(v.Message), true
		case AppQuit, AppCancel:
			return event.Key(event.KeyEscape), true
		}
		return nil, false
	default:
		return nil, false
	}
}
