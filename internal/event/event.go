// Package event defines the input vocabulary delivered to UI components.
//
// An Event is a small immutable value. All variants are comparable so they can
// be used as map keys and compared with ==.
package event

import "fmt"

// Event is one of KeyEvent, MouseEvent, SystemEvent or NavigationEvent.
type Event interface {
	isEvent()
	String() string
}

// Direction is a cardinal direction used by navigation and focus moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Forward reports whether a focus move in this direction advances the ring.
func (d Direction) Forward() bool {
	return d == Right || d == Down
}

// KeyCode enumerates the keys the application understands.
type KeyCode int

const (
	// Global navigation
	KeyTab KeyCode = iota + 1
	KeyBackTab
	KeyFocus // carries a Direction

	// Global hotkeys
	KeySpace
	KeyQuit
	KeyEscape
	KeyPlay
	KeyPause
	KeyStop
	KeyNext
	KeyPrevious
	KeyVolumeUp
	KeyVolumeDown
	KeyRecord
	KeyFastForward
	KeyRewind

	// Frame-specific
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyChar // carries a rune
)

var keyNames = map[KeyCode]string{
	KeyTab:         "tab",
	KeyBackTab:     "backtab",
	KeyFocus:       "focus",
	KeySpace:       "space",
	KeyQuit:        "quit",
	KeyEscape:      "escape",
	KeyPlay:        "play",
	KeyPause:       "pause",
	KeyStop:        "stop",
	KeyNext:        "next",
	KeyPrevious:    "previous",
	KeyVolumeUp:    "volume_up",
	KeyVolumeDown:  "volume_down",
	KeyRecord:      "record",
	KeyFastForward: "fast_forward",
	KeyRewind:      "rewind",
	KeyEnter:       "enter",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyChar:        "char",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Valid reports whether k is a member of the closed key set.
func (k KeyCode) Valid() bool {
	_, ok := keyNames[k]
	return ok
}

// KeyEvent is a key press. Char is set only for KeyChar, Dir only for KeyFocus.
type KeyEvent struct {
	Code KeyCode
	Char rune
	Dir  Direction
}

// Key returns a KeyEvent for a payload-free key code.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// Char returns a printable character key.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r}
}

// Focus returns a directional focus-move key.
func Focus(dir Direction) KeyEvent {
	return KeyEvent{Code: KeyFocus, Dir: dir}
}

func (KeyEvent) isEvent() {}

func (k KeyEvent) String() string {
	switch k.Code {
	case KeyChar:
		return fmt.Sprintf("key(%q)", k.Char)
	case KeyFocus:
		return "key(focus " + k.Dir.String() + ")"
	default:
		return "key(" + k.Code.String() + ")"
	}
}

// IsFocusNavigation reports whether the key moves focus between components.
func (k KeyEvent) IsFocusNavigation() bool {
	switch k.Code {
	case KeyTab, KeyBackTab, KeyFocus:
		return true
	default:
		return false
	}
}

// IsHotkey reports whether the key is an application-wide hotkey.
func (k KeyEvent) IsHotkey() bool {
	return k.Code >= KeySpace && k.Code <= KeyRewind
}

// IsFrameSpecific reports whether the key is meant for the focused component only.
func (k KeyEvent) IsFrameSpecific() bool {
	return k.Code >= KeyEnter && k.Code <= KeyChar
}

// MouseKind distinguishes clicks from wheel scrolls.
type MouseKind int

const (
	MouseClick MouseKind = iota + 1
	MouseScroll
)

// MouseEvent is a click at terminal cell (X, Y) or a wheel scroll.
//
// Scroll sign convention: a positive Delta is a wheel-down step, moving lists
// toward increasing index and lowering volume. A negative Delta is wheel-up.
type MouseEvent struct {
	Kind  MouseKind
	X, Y  uint16
	Delta int16
}

// Click returns a click event at the given cell.
func Click(x, y uint16) MouseEvent {
	return MouseEvent{Kind: MouseClick, X: x, Y: y}
}

// Scroll returns a wheel event.
func Scroll(delta int16) MouseEvent {
	return MouseEvent{Kind: MouseScroll, Delta: delta}
}

func (MouseEvent) isEvent() {}

func (m MouseEvent) String() string {
	if m.Kind == MouseScroll {
		return fmt.Sprintf("mouse(scroll %d)", m.Delta)
	}
	return fmt.Sprintf("mouse(click %d,%d)", m.X, m.Y)
}

// ScrollSteps returns the list movement for a scroll: +1 toward increasing
// index, -1 toward decreasing index, 0 for clicks and zero deltas.
func (m MouseEvent) ScrollSteps() int {
	if m.Kind != MouseScroll {
		return 0
	}
	switch {
	case m.Delta > 0:
		return 1
	case m.Delta < 0:
		return -1
	default:
		return 0
	}
}

// SystemKind enumerates notifications from collaborators.
type SystemKind int

const (
	TrackLoaded SystemKind = iota + 1
	TrackEnded
	Error
)

// SystemEvent is a notification raised by the application, not the user.
type SystemEvent struct {
	Kind    SystemKind
	Message string // only for Error
}

// System returns a payload-free system event.
func System(kind SystemKind) SystemEvent {
	return SystemEvent{Kind: kind}
}

// Failure returns an Error system event carrying msg.
func Failure(msg string) SystemEvent {
	return SystemEvent{Kind: Error, Message: msg}
}

func (SystemEvent) isEvent() {}

func (s SystemEvent) String() string {
	switch s.Kind {
	case TrackLoaded:
		return "system(track_loaded)"
	case TrackEnded:
		return "system(track_ended)"
	case Error:
		return fmt.Sprintf("system(error %q)", s.Message)
	default:
		return "system(unknown)"
	}
}

// NavigationEvent is directional intent that was already classified as such,
// as opposed to a raw arrow key press.
type NavigationEvent Direction

// Navigate returns a navigation event for dir.
func Navigate(dir Direction) NavigationEvent {
	return NavigationEvent(dir)
}

func (NavigationEvent) isEvent() {}

// Direction returns the navigation direction.
func (n NavigationEvent) Direction() Direction {
	return Direction(n)
}

func (n NavigationEvent) String() string {
	return "navigation(" + Direction(n).String() + ")"
}

// Validate rejects events whose shape is outside the closed vocabulary.
func Validate(ev Event) error {
	switch e := ev.(type) {
	case KeyEvent:
		if !e.Code.Valid() {
			return fmt.Errorf("unknown key code %d", int(e.Code))
		}
		if e.Code == KeyChar && e.Char == 0 {
			return fmt.Errorf("char key without rune")
		}
	case MouseEvent:
		if e.Kind != MouseClick && e.Kind != MouseScroll {
			return fmt.Errorf("unknown mouse kind %d", int(e.Kind))
		}
	case SystemEvent:
		if e.Kind < TrackLoaded || e.Kind > Error {
			return fmt.Errorf("unknown system kind %d", int(e.Kind))
		}
	case NavigationEvent:
		if Direction(e) < Up || Direction(e) > Right {
			return fmt.Errorf("unknown direction %d", int(e))
		}
	case nil:
		return fmt.Errorf("nil event")
	}
	return nil
}
