// Package action defines the intents UI components emit and how an intent is
// turned back into an event for re-dispatch.
package action

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/event"
)

// Action represents an intent produced by a UI component.
// The ActionType method returns a string identifier for logging/debugging.
// Every implementation is a comparable value.
type Action interface {
	ActionType() string
	isAction()
}

// Msg wraps an action with its source component name.
// Collaborators running outside the update loop use it to feed actions back
// into the dispatcher.
type Msg struct {
	Source string // Component name: "playlist", "controls", etc.
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Basic is a payload-free action.
type Basic int

const (
	NavigateUp Basic = iota + 1
	NavigateDown
	NavigateLeft
	NavigateRight
	Select
	Back
	Refresh
	Play
	Pause
	Stop
	NextTrack
	PreviousTrack
	VolumeUp
	VolumeDown
)

var basicNames = map[Basic]string{
	NavigateUp:    "navigate_up",
	NavigateDown:  "navigate_down",
	NavigateLeft:  "navigate_left",
	NavigateRight: "navigate_right",
	Select:        "select",
	Back:          "back",
	Refresh:       "refresh",
	Play:          "play",
	Pause:         "pause",
	Stop:          "stop",
	NextTrack:     "next_track",
	PreviousTrack: "previous_track",
	VolumeUp:      "volume_up",
	VolumeDown:    "volume_down",
}

func (b Basic) ActionType() string {
	if name, ok := basicNames[b]; ok {
		return name
	}
	return fmt.Sprintf("basic(%d)", int(b))
}

func (Basic) isAction() {}

// SetVolume sets the output volume in percent (0-100).
type SetVolume uint8

func (v SetVolume) ActionType() string { return fmt.Sprintf("set_volume(%d)", uint8(v)) }

func (SetVolume) isAction() {}

// Key re-emits a key event unchanged.
type Key event.KeyEvent

func (k Key) ActionType() string { return "key:" + event.KeyEvent(k).String() }

func (Key) isAction() {}

// PlayerOp is a playback transport operation.
type PlayerOp int

const (
	PlayerPlay PlayerOp = iota + 1
	PlayerPause
	PlayerToggle
	PlayerStop
	PlayerNext
	PlayerPrevious
	PlayerRecord
	PlayerFastForward
	PlayerRewind
	PlayerVolumeUp
	PlayerVolumeDown
	PlayerSetVolume
	PlayerLoadTrack
)

var playerNames = map[PlayerOp]string{
	PlayerPlay:        "play",
	PlayerPause:       "pause",
	PlayerToggle:      "toggle",
	PlayerStop:        "stop",
	PlayerNext:        "next",
	PlayerPrevious:    "previous",
	PlayerRecord:      "record",
	PlayerFastForward: "fast_forward",
	PlayerRewind:      "rewind",
	PlayerVolumeUp:    "volume_up",
	PlayerVolumeDown:  "volume_down",
	PlayerSetVolume:   "set_volume",
	PlayerLoadTrack:   "load_track",
}

// Player asks the playback transport to do something.
type Player struct {
	Op     PlayerOp
	Volume uint8  // PlayerSetVolume
	Path   string // PlayerLoadTrack
}

func (p Player) ActionType() string { return "player:" + playerNames[p.Op] }

func (Player) isAction() {}

// PlaylistOp is a queue operation.
type PlaylistOp int

const (
	PlaylistAdd PlaylistOp = iota + 1
	PlaylistRemove
	PlaylistClear
	PlaylistSelect
)

var playlistNames = map[PlaylistOp]string{
	PlaylistAdd:    "add",
	PlaylistRemove: "remove",
	PlaylistClear:  "clear",
	PlaylistSelect: "select",
}

// Playlist changes the play queue.
type Playlist struct {
	Op    PlaylistOp
	Index int    // PlaylistRemove, PlaylistSelect
	Path  string // PlaylistAdd
}

func (p Playlist) ActionType() string { return "playlist:" + playlistNames[p.Op] }

func (Playlist) isAction() {}

// UIOp is a presentation-level operation.
type UIOp int

const (
	UIFocus UIOp = iota + 1
	UIUpdateTheme
	UIResize
)

var uiNames = map[UIOp]string{
	UIFocus:       "focus",
	UIUpdateTheme: "update_theme",
	UIResize:      "resize",
}

// UI changes presentation state.
type UI struct {
	Op     UIOp
	Dir    event.Direction // UIFocus
	Width  uint16          // UIResize
	Height uint16          // UIResize
	Theme  string          // UIUpdateTheme
}

func (u UI) ActionType() string { return "ui:" + uiNames[u.Op] }

func (UI) isAction() {}

// MetadataOp is a metadata collaborator request.
type MetadataOp int

const (
	MetadataLoad MetadataOp = iota + 1
	MetadataLoaded
)

// Metadata requests or announces track metadata for Path.
type Metadata struct {
	Op   MetadataOp
	Path string
}

func (m Metadata) ActionType() string {
	if m.Op == MetadataLoaded {
		return "metadata:loaded"
	}
	return "metadata:load"
}

func (Metadata) isAction() {}

// AppOp is an application lifecycle operation.
type AppOp int

const (
	AppNoOp AppOp = iota + 1
	AppQuit
	AppCancel
	AppError
)

var appNames = map[AppOp]string{
	AppNoOp:   "noop",
	AppQuit:   "quit",
	AppCancel: "cancel",
	AppError:  "error",
}

// App is an application lifecycle action.
type App struct {
	Op      AppOp
	Message string // AppError
}

func (a App) ActionType() string { return "app:" + appNames[a.Op] }

func (App) isAction() {}

// NoOp is the "nothing happened" action.
var NoOp = App{Op: AppNoOp}

// Quit requests application shutdown.
var Quit = App{Op: AppQuit}

// Failure wraps an error message as an App action.
func Failure(msg string) App {
	return App{Op: AppError, Message: msg}
}

// Focus asks for focus to move in dir.
func Focus(dir event.Direction) UI {
	return UI{Op: UIFocus, Dir: dir}
}

// LoadTrack asks the transport to load and play path.
func LoadTrack(path string) Player {
	return Player{Op: PlayerLoadTrack, Path: path}
}
