// Package keymap defines key bindings for the application.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/wavedeck/internal/event"
)

// Binding maps terminal key strings to a key event.
type Binding struct {
	Event       event.KeyEvent
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigation"
}

// Key returns the binding as a bubbles key.Binding, for help rendering.
func (b Binding) Key() key.Binding {
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = displayKey(b.Keys[0])
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey, b.Description),
	)
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{event.Key(event.KeyQuit), []string{"q"}, "Quit", "global"},
	{event.Key(event.KeyTab), []string{"tab"}, "Next panel", "global"},
	{event.Key(event.KeyBackTab), []string{"shift+tab"}, "Previous panel", "global"},
	{event.Focus(event.Left), []string{"alt+h", "alt+left"}, "Focus left", "global"},
	{event.Focus(event.Right), []string{"alt+l", "alt+right"}, "Focus right", "global"},
	{event.Focus(event.Up), []string{"alt+k", "alt+up"}, "Focus up", "global"},
	{event.Focus(event.Down), []string{"alt+j", "alt+down"}, "Focus down", "global"},
	{event.Key(event.KeyEscape), []string{"esc"}, "Back", "global"},

	// Playback
	{event.Key(event.KeySpace), []string{" "}, "Play/pause", "playback"},
	{event.Key(event.KeyPlay), []string{"p"}, "Play", "playback"},
	{event.Key(event.KeyPause), []string{"P"}, "Pause", "playback"},
	{event.Key(event.KeyStop), []string{"s"}, "Stop", "playback"},
	{event.Key(event.KeyNext), []string{"n", "pgdown"}, "Next track", "playback"},
	{event.Key(event.KeyPrevious), []string{"b", "pgup"}, "Previous track", "playback"},
	{event.Key(event.KeyVolumeUp), []string{"+", "="}, "Volume up", "playback"},
	{event.Key(event.KeyVolumeDown), []string{"-"}, "Volume down", "playback"},
	{event.Key(event.KeyRecord), []string{"ctrl+r"}, "Record", "playback"},
	{event.Key(event.KeyFastForward), []string{"shift+right", "."}, "Seek +10s", "playback"},
	{event.Key(event.KeyRewind), []string{"shift+left", ","}, "Seek -10s", "playback"},

	// Navigation
	{event.Key(event.KeyEnter), []string{"enter"}, "Select", "navigation"},
	{event.Key(event.KeyUp), []string{"k", "up"}, "Move up", "navigation"},
	{event.Key(event.KeyDown), []string{"j", "down"}, "Move down", "navigation"},
	{event.Key(event.KeyLeft), []string{"h", "left"}, "Parent/collapse", "navigation"},
	{event.Key(event.KeyRight), []string{"l", "right"}, "Open/expand", "navigation"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
