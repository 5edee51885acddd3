// Package focus implements the focus ring: a fixed, cyclic order of component
// names with exactly one current member, and the rule deciding which
// components may react to an event.
package focus

import (
	"errors"

	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
)

// Ring is an ordered, cyclic list of focusable component names.
// The zero value is not usable; create rings with New.
type Ring struct {
	names []string
	index map[string]int
	cur   int
}

// New creates a ring over names, focused on the first one.
func New(names ...string) (*Ring, error) {
	if len(names) == 0 {
		return nil, errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpFocus, "", errors.New("empty focus ring"))
	}
	r := &Ring{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, dup := r.index[name]; dup {
			return nil, errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpFocus, name,
				errors.New("duplicate component name"))
		}
		r.names[i] = name
		r.index[name] = i
	}
	return r, nil
}

// Len returns the number of names in the ring.
func (r *Ring) Len() int {
	return len(r.names)
}

// Names returns a copy of the ring order.
func (r *Ring) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Index returns the position of the focused name.
func (r *Ring) Index() int {
	return r.cur
}

// Current returns the focused name.
func (r *Ring) Current() string {
	return r.names[r.cur]
}

// Focused reports whether name holds focus.
func (r *Ring) Focused(name string) bool {
	return r.names[r.cur] == name
}

// Contains reports whether name is part of the ring.
func (r *Ring) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Next moves focus forward, wrapping after the last name.
func (r *Ring) Next() {
	r.cur = (r.cur + 1) % len(r.names)
}

// Previous moves focus backward, wrapping before the first name.
func (r *Ring) Previous() {
	if r.cur == 0 {
		r.cur = len(r.names) - 1
		return
	}
	r.cur--
}

// SetFocus focuses name. Unknown names are ignored and reported as false.
func (r *Ring) SetFocus(name string) bool {
	i, ok := r.index[name]
	if !ok {
		return false
	}
	r.cur = i
	return true
}

// ShouldProcess reports whether the component called name may react to ev.
//
// Focus navigation keys, the global hotkeys and system events reach every
// component. Everything else (frame keys, navigation, mouse, and the hotkeys
// without a global binding) reaches only the focused component.
func (r *Ring) ShouldProcess(ev event.Event, name string) bool {
	switch e := ev.(type) {
	case event.KeyEvent:
		if isGlobalKey(e.Code) {
			return true
		}
	case event.SystemEvent:
		return true
	}
	return r.Focused(name)
}

func isGlobalKey(code event.KeyCode) bool {
	switch code {
	case event.KeyTab, event.KeyBackTab, event.KeyFocus,
		event.KeyQuit, event.KeyEscape, event.KeySpace,
		event.KeyPlay, event.KeyPause, event.KeyStop,
		event.KeyNext, event.KeyPrevious,
		event.KeyVolumeUp, event.KeyVolumeDown:
		return true
	default:
		return false
	}
}
