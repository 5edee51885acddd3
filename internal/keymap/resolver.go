package keymap

import (
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/wavedeck/internal/event"
)

// Resolver maps key strings to key events.
type Resolver struct {
	bindings []Binding
	byKey    map[string]event.KeyEvent   // key -> event
	byEvent  map[event.KeyEvent][]string // event -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: bindings,
		byKey:    make(map[string]event.KeyEvent),
		byEvent:  make(map[event.KeyEvent][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.byKey[k] = b.Event
		}
		// Collect all keys for each event (may have duplicates from different contexts)
		r.byEvent[b.Event] = append(r.byEvent[b.Event], b.Keys...)
	}
	// Deduplicate keys per event
	for ev, keys := range r.byEvent {
		r.byEvent[ev] = dedupe(keys)
	}
	return r
}

// Resolve returns the key event for a key string. Unbound single printable
// characters resolve to a Char event; anything else is reported as unbound.
func (r *Resolver) Resolve(k string) (event.KeyEvent, bool) {
	if ev, ok := r.byKey[k]; ok {
		return ev, true
	}
	if utf8.RuneCountInString(k) == 1 {
		c, _ := utf8.DecodeRuneInString(k)
		if unicode.IsPrint(c) && !unicode.IsSpace(c) {
			return event.Char(c), true
		}
	}
	return event.KeyEvent{}, false
}

// KeysFor returns the keys bound to an event (for help/documentation).
func (r *Resolver) KeysFor(ev event.KeyEvent) []string {
	return r.byEvent[ev]
}

// Help returns bubbles key bindings of the given contexts, in binding order.
func (r *Resolver) Help(contexts ...string) []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		for _, c := range contexts {
			if b.Context == c {
				out = append(out, b.Key())
				break
			}
		}
	}
	return out
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
