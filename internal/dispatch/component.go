// Package dispatch routes input events to registered UI components and runs
// the cascade of actions they produce until nothing new comes out.
package dispatch

import (
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// Component is the contract every interactive widget satisfies.
//
// A nil action means "nothing to report". Components mutate only their own
// state; effects on other components travel as actions through the
// dispatcher. SetFocused is called exclusively by the dispatcher.
type Component interface {
	HandleEvent(ev event.Event) (action.Action, error)
	Update(a action.Action) (action.Action, error)
	Focused() bool
	SetFocused(focused bool)
}

// FocusFlag is embeddable focus state satisfying Focused/SetFocused.
type FocusFlag struct {
	focused bool
}

// Focused returns whether the component holds focus.
func (f *FocusFlag) Focused() bool {
	return f.focused
}

// SetFocused sets the focus flag.
func (f *FocusFlag) SetFocused(focused bool) {
	f.focused = focused
}
