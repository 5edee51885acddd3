package dispatch

import (
	"fmt"

	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// Result describes one dispatch pass.
type Result struct {
	// Actions lists every distinct action processed, in processing order.
	Actions []action.Action
	// Duplicates counts actions discarded because they were already seen.
	Duplicates int
	// Inert counts Refresh/NoOp actions absorbed without conversion.
	Inert int
	// Deliveries counts HandleEvent calls.
	Deliveries int
	// Quit is set when the pass saw a Quit key or an App quit action.
	Quit bool
	// Truncated is set when the pass hit the cascade bound.
	Truncated bool
	// Errors collects handler and dispatch failures; none aborts the pass.
	Errors []error
}

// Redraw reports whether anything happened that may change the screen.
func (r Result) Redraw() bool {
	return r.Deliveries > 0 || len(r.Actions) > 0
}

// Err returns the first collected error, if any.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Has reports whether a was processed during the pass.
func (r Result) Has(a action.Action) bool {
	for _, got := range r.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// cascade holds the per-pass state of the fixpoint loop.
type cascade struct {
	d       *Dispatcher
	res     *Result
	pending []action.Action
	seen    map[action.Action]struct{}
}

func newCascade(d *Dispatcher, res *Result) *cascade {
	return &cascade{
		d:    d,
		res:  res,
		seen: make(map[action.Action]struct{}),
	}
}

// deliver hands ev to every component the focus ring lets through and queues
// what they return. Focus navigation keys move the ring first.
func (c *cascade) deliver(ev event.Event) {
	if k, ok := ev.(event.KeyEvent); ok {
		if k.IsFocusNavigation() {
			c.d.moveFocus(k)
		}
		if k.Code == event.KeyQuit {
			c.res.Quit = true
		}
	}
	for _, e := range c.d.entries {
		if !c.d.ring.ShouldProcess(ev, e.name) {
			continue
		}
		c.res.Deliveries++
		c.enqueue(c.d.handle(e, ev, c.res))
	}
}

func (c *cascade) enqueue(a action.Action) {
	if a == nil {
		return
	}
	if _, dup := c.seen[a]; dup {
		c.res.Duplicates++
		return
	}
	c.pending = append(c.pending, a)
}

// drain processes pending actions until none is left. Each distinct action
// is processed once: it is broadcast to Update, converted to an event and
// delivered. Inert actions stop at the seen set.
func (c *cascade) drain() {
	for len(c.pending) > 0 {
		a := c.pending[0]
		c.pending = c.pending[1:]

		if _, dup := c.seen[a]; dup {
			c.res.Duplicates++
			continue
		}
		if len(c.seen) >= c.d.maxCascade {
			c.res.Truncated = true
			c.d.fail(c.res, errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpCascade, "",
				fmt.Errorf("cascade exceeded %d actions, dropped %d pending", c.d.maxCascade, len(c.pending)+1)))
			c.pending = nil
			return
		}
		c.seen[a] = struct{}{}
		c.res.Actions = append(c.res.Actions, a)
		c.d.logger.Debug("cascade step", "action", a.ActionType(), "step", len(c.seen))

		if action.IsInert(a) {
			c.res.Inert++
			continue
		}
		if action.IsQuit(a) {
			c.res.Quit = true
		}

		for _, e := range c.d.entries {
			c.enqueue(c.d.update(e, a, c.res))
		}
		if ev, ok := action.ToEvent(a); ok {
			c.deliver(ev)
		}
	}
}
