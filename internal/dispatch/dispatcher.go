package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/focus"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// DefaultMaxCascade bounds the number of distinct actions processed in one
// pass. Payload-carrying actions (paths, messages) do not form a finite set,
// so the seen set alone cannot bound them.
const DefaultMaxCascade = 1024

type entry struct {
	name string
	comp Component
}

// Dispatcher owns the registered components, the focus ring and the area
// registry. It is not safe for concurrent use: one pass runs to completion
// before the next one starts.
type Dispatcher struct {
	entries    []entry
	byName     map[string]int
	ring       *focus.Ring
	areas      *area.Registry
	logger     *slog.Logger
	maxCascade int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for handler failures and cascade tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxCascade overrides DefaultMaxCascade. Values below 1 are ignored.
func WithMaxCascade(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxCascade = n
		}
	}
}

// New creates an empty dispatcher. Register components, then call Start.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		byName:     make(map[string]int),
		areas:      area.NewRegistry(),
		logger:     slog.New(slog.DiscardHandler),
		maxCascade: DefaultMaxCascade,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a component under a unique name. Registration order is the
// focus order, the cascade delivery order and the hit-test tie-break.
func (d *Dispatcher) Register(name string, c Component) error {
	switch {
	case d.ring != nil:
		return errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpRegister, name, errors.New("dispatcher already started"))
	case name == "":
		return errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpRegister, name, errors.New("empty component name"))
	case c == nil:
		return errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpRegister, name, errors.New("nil component"))
	}
	if _, dup := d.byName[name]; dup {
		return errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpRegister, name, errors.New("name already registered"))
	}
	d.byName[name] = len(d.entries)
	d.entries = append(d.entries, entry{name: name, comp: c})
	d.areas.Register(name)
	return nil
}

// Start freezes the registry, builds the focus ring and focuses the first
// registered component.
func (d *Dispatcher) Start() error {
	if d.ring != nil {
		return nil
	}
	ring, err := focus.New(d.Names()...)
	if err != nil {
		return err
	}
	d.ring = ring
	d.syncFocus()
	return nil
}

// Started reports whether Start succeeded.
func (d *Dispatcher) Started() bool {
	return d.ring != nil
}

// Names returns registered component names in registration order.
func (d *Dispatcher) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.name
	}
	return names
}

// Component returns the component registered under name.
func (d *Dispatcher) Component(name string) (Component, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.entries[i].comp, true
}

// --- Focus ---

// CurrentFocus returns the focused component name, or "" before Start.
func (d *Dispatcher) CurrentFocus() string {
	if d.ring == nil {
		return ""
	}
	return d.ring.Current()
}

// FocusNext moves focus forward and resynchronizes every component.
func (d *Dispatcher) FocusNext() {
	if d.ring == nil {
		return
	}
	d.ring.Next()
	d.syncFocus()
}

// FocusPrevious moves focus backward and resynchronizes every component.
func (d *Dispatcher) FocusPrevious() {
	if d.ring == nil {
		return
	}
	d.ring.Previous()
	d.syncFocus()
}

// SetFocus focuses name. Unknown names are ignored and reported as false.
func (d *Dispatcher) SetFocus(name string) bool {
	if d.ring == nil || !d.ring.SetFocus(name) {
		d.logger.Debug("focus target ignored", "component", name)
		return false
	}
	d.syncFocus()
	return true
}

// ShouldProcess reports whether the component called name may react to ev.
func (d *Dispatcher) ShouldProcess(ev event.Event, name string) bool {
	return d.ring != nil && d.ring.ShouldProcess(ev, name)
}

func (d *Dispatcher) syncFocus() {
	for _, e := range d.entries {
		e.comp.SetFocused(d.ring.Focused(e.name))
	}
}

func (d *Dispatcher) moveFocus(k event.KeyEvent) {
	switch {
	case k.Code == event.KeyTab:
		d.ring.Next()
	case k.Code == event.KeyBackTab:
		d.ring.Previous()
	case k.Code == event.KeyFocus && k.Dir.Forward():
		d.ring.Next()
	case k.Code == event.KeyFocus:
		d.ring.Previous()
	default:
		return
	}
	d.syncFocus()
	d.logger.Debug("focus moved", "key", k.String(), "focus", d.ring.Current())
}

// --- Areas ---

// UpdateArea records where name was drawn in the current render pass.
func (d *Dispatcher) UpdateArea(name string, rect area.Rect) {
	d.areas.UpdateArea(name, rect)
}

// ComponentAt returns the component drawn at (x, y).
func (d *Dispatcher) ComponentAt(x, y uint16) (string, bool) {
	return d.areas.ComponentAt(x, y)
}

// Areas exposes the area registry.
func (d *Dispatcher) Areas() *area.Registry {
	return d.areas
}

// --- Dispatch ---

// HandleInput processes one raw input event. A click first moves focus to
// the component under the pointer, so that component receives the click as
// the focused one. The event is then dispatched.
func (d *Dispatcher) HandleInput(ev event.Event) Result {
	if m, ok := ev.(event.MouseEvent); ok && m.Kind == event.MouseClick && d.ring != nil {
		if name, hit := d.areas.ComponentAt(m.X, m.Y); hit && name != d.ring.Current() {
			d.SetFocus(name)
			d.logger.Debug("click focus", "component", name, "x", m.X, "y", m.Y)
		}
	}
	return d.Dispatch(ev)
}

// Dispatch delivers ev to every component allowed to see it, then runs the
// resulting action cascade to completion.
func (d *Dispatcher) Dispatch(ev event.Event) Result {
	var res Result
	if !d.ready(&res) {
		return res
	}
	if err := event.Validate(ev); err != nil {
		d.fail(&res, errmsg.Wrap(errmsg.ErrInvalidEvent, errmsg.OpValidateKeys, "", err))
		return res
	}
	c := newCascade(d, &res)
	c.deliver(ev)
	c.drain()
	return res
}

// DispatchAction runs the cascade seeded with a.
func (d *Dispatcher) DispatchAction(a action.Action) Result {
	var res Result
	if !d.ready(&res) {
		return res
	}
	if a == nil {
		return res
	}
	c := newCascade(d, &res)
	c.enqueue(a)
	c.drain()
	return res
}

func (d *Dispatcher) ready(res *Result) bool {
	if d.ring != nil {
		return true
	}
	d.fail(res, errmsg.Wrap(errmsg.ErrDispatch, errmsg.OpCascade, "", errors.New("dispatcher not started")))
	return false
}

func (d *Dispatcher) fail(res *Result, err error) {
	res.Errors = append(res.Errors, err)
	d.logger.Warn("dispatch failure", "err", err)
}

// handle calls HandleEvent, turning errors and panics into a nil action.
func (d *Dispatcher) handle(e entry, ev event.Event, res *Result) (out action.Action) {
	defer func() {
		if r := recover(); r != nil {
			d.fail(res, errmsg.Wrap(errmsg.ErrHandler, errmsg.OpHandleEvent, e.name, fmt.Errorf("panic: %v", r)))
			out = nil
		}
	}()
	a, err := e.comp.HandleEvent(ev)
	if err != nil {
		d.fail(res, asHandlerError(errmsg.OpHandleEvent, e.name, err))
		return nil
	}
	return a
}

// update calls Update, turning errors and panics into a nil action.
func (d *Dispatcher) update(e entry, a action.Action, res *Result) (out action.Action) {
	defer func() {
		if r := recover(); r != nil {
			d.fail(res, errmsg.Wrap(errmsg.ErrHandler, errmsg.OpUpdate, e.name, fmt.Errorf("panic: %v", r)))
			out = nil
		}
	}()
	next, err := e.comp.Update(a)
	if err != nil {
		d.fail(res, asHandlerError(errmsg.OpUpdate, e.name, err))
		return nil
	}
	return next
}

// asHandlerError keeps already classified errors and marks the rest as
// handler errors.
func asHandlerError(op errmsg.Op, name string, err error) error {
	var e *errmsg.Error
	if errors.As(err, &e) {
		return err
	}
	return errmsg.Wrap(errmsg.ErrHandler, op, name, err)
}
