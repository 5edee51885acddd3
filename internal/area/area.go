// Package area records where each component was last drawn and resolves
// terminal cells to component names.
package area

import "fmt"

// Rect is a rectangle in terminal cell coordinates.
type Rect struct {
	X, Y          uint16
	Width, Height uint16
}

// Contains reports whether (x, y) lies inside r. Intervals are half-open:
// [X, X+Width) and [Y, Y+Height).
func (r Rect) Contains(x, y uint16) bool {
	// Widen before adding so rectangles touching the edge do not overflow.
	return uint32(x) >= uint32(r.X) && uint32(x) < uint32(r.X)+uint32(r.Width) &&
		uint32(y) >= uint32(r.Y) && uint32(y) < uint32(r.Y)+uint32(r.Height)
}

// Empty reports whether r covers no cell.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Registry maps component names to their last rendered rectangle.
// Hit-testing walks names in registration order, so when rectangles overlap
// the earliest registered component wins.
type Registry struct {
	order []string
	rects map[string]Rect
}

// NewRegistry creates a registry with names registered in order.
func NewRegistry(names ...string) *Registry {
	r := &Registry{rects: make(map[string]Rect)}
	for _, name := range names {
		r.Register(name)
	}
	return r
}

// Register appends name to the hit-test order. Re-registering keeps the
// original position.
func (r *Registry) Register(name string) {
	for _, n := range r.order {
		if n == name {
			return
		}
	}
	r.order = append(r.order, name)
}

// Names returns the registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// UpdateArea replaces the rectangle for name, registering it if needed.
func (r *Registry) UpdateArea(name string, rect Rect) {
	r.Register(name)
	r.rects[name] = rect
}

// Area returns the last rectangle recorded for name.
func (r *Registry) Area(name string) (Rect, bool) {
	rect, ok := r.rects[name]
	return rect, ok
}

// Forget drops the rectangle for name, e.g. when a panel is hidden.
func (r *Registry) Forget(name string) {
	delete(r.rects, name)
}

// Clear drops every rectangle but keeps the registration order.
func (r *Registry) Clear() {
	clear(r.rects)
}

// ComponentAt returns the first registered name whose rectangle contains
// (x, y). Names that were never rendered never match.
func (r *Registry) ComponentAt(x, y uint16) (string, bool) {
	for _, name := range r.order {
		rect, ok := r.rects[name]
		if ok && rect.Contains(x, y) {
			return name, true
		}
	}
	return "", false
}
