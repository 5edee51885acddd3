// Package cursor provides a reusable cursor component for scrollable lists.
package cursor

import "github.com/llehouerou/wavedeck/internal/event"

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than stored,
// since they can change dynamically.
type Cursor struct {
	pos    int // Current cursor position (0-indexed)
	offset int // Scroll offset (first visible item index)
	margin int // Items to keep visible above/below cursor
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta positions within a list of given length.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump sets the cursor to an absolute position within a list of given length.
// If listLen is 0, this is a no-op.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Click moves the cursor to the visible row (0 = first visible item).
// It returns false when the row holds no item.
func (c *Cursor) Click(row, listLen, height int) bool {
	if row < 0 || row >= height {
		return false
	}
	target := c.offset + row
	if target >= listLen {
		return false
	}
	c.pos = target
	c.ensureVisible(listLen, height)
	return true
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	margin := min(c.margin, (height-1)/2)

	// Scroll up: cursor too close to top
	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}

	// Scroll down: cursor too close to bottom
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds ensures the cursor is within valid bounds for the given length.
// Useful when the list length decreases (items deleted).
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.Reset()
		return changed
	}

	oldPos := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
	return c.pos != oldPos
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves the cursor back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleEvent applies list navigation: up/down keys, navigation events,
// scroll wheel steps and g/G jumps. It returns true if the cursor handled ev.
func (c *Cursor) HandleEvent(ev event.Event, listLen, height int) bool {
	switch e := ev.(type) {
	case event.KeyEvent:
		switch {
		case e.Code == event.KeyDown:
			c.Move(1, listLen, height)
		case e.Code == event.KeyUp:
			c.Move(-1, listLen, height)
		case e.Code == event.KeyChar && e.Char == 'g':
			c.Jump(0, listLen, height)
		case e.Code == event.KeyChar && e.Char == 'G':
			c.Jump(listLen-1, listLen, height)
		default:
			return false
		}
		return true
	case event.NavigationEvent:
		switch e.Direction() {
		case event.Down:
			c.Move(1, listLen, height)
		case event.Up:
			c.Move(-1, listLen, height)
		default:
			return false
		}
		return true
	case event.MouseEvent:
		steps := e.ScrollSteps()
		if steps == 0 {
			return false
		}
		c.Move(steps, listLen, height)
		return true
	}
	return false
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
