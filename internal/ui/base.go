package ui

import (
	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/ui/action"
	"github.com/llehouerou/wavedeck/internal/ui/styles"
)

// Base provides focus and placement state shared by every component.
// Embed it in component models to satisfy Focused/SetFocused.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	    items  []Item
//	}
type Base struct {
	rect    area.Rect
	focused bool
	theme   *styles.Theme
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// Focused returns whether the component is focused.
func (b *Base) Focused() bool {
	return b.focused
}

// SetArea records the rectangle the component is drawn in.
func (b *Base) SetArea(r area.Rect) {
	b.rect = r
}

// Area returns the rectangle the component is drawn in.
func (b *Base) Area() area.Rect {
	return b.rect
}

// Width returns the component width.
func (b *Base) Width() int {
	return int(b.rect.Width)
}

// Height returns the component height.
func (b *Base) Height() int {
	return int(b.rect.Height)
}

// ListHeight returns available height for list content after subtracting overhead.
func (b *Base) ListHeight() int {
	return max(int(b.rect.Height)-PanelOverhead, 0)
}

// RowAt maps a screen row to a list row inside a standard panel.
// It returns -1 for rows on the border or header.
func (b *Base) RowAt(y uint16) int {
	top := int(b.rect.Y) + 1 + HeaderHeight
	row := int(y) - top
	if row < 0 || row >= b.ListHeight() {
		return -1
	}
	return row
}

// Theme returns the component theme, the default one until set.
func (b *Base) Theme() *styles.Theme {
	if b.theme == nil {
		b.theme, _ = styles.Lookup(styles.DefaultTheme)
	}
	return b.theme
}

// SetTheme switches to the named theme; unknown names select the default.
func (b *Base) SetTheme(name string) {
	b.theme, _ = styles.Lookup(name)
}

// ApplyUI handles the presentation actions every component reacts to the
// same way. It returns true if a was one of them.
func (b *Base) ApplyUI(a action.Action) bool {
	u, ok := a.(action.UI)
	if !ok || u.Op != action.UIUpdateTheme {
		return false
	}
	b.SetTheme(u.Theme)
	return true
}

// Panel draws lines in the component's own area with its focus border.
func (b *Base) Panel(title string, lines []string) string {
	return b.Theme().Panel(title, lines, b.Width(), b.Height(), b.focused)
}
