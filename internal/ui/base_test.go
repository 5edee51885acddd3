package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/ui/action"
	"github.com/llehouerou/wavedeck/internal/ui/styles"
)

func TestBase_Focus(t *testing.T) {
	var b Base
	assert.False(t, b.Focused())
	b.SetFocused(true)
	assert.True(t, b.Focused())
}

func TestBase_ListHeight(t *testing.T) {
	var b Base
	assert.Equal(t, 0, b.ListHeight())

	b.SetArea(area.Rect{Width: 20, Height: 10})
	assert.Equal(t, 6, b.ListHeight())
	assert.Equal(t, 20, b.Width())
	assert.Equal(t, 10, b.Height())
}

func TestBase_RowAt(t *testing.T) {
	var b Base
	b.SetArea(area.Rect{X: 0, Y: 5, Width: 20, Height: 10})

	tests := []struct {
		y    uint16
		want int
	}{
		{5, -1},  // top border
		{7, -1},  // separator
		{8, 0},   // first row
		{13, 5},  // last row
		{14, -1}, // bottom border
		{0, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.RowAt(tt.y), "y=%d", tt.y)
	}
}

func TestComponentNames(t *testing.T) {
	assert.Equal(t,
		[]string{"library_browser", "track_list", "playlist", "controls", "volume"},
		ComponentNames())
}

func TestBase_Theme(t *testing.T) {
	var b Base
	assert.Equal(t, styles.DefaultTheme, b.Theme().Name)

	assert.True(t, b.ApplyUI(action.UI{Op: action.UIUpdateTheme, Theme: "mono"}))
	assert.Equal(t, "mono", b.Theme().Name)

	assert.False(t, b.ApplyUI(action.UI{Op: action.UIResize, Width: 10, Height: 10}))
	assert.False(t, b.ApplyUI(action.Select))
	assert.Equal(t, "mono", b.Theme().Name)

	b.SetTheme("unknown")
	assert.Equal(t, styles.DefaultTheme, b.Theme().Name)
}
