// Package layout provides pure functions for UI dimension calculations.
package layout

import (
	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/ui"
)

// NarrowThreshold is the terminal width below which the playlist is stacked
// under the browser and track list instead of beside them.
const NarrowThreshold = 100

const (
	// ControlsHeight is the height of the controls and volume row.
	ControlsHeight = 4
	// FooterHeight is the status line plus the help line.
	FooterHeight = 2
	// VolumeWidth is the preferred width of the volume panel.
	VolumeWidth = 20
)

// Layout is the placement of every component for one window size.
type Layout struct {
	Width, Height int
	Narrow        bool
	Areas         map[string]area.Rect
	// FooterRow is the first row below the component panels.
	FooterRow int
}

// Compute places the five components in a window of width x height cells.
// Rectangles never overlap and never leave the window; components that do
// not fit get empty rectangles.
func Compute(width, height int) Layout {
	width = max(width, 0)
	height = max(height, 0)

	l := Layout{
		Width:  width,
		Height: height,
		Narrow: IsNarrowMode(width),
		Areas:  make(map[string]area.Rect, 5),
	}

	contentH := ContentHeight(height)
	controlsH := min(ControlsHeight, max(height-FooterHeight, 0))
	l.FooterRow = min(contentH+controlsH, height)

	if l.Narrow {
		topH := contentH * 2 / 3
		browserW := width / 2
		l.Areas[ui.LibraryBrowser] = rect(0, 0, browserW, topH)
		l.Areas[ui.TrackList] = rect(browserW, 0, width-browserW, topH)
		l.Areas[ui.Playlist] = rect(0, topH, width, contentH-topH)
	} else {
		browserW := width / 4
		tracksW := width / 2
		l.Areas[ui.LibraryBrowser] = rect(0, 0, browserW, contentH)
		l.Areas[ui.TrackList] = rect(browserW, 0, tracksW, contentH)
		l.Areas[ui.Playlist] = rect(browserW+tracksW, 0, width-browserW-tracksW, contentH)
	}

	volumeW := VolumeWidth
	if width < 2*VolumeWidth {
		volumeW = width / 3
	}
	l.Areas[ui.Controls] = rect(0, contentH, width-volumeW, controlsH)
	l.Areas[ui.Volume] = rect(width-volumeW, contentH, volumeW, controlsH)
	return l
}

// ContentHeight returns the height left for the browser, track list and
// playlist once the controls row and footer are reserved.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-ControlsHeight-FooterHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

func rect(x, y, w, h int) area.Rect {
	if w <= 0 || h <= 0 {
		return area.Rect{X: clamp16(x), Y: clamp16(y)}
	}
	return area.Rect{X: clamp16(x), Y: clamp16(y), Width: clamp16(w), Height: clamp16(h)}
}

func clamp16(v int) uint16 {
	return uint16(min(max(v, 0), 0xffff))
}
