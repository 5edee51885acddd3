// Package ui provides shared UI constants and utilities.
package ui

// Component names, in registration (and focus) order.
const (
	LibraryBrowser = "library_browser"
	TrackList      = "track_list"
	Playlist       = "playlist"
	Controls       = "controls"
	Volume         = "volume"
)

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// MinBarWidth is the minimum width for a usable progress or volume bar.
	MinBarWidth = 5
)

// ComponentNames returns the component names in registration order.
func ComponentNames() []string {
	return []string{LibraryBrowser, TrackList, Playlist, Controls, Volume}
}
