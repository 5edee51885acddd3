package app

import "time"

// TickMsg is sent periodically to refresh the playback position.
type TickMsg time.Time

// TrackFinishedMsg is sent when the transport played a track to its end.
type TrackFinishedMsg struct {
	Path string
}
