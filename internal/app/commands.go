package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/player"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchTrackFinished returns a command that waits for the transport to
// finish a track. It must be re-armed after each TrackFinishedMsg.
func WatchTrackFinished(t player.Transport) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-t.Finished()
		if !ok {
			return nil
		}
		return TrackFinishedMsg{Path: path}
	}
}
