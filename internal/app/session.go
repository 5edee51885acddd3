package app

import (
	"github.com/llehouerou/wavedeck/internal/state"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

// Restore brings back a saved session. The folder is reopened only when it
// still lies inside the library root; nothing starts playing.
func (m *Model) Restore(sess *state.Session) {
	if sess == nil {
		return
	}

	if sess.Folder != "" && sess.Folder != m.Browser.Dir() {
		if err := m.Browser.OpenDir(sess.Folder); err != nil {
			m.Logger.Warn("saved folder not restored", "folder", sess.Folder, "err", err)
		} else {
			m.apply(m.Dispatcher.DispatchAction(action.Metadata{Op: action.MetadataLoad, Path: m.Browser.Dir()}))
		}
	}

	m.Queue.Restore(sess.Queue, sess.Current)
	m.apply(m.Dispatcher.DispatchAction(action.SetVolume(min(sess.Volume, 100))))
	m.Logger.Info("session restored", "folder", m.Browser.Dir(), "queued", len(sess.Queue))
}

// Session snapshots what Restore brings back.
func (m Model) Session() state.Session {
	return state.Session{
		Folder:  m.Browser.Dir(),
		Queue:   m.Queue.Paths(),
		Current: m.Queue.Current(),
		Volume:  m.Volume.Level(),
	}
}
