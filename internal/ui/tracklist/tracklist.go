// Package tracklist shows the tagged music files of the folder selected in
// the library browser.
package tracklist

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/tags"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
	"github.com/llehouerou/wavedeck/internal/ui/cursor"
)

// Model is the track list component.
type Model struct {
	ui.Base
	dir     string
	tracks  []tags.Tag
	playing string
	cursor  cursor.Cursor
}

// New creates an empty track list.
func New() *Model {
	return &Model{cursor: cursor.New(ui.ScrollMargin)}
}

// Dir returns the folder whose tracks are listed.
func (m *Model) Dir() string {
	return m.dir
}

// Tracks returns the listed tracks.
func (m *Model) Tracks() []tags.Tag {
	return m.tracks
}

// Selected returns the track under the cursor.
func (m *Model) Selected() (tags.Tag, bool) {
	if len(m.tracks) == 0 {
		return tags.Tag{}, false
	}
	return m.tracks[m.cursor.Pos()], true
}

// Load lists the music files of dir with their tags. Files whose tags
// cannot be read are skipped and reported in the returned error.
func (m *Model) Load(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errmsg.IO(errmsg.OpLibraryList, dir, err)
	}

	var (
		tracks []tags.Tag
		errs   []error
	)
	for _, e := range entries {
		if e.IsDir() || !tags.IsMusicFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		t, err := tags.Read(path)
		if err != nil {
			errs = append(errs, errmsg.IO(errmsg.OpTagsRead, path, err))
			continue
		}
		tracks = append(tracks, *t)
	}
	sortTracks(tracks)

	if dir != m.dir {
		m.cursor.Reset()
	}
	m.dir = dir
	m.tracks = tracks
	m.cursor.ClampToBounds(len(m.tracks), m.ListHeight())
	return errors.Join(errs...)
}

// sortTracks orders by album, then track number, then file name.
func sortTracks(tracks []tags.Tag) {
	sort.SliceStable(tracks, func(i, j int) bool {
		a, b := tracks[i], tracks[j]
		if a.Album != b.Album {
			return a.Album < b.Album
		}
		if a.TrackNumber != b.TrackNumber {
			return a.TrackNumber < b.TrackNumber
		}
		return filepath.Base(a.Path) < filepath.Base(b.Path)
	})
}

// HandleEvent reacts to input delivered to the track list.
func (m *Model) HandleEvent(ev event.Event) (action.Action, error) {
	if m.cursor.HandleEvent(ev, len(m.tracks), m.ListHeight()) {
		return nil, nil
	}

	switch e := ev.(type) {
	case event.KeyEvent:
		sel, ok := m.Selected()
		if !ok {
			return nil, nil
		}
		switch {
		case e.Code == event.KeyEnter:
			return action.LoadTrack(sel.Path), nil
		case e.Code == event.KeyChar && e.Char == 'a':
			return action.Playlist{Op: action.PlaylistAdd, Path: sel.Path}, nil
		}
	case event.MouseEvent:
		if e.Kind == event.MouseClick {
			m.cursor.Click(m.RowAt(e.Y), len(m.tracks), m.ListHeight())
		}
	}
	return nil, nil
}

// Update follows the browser and the transport.
func (m *Model) Update(a action.Action) (action.Action, error) {
	if m.ApplyUI(a) {
		return nil, nil
	}
	switch v := a.(type) {
	case action.Metadata:
		if v.Op != action.MetadataLoad {
			return nil, nil
		}
		if err := m.Load(v.Path); err != nil {
			return nil, err
		}
		return action.Metadata{Op: action.MetadataLoaded, Path: v.Path}, nil
	case action.Player:
		if v.Op == action.PlayerLoadTrack {
			m.playing = v.Path
		}
	}
	return nil, nil
}
