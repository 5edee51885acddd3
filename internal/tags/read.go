package tags

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file. Files without readable tags
// still yield a Tag titled after the file name; only open failures are errors.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &Tag{Path: path, Title: filepath.Base(path)}
	if info, err := f.Stat(); err == nil {
		t.Size = info.Size()
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Unknown containers and truncated headers leave the file-name title.
		return t, nil
	}

	if title := m.Title(); title != "" {
		t.Title = title
	}
	t.Artist = m.Artist()
	if t.Artist == "" {
		t.Artist = m.AlbumArtist()
	}
	t.Album = m.Album()
	t.Year = m.Year()
	t.TrackNumber, _ = m.Track()
	return t, nil
}
