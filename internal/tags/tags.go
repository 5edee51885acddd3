// Package tags reads track metadata from music files.
package tags

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Supported extensions.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// Tag holds the metadata shown in track lists.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Year        int
	Size        int64
}

// IsMusicFile reports whether path has a supported audio extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtM4A, ExtMP4:
		return true
	default:
		return false
	}
}

// Label returns "NN - Title" when the track number is known.
func (t Tag) Label() string {
	if t.TrackNumber > 0 {
		return fmt.Sprintf("%02d - %s", t.TrackNumber, t.Title)
	}
	return t.Title
}
