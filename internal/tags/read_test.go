package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/a.mp3", true},
		{"/music/A.FLAC", true},
		{"b.opus", true},
		{"c.ogg", true},
		{"d.m4a", true},
		{"e.mp4", true},
		{"cover.jpg", false},
		{"README", false},
		{"/music/dir.mp3/notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMusicFile(tt.path))
		})
	}
}

func TestTag_Label(t *testing.T) {
	assert.Equal(t, "03 - Song", Tag{Title: "Song", TrackNumber: 3}.Label())
	assert.Equal(t, "Song", Tag{Title: "Song"}.Label())
}

func TestRead_UntaggedFileFallsBackToName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untagged.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o600))

	tag, err := Read(path)

	require.NoError(t, err)
	assert.Equal(t, "untagged.mp3", tag.Title)
	assert.Equal(t, path, tag.Path)
	assert.Equal(t, int64(16), tag.Size)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.flac"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
