package librarybrowser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/event"
	"github.com/llehouerou/wavedeck/internal/icons"
	"github.com/llehouerou/wavedeck/internal/ui/action"
)

func newLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"b", "a", ".hidden", filepath.Join("a", "inner")} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for _, file := range []string{"z.mp3", "notes.txt", filepath.Join("a", "song.flac")} {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), []byte("x"), 0o600))
	}
	return root
}

func newModel(t *testing.T) (*Model, string) {
	t.Helper()
	root := newLibrary(t)
	m := New(root)
	m.SetArea(area.Rect{X: 0, Y: 0, Width: 30, Height: 12})
	m.SetFocused(true)
	require.NoError(t, m.Load())
	return m, root
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestLoad_DirsFirstMusicOnly(t *testing.T) {
	m, _ := newModel(t)
	assert.Equal(t, []string{"a", "b", "z.mp3"}, names(m.Entries()))
}

func TestLoad_MissingDirIsIOError(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "missing"))
	err := m.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errmsg.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenDir(t *testing.T) {
	m, root := newModel(t)

	t.Run("inside root", func(t *testing.T) {
		require.NoError(t, m.OpenDir(filepath.Join(root, "a")))
		assert.Equal(t, filepath.Join(root, "a"), m.Dir())
		assert.Equal(t, []string{"inner", "song.flac"}, names(m.Entries()))
	})

	t.Run("outside root is refused", func(t *testing.T) {
		err := m.OpenDir(filepath.Dir(root))
		require.ErrorIs(t, err, errmsg.ErrIO)
		assert.Equal(t, filepath.Join(root, "a"), m.Dir())
	})
}

func TestHandleEvent_EnterOpensFolder(t *testing.T) {
	m, root := newModel(t)

	got, err := m.HandleEvent(event.Key(event.KeyEnter))

	require.NoError(t, err)
	want := filepath.Join(root, "a")
	assert.Equal(t, action.Metadata{Op: action.MetadataLoad, Path: want}, got)
	assert.Equal(t, want, m.Dir())
	assert.Equal(t, []string{"inner", "song.flac"}, names(m.Entries()))
}

func TestHandleEvent_LeftReturnsToParent(t *testing.T) {
	m, root := newModel(t)
	_, err := m.HandleEvent(event.Key(event.KeyDown))
	require.NoError(t, err)
	_, err = m.HandleEvent(event.Key(event.KeyRight)) // into b
	require.NoError(t, err)

	got, err := m.HandleEvent(event.Key(event.KeyLeft))

	require.NoError(t, err)
	assert.Equal(t, action.Metadata{Op: action.MetadataLoad, Path: root}, got)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.Name, "cursor lands on the folder we came from")
}

func TestHandleEvent_LeftAtRootIsIgnored(t *testing.T) {
	m, root := newModel(t)
	got, err := m.HandleEvent(event.Key(event.KeyLeft))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, root, m.Dir())
}

func TestHandleEvent_EnterOnFileLoadsTrack(t *testing.T) {
	m, root := newModel(t)
	_, _ = m.HandleEvent(event.Char('G'))

	got, err := m.HandleEvent(event.Key(event.KeyEnter))

	require.NoError(t, err)
	assert.Equal(t, action.LoadTrack(filepath.Join(root, "z.mp3")), got)
}

func TestHandleEvent_OpenFailureKeepsListing(t *testing.T) {
	m, root := newModel(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "a")))

	got, err := m.HandleEvent(event.Key(event.KeyEnter))

	assert.Nil(t, got)
	assert.ErrorIs(t, err, errmsg.ErrIO)
	assert.Equal(t, root, m.Dir())
	assert.Equal(t, []string{"a", "b", "z.mp3"}, names(m.Entries()))
}

func TestHandleEvent_RefreshRereads(t *testing.T) {
	m, root := newModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.ogg"), []byte("x"), 0o600))

	got, err := m.HandleEvent(event.Char('r'))

	require.NoError(t, err)
	assert.Equal(t, action.Refresh, got)
	assert.Equal(t, []string{"a", "b", "c.ogg", "z.mp3"}, names(m.Entries()))
}

func TestHandleEvent_ClickAndScroll(t *testing.T) {
	m, _ := newModel(t)

	// Rows start below the border, title and separator.
	_, err := m.HandleEvent(event.Click(5, 4))
	require.NoError(t, err)
	sel, _ := m.Selected()
	assert.Equal(t, "b", sel.Name)

	_, _ = m.HandleEvent(event.Scroll(1))
	sel, _ = m.Selected()
	assert.Equal(t, "z.mp3", sel.Name)

	_, _ = m.HandleEvent(event.Scroll(-1))
	sel, _ = m.Selected()
	assert.Equal(t, "b", sel.Name)
}

func TestUpdate_ThemeChange(t *testing.T) {
	m, _ := newModel(t)
	got, err := m.Update(action.UI{Op: action.UIUpdateTheme, Theme: "mono"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "mono", m.Theme().Name)
}

func TestView(t *testing.T) {
	m, _ := newModel(t)

	t.Run("unicode icons", func(t *testing.T) {
		out := ansi.Strip(m.View())
		assert.Contains(t, out, "Library")
		assert.Contains(t, out, "📁 a")
		assert.Contains(t, out, "🎵 z.mp3")
		assert.NotContains(t, out, "notes.txt")
	})

	t.Run("plain folders get a slash", func(t *testing.T) {
		icons.Init("none")
		t.Cleanup(func() { icons.Init("") })

		out := ansi.Strip(m.View())
		assert.Contains(t, out, "a/")
		assert.Contains(t, out, "z.mp3")
	})
}
