// Package librarybrowser lists the folders and music files under the
// library root and lets the user walk through them.
package librarybrowser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/tags"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/cursor"
)

// Entry is one row of the browser.
type Entry struct {
	Name  string
	IsDir bool
}

// Model is the library browser component.
type Model struct {
	ui.Base
	root    string
	dir     string
	entries []Entry
	cursor  cursor.Cursor
}

// New creates a browser rooted at root. Call Load to read it.
func New(root string) *Model {
	root = filepath.Clean(root)
	return &Model{
		root:   root,
		dir:    root,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// Dir returns the directory being shown.
func (m *Model) Dir() string {
	return m.dir
}

// Entries returns the rows of the current directory.
func (m *Model) Entries() []Entry {
	return m.entries
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (Entry, bool) {
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[m.cursor.Pos()], true
}

// Load reads the current directory again.
func (m *Model) Load() error {
	return m.open(m.dir)
}

// OpenDir shows dir if it lies inside the library root.
func (m *Model) OpenDir(dir string) error {
	dir = filepath.Clean(dir)
	rel, err := filepath.Rel(m.root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errmsg.IO(errmsg.OpLibraryList, dir, os.ErrNotExist)
	}
	return m.open(dir)
}

// open lists dir and makes it current. On failure the previous listing stays.
func (m *Model) open(dir string) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return errmsg.IO(errmsg.OpLibraryList, dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if de.IsDir() {
			entries = append(entries, Entry{Name: name, IsDir: true})
			continue
		}
		if tags.IsMusicFile(name) {
			entries = append(entries, Entry{Name: name})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	if dir != m.dir {
		m.cursor.Reset()
	}
	m.dir = dir
	m.entries = entries
	m.cursor.ClampToBounds(len(m.entries), m.ListHeight())
	return nil
}

func (m *Model) atRoot() bool {
	return m.dir == m.root
}
