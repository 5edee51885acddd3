// Package app wires the components to the dispatcher and runs them as a
// bubbletea program.
package app

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/area"
	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/dispatch"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/icons"
	"github.com/llehouerou/wavedeck/internal/keymap"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/action"
	"github.com/llehouerou/wavedeck/internal/ui/layout"
	"github.com/llehouerou/wavedeck/internal/ui/librarybrowser"
	"github.com/llehouerou/wavedeck/internal/ui/playerbar"
	"github.com/llehouerou/wavedeck/internal/ui/queuepanel"
	"github.com/llehouerou/wavedeck/internal/ui/tracklist"
	"github.com/llehouerou/wavedeck/internal/ui/volume"
)

// Model is the root application model.
type Model struct {
	Dispatcher *dispatch.Dispatcher
	Browser    *librarybrowser.Model
	Tracks     *tracklist.Model
	Queue      *queuepanel.Model
	Controls   *playerbar.Model
	Volume     *volume.Model
	Transport  player.Transport
	Keys       *keymap.Resolver
	Help       help.Model
	Layout     layout.Layout
	Logger     *slog.Logger
	ErrorMsg   string
	Width      int
	Height     int
}

// panel is implemented by every component.
type panel interface {
	dispatch.Component
	View() string
	SetArea(r area.Rect)
}

// New builds the components, registers them in focus order and loads the
// library root.
func New(cfg *config.Config, transport player.Transport, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root := cfg.DefaultFolder
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Model{}, errmsg.Wrap(errmsg.ErrIO, errmsg.OpInitialize, "", err)
		}
		root = wd
	}

	icons.Init(cfg.Icons)
	transport.SetVolume(cfg.InitialVolume())

	m := Model{
		Browser:   librarybrowser.New(root),
		Tracks:    tracklist.New(),
		Queue:     queuepanel.New(),
		Controls:  playerbar.New(transport),
		Volume:    volume.New(transport.Volume(), cfg.GetVolumeStep()),
		Transport: transport,
		Keys:      keymap.NewResolver(keymap.Bindings),
		Help:      help.New(),
		Logger:    logger,
		Dispatcher: dispatch.New(
			dispatch.WithLogger(logger),
			dispatch.WithMaxCascade(cfg.MaxCascade()),
		),
	}

	for _, name := range ui.ComponentNames() {
		if err := m.Dispatcher.Register(name, m.panel(name)); err != nil {
			return Model{}, err
		}
	}
	if err := m.Dispatcher.Start(); err != nil {
		return Model{}, err
	}

	m.apply(m.Dispatcher.DispatchAction(action.UI{Op: action.UIUpdateTheme, Theme: cfg.Theme}))
	if err := m.Browser.Load(); err != nil {
		m.ErrorMsg = errmsg.Message(err)
		logger.Warn("library root unreadable", "root", root, "err", err)
		return m, nil
	}
	m.apply(m.Dispatcher.DispatchAction(action.Metadata{Op: action.MetadataLoad, Path: m.Browser.Dir()}))
	return m, nil
}

// panel returns the component registered under name.
func (m *Model) panel(name string) panel {
	switch name {
	case ui.LibraryBrowser:
		return m.Browser
	case ui.TrackList:
		return m.Tracks
	case ui.Playlist:
		return m.Queue
	case ui.Controls:
		return m.Controls
	case ui.Volume:
		return m.Volume
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), WatchTrackFinished(m.Transport))
}
