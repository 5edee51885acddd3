package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/app"
	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/logging"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	logger, closer, err := logging.Open(cfg.LogFile(), cfg.Log.Level)
	if err != nil {
		fmt.Println(errmsg.FormatWith(errmsg.OpLogOpen, cfg.LogFile(), err))
		os.Exit(1)
	}
	defer closer.Close()

	m, err := app.New(cfg, player.NewNull(), logger)
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		closer.Close()
		os.Exit(1)
	}

	store := openSession(cfg, logger)
	if store != nil {
		defer store.Close()
		sess, err := store.Load()
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpSessionLoad, err))
		}
		m.Restore(sess)
	}

	logger.Info("starting", "root", m.Browser.Dir(), "components", m.Dispatcher.Names())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		closer.Close()
		os.Exit(1)
	}

	if fm, ok := final.(app.Model); ok && store != nil {
		if err := store.Save(fm.Session()); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpSessionSave, err))
		}
	}
}

// openSession returns nil when the session is disabled or unavailable; the
// player then starts fresh.
func openSession(cfg *config.Config, logger *slog.Logger) *state.Store {
	if cfg.Session.Disabled {
		return nil
	}
	store, err := state.Open(cfg.SessionFile())
	if err != nil {
		logger.Warn(errmsg.FormatWith(errmsg.OpSessionOpen, cfg.SessionFile(), err))
		return nil
	}
	return store
}
