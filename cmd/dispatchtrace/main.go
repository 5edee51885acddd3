// Command dispatchtrace feeds a key script through the dispatcher without a
// terminal and prints what every pass did.
//
//	dispatchtrace [-root DIR] tab enter j a n q
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/llehouerou/wavedeck/internal/app"
	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/dispatch"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/logging"
	"github.com/llehouerou/wavedeck/internal/player"
)

func main() {
	root := flag.String("root", "", "library folder (default: configured folder or cwd)")
	level := flag.String("log", "warn", "dispatcher log level written to stderr")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if *root != "" {
		cfg.DefaultFolder = *root
	}

	logger := logging.NewWriter(os.Stderr, *level)
	m, err := app.New(cfg, player.NewNull(), logger)
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpInitialize, err))
	}
	if m.ErrorMsg != "" {
		log.Printf("warning: %s", m.ErrorMsg)
	}

	for i, k := range flag.Args() {
		if k == "space" {
			k = " "
		}
		ev, ok := m.Keys.Resolve(k)
		if !ok {
			log.Printf("[%d] %q: unbound", i, k)
			continue
		}
		res := m.Dispatcher.HandleInput(ev)
		fmt.Printf("[%d] %-6q %s -> focus=%s\n", i, k, ev, m.Dispatcher.CurrentFocus())
		printResult(logger, res)
		if res.Quit {
			fmt.Println("quit")
			return
		}
	}
	fmt.Printf("transport: %s %s volume=%d\n", m.Transport.State(), m.Transport.Track(), m.Transport.Volume())
}

func printResult(logger *slog.Logger, res dispatch.Result) {
	names := make([]string, len(res.Actions))
	for i, a := range res.Actions {
		names[i] = a.ActionType()
	}
	fmt.Printf("    actions=[%s] deliveries=%d duplicates=%d inert=%d\n",
		strings.Join(names, " "), res.Deliveries, res.Duplicates, res.Inert)
	if res.Truncated {
		fmt.Println("    truncated")
	}
	for _, err := range res.Errors {
		fmt.Printf("    error: %s\n", errmsg.Message(err))
		logger.Debug("pass error", "err", err)
	}
}
