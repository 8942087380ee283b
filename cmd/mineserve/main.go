// Command mineserve runs the HTTP adapter over the generator and solver:
// GET /boards to generate a board, POST /moves to ask the solver for its
// next deductive step.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/genconfig"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/httpapi"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/stats"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request generation deadline")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfgStore, err := genconfig.Load()
	if err != nil {
		logger.Warn("using default generator config", "error", err)
	}
	statsStore, err := stats.Load()
	if err != nil {
		logger.Warn("starting with an empty stats store", "error", err)
	}

	server := httpapi.NewServer(cfgStore.Config, statsStore, logger)
	server.Timeout = *timeout

	logger.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, server.Routes()); err != nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}
