package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a browser version of the game.

Every browser tab plays its own session over a websocket. Scores go to
the same database as the terminal and SSH front ends.

Examples:
  t2048 web                # Listen on :8048
  t2048 web --addr :8080   # Listen on port 8080

Then open http://localhost:8048 in a browser.`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8048", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger := newLogger("t2048-web")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := web.DefaultConfig()
	cfg.Addr = flagWebAddr
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Rules = t2048.Rules()

	srv := web.New(cfg, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
