// chess-server serves chess games over an HTTP JSON API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/history"
	"github.com/lgbarn/chessboard-go/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := history.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	app := server.New(cfg, server.NewManager(cfg, store))

	errc := make(chan error, 1)
	go func() {
		cfg.Logf(config.Normal, "listening on %s, saves in %s store", cfg.Server.Addr, cfg.Store.Backend)
		errc <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	cfg.Logf(config.Normal, "shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serve chess games over HTTP.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRoutes:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games              start a game\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games              list games\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id          game state\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/games/:id          end a game\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/moves    {\"move\": \"e2e4\"}\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/reset    back to the start\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/save     {\"name\": \"...\"}\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/load     {\"name\": \"...\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/saves              saved game names\n")
}
