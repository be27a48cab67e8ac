// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Server options
	addr        = flag.String("addr", ":8080", "Listen address")
	origins     = flag.String("origins", "*", "Allowed CORS origins, comma separated")
	noAccessLog = flag.Bool("no-access-log", false, "Don't log each request")

	// Game options
	startFEN = flag.String("fen", "", "Start new games from this FEN position")

	// Save options
	saveDir   = flag.String("save-dir", "saves", "Directory holding saved games")
	storeKind = flag.String("store", "badger", "Save backend: text or badger")
	dbDir     = flag.String("db", "", "Badger database directory (default: <save-dir>/db)")

	// Logging
	verbosity = flag.Int("v", config.Normal, "Log verbosity: 0 quiet, 1 session events, 2 every move")
	logFile   = flag.String("log", "", "Write log messages to this file (default: stderr)")

	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity

	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.Server.LogRequests = !*noAccessLog

	cfg.Store.Backend = config.StoreBackend(*storeKind)
	cfg.Store.SaveDir = *saveDir
	cfg.Store.BadgerDir = *dbDir
}
