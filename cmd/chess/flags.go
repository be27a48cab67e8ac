// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Start new games from this FEN position")
	helpFile = flag.String("help-file", "", "Print this file for :h instead of the built-in help")

	// Save options
	saveDir   = flag.String("save-dir", "saves", "Directory holding saved games")
	storeKind = flag.String("store", "text", "Save backend: text or badger")
	dbDir     = flag.String("db", "", "Badger database directory (default: <save-dir>/db)")

	// Maintenance
	checkSaves = flag.Bool("check-saves", false, "Replay every saved game, report problems and exit")
	jobs       = flag.Int("j", runtime.NumCPU(), "Parallel replays for -check-saves")

	// Logging
	verbosity = flag.Int("v", config.Normal, "Log verbosity: 0 quiet, 1 session events, 2 every move")
	quiet     = flag.Bool("q", false, "Same as -v 0")
	logFile   = flag.String("log", "", "Write log messages to this file (default: stderr)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.HelpFile = *helpFile
	applyStoreFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
}

// applyStoreFlags configures the save backend.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Backend = config.StoreBackend(*storeKind)
	cfg.Store.SaveDir = *saveDir
	cfg.Store.BadgerDir = *dbDir
}
