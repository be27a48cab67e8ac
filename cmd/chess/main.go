// chess is a two-player chess game played by typing coordinate moves in a
// terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/console"
	"github.com/lgbarn/chessboard-go/internal/game"
	"github.com/lgbarn/chessboard-go/internal/history"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *checkSaves {
		failed, err := runCheckSaves(cfg, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	store, err := history.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := game.NewSession(cfg)
	if err != nil {
		return err
	}

	c, err := console.New(cfg, os.Stdin, session, store)
	if err != nil {
		return err
	}
	return c.Run()
}

// runCheckSaves replays every saved game and prints one line per save. It
// returns the number of saves that failed to replay.
func runCheckSaves(cfg *config.Config, w io.Writer) (int, error) {
	store, err := history.Open(cfg.Store)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	reports, err := game.VerifySaves(cfg, store, *jobs)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, r := range reports {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(w, "%s: FAILED: %v\n", r.Name, r.Err)
		case r.Outcome == game.Checkmate:
			fmt.Fprintf(w, "%s: ok, %d moves, checkmate, %s wins\n", r.Name, r.Moves, r.Winner)
		default:
			fmt.Fprintf(w, "%s: ok, %d moves, %s to move\n", r.Name, r.Moves, r.ToMove)
		}
	}
	fmt.Fprintf(w, "%d saved game(s), %d failed\n", len(reports), failed)
	return failed, nil
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
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess by typing moves such as e2e4. Type :h in game for commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
