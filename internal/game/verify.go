package game

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/history"
	"github.com/lgbarn/chessboard-go/internal/worker"
)

// SaveReport is the outcome of replaying one saved game.
type SaveReport struct {
	Name    string
	Moves   int
	ToMove  chess.Colour
	Outcome Outcome
	Winner  chess.Colour
	Err     error
}

// VerifySaves replays every game in store from the configured starting
// position, using up to workers goroutines. Reports come back sorted by
// name. Only a failure to list the store is returned as an error.
func VerifySaves(cfg *config.Config, store history.Store, workers int) ([]SaveReport, error) {
	names, err := store.List()
	if err != nil {
		return nil, err
	}

	replay := func(name string) (SaveReport, error) {
		rep := SaveReport{Name: name}
		s, err := NewSession(cfg)
		if err != nil {
			return rep, err
		}
		if err := s.Load(store, name); err != nil {
			return rep, err
		}
		rep.Moves = len(s.moves)
		rep.ToMove = s.ToMove()
		rep.Outcome = s.Outcome()
		rep.Winner = s.Winner()
		return rep, nil
	}

	results := worker.Map(names, replay, worker.WithWorkers(workers))

	reports := make([]SaveReport, len(results))
	for i, r := range results {
		reports[i] = r.Output
		reports[i].Name = r.Input
		reports[i].Err = r.Err
	}
	cfg.Logf(config.Verbose, "verified %d saved games with %d workers", len(reports), workers)
	return reports, nil
}
