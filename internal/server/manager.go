package server

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/game"
	"github.com/lgbarn/chessboard-go/internal/history"
)

// State is the JSON view of a session.
type State struct {
	ID      string   `json:"id"`
	Board   string   `json:"board"`
	FEN     string   `json:"fen"`
	ToMove  string   `json:"toMove"`
	Check   bool     `json:"check"`
	Outcome string   `json:"outcome"`
	Winner  string   `json:"winner,omitempty"`
	Moves   []string `json:"moves"`
	Legal   []string `json:"legalMoves"`
}

func stateOf(s *game.Session) State {
	st := State{
		ID:      s.ID(),
		Board:   s.Render(),
		FEN:     s.FEN(),
		ToMove:  s.ToMove().String(),
		Check:   s.InCheck(),
		Outcome: s.Outcome().String(),
		Moves:   []string{},
		Legal:   s.LegalMoves(),
	}
	if s.Over() {
		st.Winner = s.Winner().String()
	}
	for _, m := range s.Moves() {
		st.Moves = append(st.Moves, m.String())
	}
	return st
}

// Manager holds the live sessions. Each session is only touched while the
// manager's lock is held, so a session sees one request at a time.
type Manager struct {
	cfg   *config.Config
	store history.Store

	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewManager creates an empty Manager saving games to store.
func NewManager(cfg *config.Config, store history.Store) *Manager {
	return &Manager{
		cfg:      cfg,
		store:    store,
		sessions: make(map[string]*game.Session),
	}
}

// Create starts a new session.
func (m *Manager) Create() (State, error) {
	s, err := game.NewSession(m.cfg)
	if err != nil {
		return State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	m.cfg.Logf(config.Normal, "game %s: created, %d live", s.ID(), len(m.sessions))
	return stateOf(s), nil
}

// List returns the live session IDs, sorted.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := maps.Keys(m.sessions)
	slices.Sort(ids)
	return ids
}

// Get returns a session's state.
func (m *Manager) Get(id string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return State{}, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return stateOf(s), nil
}

// Delete ends a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	delete(m.sessions, id)
	return nil
}

// update runs fn on a session under the write lock and returns the
// resulting state, also when fn fails.
func (m *Manager) update(id string, fn func(*game.Session) error) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return State{}, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	err := fn(s)
	return stateOf(s), err
}

// Move plays a coordinate move such as "e2e4".
func (m *Manager) Move(id, move string) (State, error) {
	return m.update(id, func(s *game.Session) error {
		_, err := s.Play(move)
		return err
	})
}

// Reset returns a session to its starting position.
func (m *Manager) Reset(id string) (State, error) {
	return m.update(id, func(s *game.Session) error {
		s.Reset()
		return nil
	})
}

// Save stores a session's history under name.
func (m *Manager) Save(id, name string) (State, error) {
	return m.update(id, func(s *game.Session) error {
		return s.Save(m.store, name)
	})
}

// Load replaces a session's game with the history stored under name.
func (m *Manager) Load(id, name string) (State, error) {
	return m.update(id, func(s *game.Session) error {
		return s.Load(m.store, name)
	})
}

// Saves lists the stored game names.
func (m *Manager) Saves() ([]string, error) {
	return m.store.List()
}
