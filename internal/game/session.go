// Package game runs a chess session: it parses coordinate input, enforces
// turn order, applies moves through the engine, tracks check and
// checkmate, and records the history for saving and replay.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/history"
)

// Outcome is the state of play.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	if o == Checkmate {
		return "checkmate"
	}
	return "in progress"
}

// Result describes an accepted move.
type Result struct {
	Move      engine.MoveApplied
	Check     bool // the opponent's king is attacked after the move
	Checkmate bool
}

// Session is one game. It is not safe for concurrent use.
type Session struct {
	id  string
	cfg *config.Config

	start       *chess.Board
	startToMove chess.Colour

	board   *chess.Board
	toMove  chess.Colour
	moves   []history.Move
	check   bool
	outcome Outcome
	winner  chess.Colour
}

// NewSession starts a game from cfg.StartFEN, or from the standard
// position when it is empty.
func NewSession(cfg *config.Config) (*Session, error) {
	start := chess.NewInitialBoard()
	toMove := chess.White
	if cfg.StartFEN != "" {
		var err error
		start, toMove, err = engine.NewBoardFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "starting position")
		}
	}

	s := &Session{
		id:          uuid.New().String(),
		cfg:         cfg,
		start:       start,
		startToMove: toMove,
	}
	s.Reset()
	cfg.Logf(config.Verbose, "game %s: new session", s.id)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board { return s.board.Copy() }

// ToMove returns the colour whose turn it is.
func (s *Session) ToMove() chess.Colour { return s.toMove }

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool { return s.check }

// Outcome returns the state of play.
func (s *Session) Outcome() Outcome { return s.outcome }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.outcome != InProgress }

// Winner returns the winning colour. Only meaningful when Over.
func (s *Session) Winner() chess.Colour { return s.winner }

// Moves returns the applied moves in play order.
func (s *Session) Moves() []history.Move {
	return append([]history.Move(nil), s.moves...)
}

// LegalMoves lists the moves the side to move can make, in coordinate
// notation. It is empty once the game is over.
func (s *Session) LegalMoves() []string {
	out := []string{}
	if s.Over() {
		return out
	}
	for _, mv := range engine.LegalMoves(s.board, s.toMove) {
		out = append(out, mv.String())
	}
	return out
}

// Render returns the board diagram.
func (s *Session) Render() string { return chess.Render(s.board) }

// FEN returns the current position in FEN.
func (s *Session) FEN() string { return engine.BoardToFEN(s.board, s.toMove) }

// Reset returns to the starting position with an empty history.
func (s *Session) Reset() {
	s.board = s.start.Copy()
	s.toMove = s.startToMove
	s.moves = nil
	s.outcome = InProgress
	s.winner = chess.White
	s.check = engine.IsInCheck(s.board, s.toMove)
}

// Play parses a coordinate move such as "e2e4" and makes it for the side
// to move.
func (s *Session) Play(input string) (Result, error) {
	from, to, err := ParseMove(input)
	if err != nil {
		return Result{}, err
	}
	return s.Move(from, to)
}

// Move makes a move for the side to move. A rejected move leaves the
// session unchanged and the same side moves again.
func (s *Session) Move(from, to chess.Location) (Result, error) {
	if s.Over() {
		return Result{}, fmt.Errorf("winner is %s: %w", s.winner, errors.ErrGameOver)
	}

	if err := engine.CheckMoveAs(s.board, s.toMove, from, to); err != nil {
		return Result{}, err
	}
	if engine.ExposesKing(s.board, from, to) {
		return Result{}, &errors.MoveError{
			Err:   errors.ErrKingExposed,
			From:  from.String(),
			To:    to.String(),
			Piece: s.board.Get(from).Kind.String(),
		}
	}

	mv, err := engine.AttemptMoveAs(s.board, s.toMove, from, to)
	if err != nil {
		return Result{}, err
	}

	mover, opponent := s.toMove, s.toMove.Opposite()
	res := Result{Move: mv}
	res.Check = engine.IsCheck(s.board, mv.Mover()) || engine.IsInCheck(s.board, opponent)
	if res.Check && engine.IsCheckmate(s.board, opponent) {
		res.Checkmate = true
		s.outcome = Checkmate
		s.winner = mover
	}

	s.moves = append(s.moves, history.Move{From: from, To: to})
	s.toMove = opponent
	s.check = res.Check

	s.cfg.Logf(config.Verbose, "game %s: %s %s check=%v", s.id, mover, mv, res.Check)
	if res.Checkmate {
		s.cfg.Logf(config.Normal, "game %s: checkmate, %s wins after %d moves", s.id, mover, len(s.moves))
	}
	return res, nil
}

// Replay resets the session and makes each move in order. If a move is
// rejected the session is reset again and a ParseError naming the
// 1-based move number is returned.
func (s *Session) Replay(name string, moves []history.Move) error {
	s.Reset()
	for i, m := range moves {
		if _, err := s.Move(m.From, m.To); err != nil {
			s.Reset()
			return &errors.ParseError{Err: err, File: name, Line: i + 1, Got: m.Line()}
		}
	}
	return nil
}

// Save stores the history under name.
func (s *Session) Save(store history.Store, name string) error {
	if err := store.Save(name, s.moves); err != nil {
		return err
	}
	s.cfg.Logf(config.Normal, "game %s: saved %d moves as %s", s.id, len(s.moves), name)
	return nil
}

// Load replaces the game with the history stored under name. If the save
// can't be read the game in progress is kept; if it fails to replay the
// session is left at the starting position.
func (s *Session) Load(store history.Store, name string) error {
	moves, err := store.Load(name)
	if err != nil {
		return err
	}
	if err := s.Replay(name, moves); err != nil {
		return err
	}
	s.cfg.Logf(config.Normal, "game %s: loaded %s, %d moves", s.id, name, len(moves))
	return nil
}
