// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// MoveApplied describes a move that passed validation and changed the
// board.
type MoveApplied struct {
	Piece    chess.Piece // The mover as it stood before the move
	From     chess.Location
	To       chess.Location
	Captured chess.Piece // Empty unless the move was a capture
}

// IsCapture reports whether the move removed an opponent piece.
func (m MoveApplied) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// Mover returns the moved piece at its new square.
func (m MoveApplied) Mover() chess.Placement {
	p := m.Piece
	p.Moved = true
	return chess.Placement{Piece: p, At: m.To}
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m MoveApplied) String() string {
	return m.From.String() + m.To.String()
}

// CheckMove validates a move without touching the board. Turn order is not
// considered.
func CheckMove(board *chess.Board, from, to chess.Location) error {
	return validate(board, from, to, nil)
}

// CheckMoveAs is CheckMove for a given player: moving the opponent's piece
// fails with ErrWrongPlayerTurn.
func CheckMoveAs(board *chess.Board, player chess.Colour, from, to chess.Location) error {
	return validate(board, from, to, &player)
}

// AttemptMove validates a move and, if it is legal, applies it. A failed
// move leaves the board unchanged.
func AttemptMove(board *chess.Board, from, to chess.Location) (MoveApplied, error) {
	if err := CheckMove(board, from, to); err != nil {
		return MoveApplied{}, err
	}
	return applyMove(board, from, to), nil
}

// AttemptMoveAs is AttemptMove with turn-order enforcement.
func AttemptMoveAs(board *chess.Board, player chess.Colour, from, to chess.Location) (MoveApplied, error) {
	if err := CheckMoveAs(board, player, from, to); err != nil {
		return MoveApplied{}, err
	}
	return applyMove(board, from, to), nil
}

// applyMove performs the single grid mutation for an already validated move.
func applyMove(board *chess.Board, from, to chess.Location) MoveApplied {
	move := MoveApplied{Piece: board.Get(from), From: from, To: to}
	if board.IsEmpty(to) {
		board.MovePiece(from, to)
	} else {
		move.Captured, _ = board.MovePieceCapturing(from, to)
	}
	return move
}

// validate runs the checks in order, first failure wins: same square,
// empty source, friendly capture, turn, then the piece's own rule.
func validate(board *chess.Board, from, to chess.Location, player *chess.Colour) error {
	moveErr := func(err error, piece chess.Piece) error {
		e := &errors.MoveError{Err: err, From: from.String(), To: to.String()}
		if !piece.IsEmpty() {
			e.Piece = piece.Kind.String()
		}
		return e
	}

	if !from.Valid() || !to.Valid() {
		return moveErr(errors.ErrInvalidLocation, chess.NoPiece)
	}
	if from == to {
		return moveErr(errors.ErrSameSquare, chess.NoPiece)
	}

	piece, ok := board.PieceAt(from)
	if !ok {
		return &errors.MoveError{Err: errors.ErrNoPieceAtSource, From: from.String()}
	}

	target, occupied := board.PieceAt(to)
	if occupied && target.Colour == piece.Colour {
		return moveErr(errors.ErrFriendlyCapture, piece)
	}

	if player != nil && piece.Colour != *player {
		return moveErr(errors.ErrWrongPlayerTurn, piece)
	}

	if err := legalityCheck(board, piece, from, to); err != nil {
		return moveErr(err, piece)
	}
	return nil
}

// legalityCheck applies the movement rule of the piece's kind. The caller
// has already excluded same-square and friendly-capture moves.
func legalityCheck(board *chess.Board, piece chess.Piece, from, to chess.Location) error {
	switch piece.Kind {
	case chess.Pawn:
		return checkPawn(board, piece, from, to)

	case chess.Knight:
		if !KnightMove(from, to) {
			return fmt.Errorf("knight moves in an L, two squares one way and one the other: %w", errors.ErrIllegalGeometry)
		}
		return nil

	case chess.Bishop:
		if !SameDiagonal(from, to) {
			return fmt.Errorf("bishop moves along diagonals: %w", errors.ErrIllegalGeometry)
		}
		return requireFreePath(board, from, to)

	case chess.Rook:
		if !SameLine(from, to) {
			return fmt.Errorf("rook moves along ranks and files: %w", errors.ErrIllegalGeometry)
		}
		return requireFreePath(board, from, to)

	case chess.Queen:
		if !SameLine(from, to) && !SameDiagonal(from, to) {
			return fmt.Errorf("queen moves along ranks, files and diagonals: %w", errors.ErrIllegalGeometry)
		}
		return requireFreePath(board, from, to)

	case chess.King:
		if ChebyshevDistance(from, to) > 1 {
			return fmt.Errorf("king cannot move more than one square per move: %w", errors.ErrIllegalGeometry)
		}
		return nil
	}

	return errors.ErrNoPieceAtSource
}

// checkPawn handles forward advances (one square, two on the first move)
// and the one-square diagonal capture.
func checkPawn(board *chess.Board, piece chess.Piece, from, to chess.Location) error {
	limit := 1
	if !piece.Moved {
		limit = 2
	}
	if ChebyshevDistance(from, to) > limit {
		if limit == 2 {
			return fmt.Errorf("pawn cannot move more than two squares on its first move: %w", errors.ErrIllegalGeometry)
		}
		return fmt.Errorf("pawn cannot move more than one square: %w", errors.ErrIllegalGeometry)
	}

	forward := (to.Row - from.Row) * piece.Colour.Forward()
	if forward <= 0 {
		return fmt.Errorf("pawn can only move forward: %w", errors.ErrIllegalGeometry)
	}

	switch abs(to.Col - from.Col) {
	case 0:
		if !FreeVerticalPath(board, from, to) || !board.IsEmpty(to) {
			return errors.ErrPathBlocked
		}
		return nil
	case 1:
		if forward != 1 {
			return fmt.Errorf("pawn captures one square diagonally: %w", errors.ErrIllegalGeometry)
		}
		if board.IsEmpty(to) {
			return fmt.Errorf("pawn changes column only when capturing an opponent's piece: %w", errors.ErrIllegalGeometry)
		}
		return nil
	}

	return fmt.Errorf("pawn cannot change column by more than one: %w", errors.ErrIllegalGeometry)
}

func requireFreePath(board *chess.Board, from, to chess.Location) error {
	if !FreePath(board, from, to) {
		return errors.ErrPathBlocked
	}
	return nil
}
