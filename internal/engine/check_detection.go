package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// IsCheck reports whether the piece that just moved attacks the opposing
// king. Only that piece is considered, not every attacker, and a king is
// never treated as giving check.
func IsCheck(board *chess.Board, moved chess.Placement) bool {
	if moved.Piece.IsEmpty() || moved.Piece.Kind == chess.King {
		return false
	}
	kingLoc, ok := board.KingLocation(moved.Piece.Colour.Opposite())
	if !ok {
		return false
	}
	return attacks(board, moved, kingLoc)
}

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingLoc, ok := board.KingLocation(colour)
	if !ok {
		return false // No king on the board
	}
	return IsSquareAttacked(board, kingLoc, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by any piece of
// the given colour.
func IsSquareAttacked(board *chess.Board, loc chess.Location, byColour chess.Colour) bool {
	for _, p := range board.Pieces(byColour) {
		if attacks(board, p, loc) {
			return true
		}
	}
	return false
}

// attacks re-applies the piece's movement geometry against target, without
// the capture and occupancy gating of a real move.
func attacks(board *chess.Board, p chess.Placement, target chess.Location) bool {
	from := p.At

	switch p.Piece.Kind {
	case chess.Pawn:
		// Forward diagonal, one square.
		return SameDiagonal(from, target) &&
			ChebyshevDistance(from, target) == 1 &&
			target.Row-from.Row == p.Piece.Colour.Forward()

	case chess.Knight:
		return KnightMove(from, target)

	case chess.Bishop:
		return SameDiagonal(from, target) && FreePath(board, from, target)

	case chess.Rook:
		return SameLine(from, target) && FreePath(board, from, target)

	case chess.Queen:
		return (SameLine(from, target) || SameDiagonal(from, target)) && FreePath(board, from, target)

	case chess.King:
		return from != target && ChebyshevDistance(from, target) == 1
	}

	return false
}
