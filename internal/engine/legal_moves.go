package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// MovePair represents a source-destination square pair.
type MovePair struct {
	From chess.Location
	To   chess.Location
}

// String returns the pair in coordinate notation, e.g. "g1f3".
func (m MovePair) String() string {
	return m.From.String() + m.To.String()
}

// ExposesKing reports whether making the move would leave the mover's own
// king attacked. The board is not modified.
func ExposesKing(board *chess.Board, from, to chess.Location) bool {
	piece, ok := board.PieceAt(from)
	if !ok {
		return false
	}
	return !tryMove(board, from, to, piece.Colour)
}

// HasLegalMoves returns true if the given colour has at least one move
// that passes validation and leaves its king safe.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		for _, to := range chess.AllLocations() {
			if CheckMove(board, p.At, to) != nil {
				continue
			}
			if tryMove(board, p.At, to, colour) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every move for the given colour that passes validation
// and leaves its king safe, in a1..h8 order of source then destination.
func LegalMoves(board *chess.Board, colour chess.Colour) []MovePair {
	var moves []MovePair
	for _, p := range board.Pieces(colour) {
		for _, to := range chess.AllLocations() {
			if CheckMove(board, p.At, to) != nil {
				continue
			}
			if tryMove(board, p.At, to, colour) {
				moves = append(moves, MovePair{From: p.At, To: to})
			}
		}
	}
	return moves
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Location, colour chess.Colour) bool {
	testBoard := board.Copy()
	applyMove(testBoard, from, to)
	return !IsInCheck(testBoard, colour)
}
