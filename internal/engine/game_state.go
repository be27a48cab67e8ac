package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// IsCheckmate returns true if the given colour's king is attacked and no
// legal reply removes the attack.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
