package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// ChebyshevDistance returns max(|Δrow|, |Δcol|), the number of king moves
// between two squares.
func ChebyshevDistance(a, b chess.Location) int {
	rowDiff := abs(a.Row - b.Row)
	colDiff := abs(a.Col - b.Col)
	if rowDiff > colDiff {
		return rowDiff
	}
	return colDiff
}

// KnightMove reports whether from and to are a knight's L apart.
func KnightMove(from, to chess.Location) bool {
	colDiff := abs(to.Col - from.Col)
	rowDiff := abs(to.Row - from.Row)
	return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)
}

// SameDiagonal reports whether two distinct squares share a diagonal or
// anti-diagonal.
func SameDiagonal(a, b chess.Location) bool {
	return a != b && abs(a.Row-b.Row) == abs(a.Col-b.Col)
}

// SameLine reports whether two distinct squares share a row or column.
func SameLine(a, b chess.Location) bool {
	return a != b && (a.Row == b.Row || a.Col == b.Col)
}

// FreeHorizontalPath reports whether every square strictly between from
// and to on their shared row is empty. It is false when the squares are
// not on the same row.
func FreeHorizontalPath(board *chess.Board, from, to chess.Location) bool {
	if from.Row != to.Row {
		return false
	}
	return isPathClear(board, from, to)
}

// FreeVerticalPath reports whether every square strictly between from and
// to on their shared column is empty.
func FreeVerticalPath(board *chess.Board, from, to chess.Location) bool {
	if from.Col != to.Col {
		return false
	}
	return isPathClear(board, from, to)
}

// FreeDiagonalPath checks the a1-h8 direction: rows and columns increase
// together.
func FreeDiagonalPath(board *chess.Board, from, to chess.Location) bool {
	if to.Row-from.Row != to.Col-from.Col {
		return false
	}
	return isPathClear(board, from, to)
}

// FreeAntidiagonalPath checks the a8-h1 direction: rows decrease as
// columns increase.
func FreeAntidiagonalPath(board *chess.Board, from, to chess.Location) bool {
	if to.Row-from.Row != from.Col-to.Col {
		return false
	}
	return isPathClear(board, from, to)
}

// FreePath picks the predicate matching the line from and to lie on. It is
// false for squares that share no row, column or diagonal.
func FreePath(board *chess.Board, from, to chess.Location) bool {
	switch {
	case from.Row == to.Row:
		return FreeHorizontalPath(board, from, to)
	case from.Col == to.Col:
		return FreeVerticalPath(board, from, to)
	case (to.Row-from.Row)*(to.Col-from.Col) > 0:
		return FreeDiagonalPath(board, from, to)
	default:
		return FreeAntidiagonalPath(board, from, to)
	}
}

// isPathClear walks from the lower endpoint (by row, then column) towards
// the other one, one step at a time, excluding both endpoints. Callers
// guarantee the endpoints are aligned.
func isPathClear(board *chess.Board, from, to chess.Location) bool {
	if to.Less(from) {
		from, to = to, from
	}
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	loc := from.Offset(rowDir, colDir)
	for loc != to && loc.Valid() {
		if !board.IsEmpty(loc) {
			return false
		}
		loc = loc.Offset(rowDir, colDir)
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
