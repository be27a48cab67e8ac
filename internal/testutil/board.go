package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Loc parses an algebraic square and fails the test on malformed input.
func Loc(t *testing.T, s string) chess.Location {
	t.Helper()
	loc, err := chess.ParseLocation(s)
	if err != nil {
		t.Fatalf("ParseLocation(%q): %v", s, err)
	}
	return loc
}

// BoardWith builds a board holding only the given pieces, keyed by
// algebraic square.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for sq, p := range pieces {
		b.Set(Loc(t, sq), p)
	}
	return b
}

// AssertSameBoard compares two boards square by square, including the
// moved flags, and prints the diagram diff on mismatch.
func AssertSameBoard(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		msg = "boards differ"
	}
	if diff := cmp.Diff(chess.Render(want), chess.Render(got)); diff != "" {
		t.Errorf("%s (-want +got):\n%s", msg, diff)
		return
	}
	t.Errorf("%s: same diagram, different moved flags", msg)
}
