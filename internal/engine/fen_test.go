package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestNewBoardFromFEN_Initial(t *testing.T) {
	b, toMove, err := NewBoardFromFEN(InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, toMove, chess.White)
	testutil.AssertSameBoard(t, b, chess.NewInitialBoard())
	testutil.AssertEqual(t, BoardToFEN(b, toMove), InitialFEN)
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	b := chess.NewInitialBoard()
	play(t, b, "e2e4", "d7d5", "e4d5")

	got := BoardToFEN(b, chess.Black)
	want := "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	testutil.AssertEqual(t, got, want)

	back, toMove, err := NewBoardFromFEN(got)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, toMove, chess.Black)
	testutil.AssertEqual(t, chess.Render(back), chess.Render(b))
}

func TestNewBoardFromFEN_PawnMovedFlags(t *testing.T) {
	b, _, err := NewBoardFromFEN("4k3/p7/8/4P3/8/8/3P4/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertFalse(t, b.Get(testutil.Loc(t, "d2")).Moved, "d2 pawn is on its home row")
	testutil.AssertFalse(t, b.Get(testutil.Loc(t, "a7")).Moved, "a7 pawn is on its home row")
	testutil.AssertTrue(t, b.Get(testutil.Loc(t, "e5")).Moved, "e5 pawn has left its home row")

	// A moved pawn may no longer advance two squares.
	_, err = AttemptMove(b, testutil.Loc(t, "e5"), testutil.Loc(t, "e7"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalGeometry)
	_, err = AttemptMove(b, testutil.Loc(t, "d2"), testutil.Loc(t, "d4"))
	testutil.AssertNoError(t, err)
}

func TestNewBoardFromFEN_TracksKings(t *testing.T) {
	b, toMove, err := NewBoardFromFEN("7k/8/8/8/8/8/8/K7 b")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, toMove, chess.Black)

	white, ok := b.KingLocation(chess.White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, white.String(), "a1")
	black, ok := b.KingLocation(chess.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, black.String(), "h8")
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"missing ranks", "rnbqkbnr/pppppppp/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, tt.fen)
		})
	}
}
