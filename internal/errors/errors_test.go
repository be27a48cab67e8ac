package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidLocation, ErrNoPieceAtSource, ErrFriendlyCapture, ErrWrongPlayerTurn,
		ErrPathBlocked, ErrIllegalGeometry, ErrSameSquare, ErrKingExposed, ErrNoInput,
		ErrGameOver, ErrInvalidFEN, ErrInvalidConfig, ErrParseFailure, ErrGameNotFound,
		ErrSaveNotFound,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestIsMoveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"path blocked", ErrPathBlocked, true},
		{"wrapped geometry", &MoveError{Err: ErrIllegalGeometry, From: "e2", To: "e5"}, true},
		{"king exposed", fmt.Errorf("e1e2: %w", ErrKingExposed), true},
		{"game over is terminal", ErrGameOver, false},
		{"parse failure", ErrParseFailure, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMoveError(tt.err); got != tt.want {
				t.Errorf("IsMoveError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrPathBlocked,
				From:  "a1",
				To:    "a8",
				Piece: "Rook",
			},
			contains: []string{"Rook", "a1a8", "cannot step over"},
		},
		{
			name:     "source only",
			err:      &MoveError{Err: ErrNoPieceAtSource, From: "e4"},
			contains: []string{"e4", "not a piece"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrSameSquare},
			contains: []string{"same"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalGeometry, From: "g1", To: "g3", Piece: "Knight"}
	wrapped := fmt.Errorf("replaying save: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Piece != "Knight" {
		t.Errorf("extracted.Piece = %q, want %q", extracted.Piece, "Knight")
	}
	if !errors.Is(wrapped, ErrIllegalGeometry) {
		t.Error("errors.Is(wrapped, ErrIllegalGeometry) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:  ErrParseFailure,
		File: "opening.txt",
		Line: 7,
		Got:  "e2 e4",
	}

	msg := err.Error()
	for _, s := range []string{"opening.txt:7", "e2 e4", "parse failure"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}

	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidFEN, "position %d", 3)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "position 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
