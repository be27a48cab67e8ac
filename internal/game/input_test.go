package game

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		from    string
		to      string
		wantErr error
	}{
		{"a2a3", "a2", "a3", nil},
		{"  g1f3\n", "g1", "f3", nil},
		{"h8a1", "h8", "a1", nil},
		{"e2e2", "e2", "e2", nil},
		{"", "", "", errors.ErrNoInput},
		{"\t", "", "", errors.ErrNoInput},
		{"e2e", "", "", errors.ErrInvalidLocation},
		{"e2 e4", "", "", errors.ErrInvalidLocation},
		{"e0e4", "", "", errors.ErrInvalidLocation},
		{"e2j4", "", "", errors.ErrInvalidLocation},
		{":q", "", "", errors.ErrInvalidLocation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			from, to, err := ParseMove(tt.input)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, from.String(), tt.from)
			testutil.AssertEqual(t, to.String(), tt.to)
		})
	}
}
