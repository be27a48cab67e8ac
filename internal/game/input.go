package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// ParseMove reads a four-character coordinate move such as "a2a3".
// Surrounding whitespace is ignored.
func ParseMove(input string) (from, to chess.Location, err error) {
	move := strings.TrimSpace(input)
	if move == "" {
		return from, to, errors.ErrNoInput
	}
	if len(move) != 4 {
		return from, to, fmt.Errorf("%s: %w", move, errors.ErrInvalidLocation)
	}

	if from, err = chess.ParseLocation(move[:2]); err != nil {
		return from, to, fmt.Errorf("%s: %w", move, errors.ErrInvalidLocation)
	}
	if to, err = chess.ParseLocation(move[2:]); err != nil {
		return from, to, fmt.Errorf("%s: %w", move, errors.ErrInvalidLocation)
	}
	return from, to, nil
}
