package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Location is a board coordinate. Row and Col are zero-based, so a1 is
// {0, 0} and h8 is {7, 7}. Locations are values and are never mutated
// in place.
type Location struct {
	Row int
	Col int
}

// NewLocation builds a Location from one-based row and column numbers
// (1..8).
func NewLocation(row, col int) (Location, error) {
	loc := Location{Row: row - 1, Col: col - 1}
	if !loc.Valid() {
		return Location{}, fmt.Errorf("row %d, column %d: %w", row, col, errors.ErrInvalidLocation)
	}
	return loc, nil
}

// ParseLocation parses algebraic notation such as "e4".
func ParseLocation(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidLocation)
	}
	file, rank := s[0], s[1]
	if file < FileBase || file > LastFile || rank < RankBase || rank > LastRank {
		return Location{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidLocation)
	}
	return Location{Row: int(rank - RankBase), Col: int(file - FileBase)}, nil
}

// MustParseLocation is like ParseLocation but panics on malformed input.
// It is intended for constants and tests.
func MustParseLocation(s string) Location {
	loc, err := ParseLocation(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// Valid reports whether the location lies on the board.
func (l Location) Valid() bool {
	return l.Row >= 0 && l.Row < BoardSize && l.Col >= 0 && l.Col < BoardSize
}

// String returns the algebraic form of the location, e.g. "e4".
func (l Location) String() string {
	if !l.Valid() {
		return "??"
	}
	return string([]byte{byte(FileBase + l.Col), byte(RankBase + l.Row)})
}

// Less orders locations by row, then column.
func (l Location) Less(o Location) bool {
	if l.Row != o.Row {
		return l.Row < o.Row
	}
	return l.Col < o.Col
}

// Offset returns the location shifted by the given row and column deltas.
// The result may be off the board; check Valid.
func (l Location) Offset(dRow, dCol int) Location {
	return Location{Row: l.Row + dRow, Col: l.Col + dCol}
}

// AllLocations returns all 64 squares, a1 first and h8 last.
func AllLocations() []Location {
	locs := make([]Location, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			locs = append(locs, Location{Row: row, Col: col})
		}
	}
	return locs
}
