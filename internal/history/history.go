// Package history records the moves of a game and reads and writes them in
// the saved-game text format, one "<from>, <to>" pair per line.
package history

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// separator sits between the two squares of a saved move.
const separator = ", "

// Move is one applied move, source then destination.
type Move struct {
	From chess.Location
	To   chess.Location
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Line returns the move as stored in a save, e.g. "e2, e4".
func (m Move) Line() string {
	return m.From.String() + separator + m.To.String()
}

// Write writes moves in play order, one line each.
func Write(w io.Writer, moves []Move) error {
	bw := bufio.NewWriter(w)
	for _, m := range moves {
		if _, err := bw.WriteString(m.Line() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a saved history. Blank lines are skipped. name labels any
// ParseError and is usually the save name.
func Read(r io.Reader, name string) ([]Move, error) {
	var moves []Move

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m, err := ParseLine(line)
		if err != nil {
			return nil, &errors.ParseError{Err: err, File: name, Line: lineNum, Got: line}
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return moves, nil
}

// ParseLine parses one "<from>, <to>" line. Whitespace around either square
// is ignored.
func ParseLine(line string) (Move, error) {
	fromStr, toStr, ok := strings.Cut(line, ",")
	if !ok {
		return Move{}, fmt.Errorf("missing comma: %w", errors.ErrParseFailure)
	}

	from, err := chess.ParseLocation(strings.TrimSpace(fromStr))
	if err != nil {
		return Move{}, fmt.Errorf("%v: %w", err, errors.ErrParseFailure)
	}
	to, err := chess.ParseLocation(strings.TrimSpace(toStr))
	if err != nil {
		return Move{}, fmt.Errorf("%v: %w", err, errors.ErrParseFailure)
	}
	return Move{From: from, To: to}, nil
}
