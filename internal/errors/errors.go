// Package errors provides sentinel errors and error types for the chess
// engine. It defines the move-rejection conditions and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move validation. Every one of these is recoverable:
// the board is left unchanged and the same player moves again.
var (
	// ErrInvalidLocation indicates a malformed coordinate string.
	ErrInvalidLocation = errors.New("not a valid location, use a file a-h and a rank 1-8 (ex. a2a3)")

	// ErrNoPieceAtSource indicates the starting square is empty.
	ErrNoPieceAtSource = errors.New("there is not a piece present in the selected starting location")

	// ErrFriendlyCapture indicates the destination holds a piece of the mover's colour.
	ErrFriendlyCapture = errors.New("cannot move your piece on top of another one of your pieces")

	// ErrWrongPlayerTurn indicates an attempt to move the opponent's piece.
	ErrWrongPlayerTurn = errors.New("trying to move an opposing player's piece")

	// ErrPathBlocked indicates a piece stands between the source and destination.
	ErrPathBlocked = errors.New("cannot step over other pieces")

	// ErrIllegalGeometry indicates the destination is not reachable by the piece's movement rule.
	ErrIllegalGeometry = errors.New("illegal move for piece")

	// ErrSameSquare indicates the source and destination are the same square.
	ErrSameSquare = errors.New("starting and ending location are the same")

	// ErrKingExposed indicates the move would leave the mover's own king attacked.
	ErrKingExposed = errors.New("move would leave your king in check")

	// ErrNoInput indicates an empty command line.
	ErrNoInput = errors.New("no input text given, please type a move or a command")
)

// Sentinel errors outside move validation.
var (
	// ErrGameOver indicates the game has ended in checkmate. It is
	// terminal, unlike the move errors above.
	ErrGameOver = errors.New("game over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseFailure indicates a malformed line in a saved move history.
	ErrParseFailure = errors.New("parse failure")

	// ErrGameNotFound indicates an unknown session ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrSaveNotFound indicates a save name with no stored history.
	ErrSaveNotFound = errors.New("save not found")

	// ErrInvalidSaveName indicates a save name that is empty or contains
	// path separators.
	ErrInvalidSaveName = errors.New("invalid save name")
)

var moveErrors = []error{
	ErrInvalidLocation,
	ErrNoPieceAtSource,
	ErrFriendlyCapture,
	ErrWrongPlayerTurn,
	ErrPathBlocked,
	ErrIllegalGeometry,
	ErrSameSquare,
	ErrKingExposed,
	ErrNoInput,
}

// IsMoveError reports whether err is a recoverable move rejection.
func IsMoveError(err error) bool {
	for _, sentinel := range moveErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// MoveError wraps a move rejection with the squares and piece involved.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	From  string // Source square in algebraic notation (if known)
	To    string // Destination square in algebraic notation (if known)
	Piece string // Name of the moving piece (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" && e.To != "" {
		parts = append(parts, e.From+e.To)
	} else if e.From != "" {
		parts = append(parts, e.From)
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "invalid move"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for saved move histories.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file or save name
	Line int    // Line number (1-based)
	Got  string // What was found
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
