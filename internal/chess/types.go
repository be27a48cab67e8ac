// Package chess provides core chess types: colours, pieces, board
// coordinates and the 8x8 board grid.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "WHITE"
	}
	return "BLACK"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the zero-based row the colour's pawns start on.
func (c Colour) HomeRow() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) && k >= 0 {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) && k >= 0 {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a kind.
// Unknown letters map to Empty.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// Piece is the value stored in a board square. The zero value is an
// empty square.
type Piece struct {
	Kind   Kind
	Colour Colour

	// Moved is set once the piece has made its first move. Only pawns
	// consult it (two-square first advance).
	Moved bool
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Letter returns the diagram letter: uppercase for White, lowercase for
// Black and a space for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the diagram letter as a string.
func (p Piece) String() string {
	return string(p.Letter())
}

// Placement is a piece together with the square it stands on.
type Placement struct {
	Piece Piece
	At    Location
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
	LastRank = RankBase + BoardSize - 1
	LastFile = FileBase + BoardSize - 1
)
