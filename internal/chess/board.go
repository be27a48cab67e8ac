package chess

// Board holds the 8x8 grid. Squares are indexed [row][col] with row 0 being
// rank 1. A piece's location is its grid slot; nothing else stores it.
type Board struct {
	squares [BoardSize][BoardSize]Piece

	// Keep track of where the two kings are for check detection. Indexed
	// by Colour. Only Set, Clear and the move functions write these.
	kings    [2]Location
	hasKings [2]bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition discards every piece and sets up the standard
// chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Set(Location{Row: 0, Col: col}, W(backRank[col]))
		b.Set(Location{Row: 1, Col: col}, W(Pawn))
		b.Set(Location{Row: 6, Col: col}, B(Pawn))
		b.Set(Location{Row: 7, Col: col}, B(backRank[col]))
	}
}

// Get returns the value at the given location. Off-board locations read
// as empty.
func (b *Board) Get(loc Location) Piece {
	if !loc.Valid() {
		return NoPiece
	}
	return b.squares[loc.Row][loc.Col]
}

// PieceAt returns the piece at loc and whether the square is occupied.
func (b *Board) PieceAt(loc Location) (Piece, bool) {
	p := b.Get(loc)
	return p, !p.IsEmpty()
}

// IsEmpty reports whether the square at loc is unoccupied.
func (b *Board) IsEmpty(loc Location) bool {
	return b.Get(loc).IsEmpty()
}

// Set places a piece at the given location, replacing whatever was there.
// Setting a king records its location. Off-board locations are ignored.
func (b *Board) Set(loc Location, p Piece) {
	if !loc.Valid() {
		return
	}
	prev := b.squares[loc.Row][loc.Col]
	if prev.Kind == King && b.kings[prev.Colour] == loc {
		b.hasKings[prev.Colour] = false
	}
	b.squares[loc.Row][loc.Col] = p
	if p.Kind == King {
		b.kings[p.Colour] = loc
		b.hasKings[p.Colour] = true
	}
}

// Clear empties the square at loc.
func (b *Board) Clear(loc Location) {
	b.Set(loc, NoPiece)
}

// MovePiece relocates the piece at from to the empty square to and marks
// it as moved. It returns false if from is empty.
func (b *Board) MovePiece(from, to Location) bool {
	p, ok := b.PieceAt(from)
	if !ok || !to.Valid() {
		return false
	}
	p.Moved = true
	b.Clear(from)
	b.Set(to, p)
	return true
}

// MovePieceCapturing is MovePiece for an occupied destination: the piece
// at to is discarded and returned.
func (b *Board) MovePieceCapturing(from, to Location) (Piece, bool) {
	if b.IsEmpty(from) || !to.Valid() {
		return NoPiece, false
	}
	captured := b.Get(to)
	b.Clear(to)
	b.MovePiece(from, to)
	return captured, true
}

// KingLocation returns where the king of the given colour stands.
func (b *Board) KingLocation(colour Colour) (Location, bool) {
	return b.kings[colour], b.hasKings[colour]
}

// Pieces returns every piece of the given colour with its location, in
// a1..h8 order.
func (b *Board) Pieces(colour Colour) []Placement {
	var out []Placement
	for _, loc := range AllLocations() {
		p := b.Get(loc)
		if !p.IsEmpty() && p.Colour == colour {
			out = append(out, Placement{Piece: p, At: loc})
		}
	}
	return out
}

// Placement returns the piece at loc as a Placement.
func (b *Board) Placement(loc Location) (Placement, bool) {
	p, ok := b.PieceAt(loc)
	return Placement{Piece: p, At: loc}, ok
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold the same pieces in the same
// squares.
func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares
}
