package chess

// Piece is a (colour, role) pair as exchanged with callers.
type Piece struct {
	Colour Colour
	Role   Role
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Role.String()
}

// Unit is a piece standing on the board. Square always matches the cell
// holding the unit; Board.Place maintains this.
type Unit struct {
	Piece
	Square Square
	Moved  bool
}

// NewUnit creates an unmoved unit on sq.
func NewUnit(colour Colour, role Role, sq Square) Unit {
	return Unit{Piece: Piece{Colour: colour, Role: role}, Square: sq}
}

// Cell is one of the 64 board positions. EnPassant marks the cell directly
// in front of a pawn that may capture en passant on the current turn.
type Cell struct {
	Square    Square
	EnPassant bool

	unit     Unit
	occupied bool
}

// Unit returns the occupant of the cell, if any.
func (c Cell) Unit() (Unit, bool) {
	return c.unit, c.occupied
}

// Empty reports whether the cell has no occupant.
func (c Cell) Empty() bool {
	return !c.occupied
}

// Board holds the 64 cells in rank-major order plus the square of a pawn that
// can currently be captured en passant. It is a plain value: assigning a
// Board produces an independent copy.
type Board struct {
	cells [NumSquares]Cell

	epVictim Square
	epActive bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i].Square = SquareAt(i)
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = *NewBoard()

	backRank := [BoardSize]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Place(Square{file, White.HomeRank()}, NewUnit(White, backRank[file], Square{}))
		b.Place(Square{file, White.PawnRank()}, NewUnit(White, Pawn, Square{}))
		b.Place(Square{file, Black.PawnRank()}, NewUnit(Black, Pawn, Square{}))
		b.Place(Square{file, Black.HomeRank()}, NewUnit(Black, backRank[file], Square{}))
	}
}

// Cell returns a snapshot of the cell at sq.
func (b *Board) Cell(sq Square) Cell {
	return b.cells[sq.Index()]
}

// At returns the unit on sq, if any.
func (b *Board) At(sq Square) (Unit, bool) {
	return b.cells[sq.Index()].Unit()
}

// Place puts u on sq, updating its coordinates, and returns the previous occupant.
func (b *Board) Place(sq Square, u Unit) (Unit, bool) {
	c := &b.cells[sq.Index()]
	prev, had := c.unit, c.occupied
	u.Square = sq
	c.unit = u
	c.occupied = true
	return prev, had
}

// Remove clears sq and returns the unit that stood there, if any.
func (b *Board) Remove(sq Square) (Unit, bool) {
	c := &b.cells[sq.Index()]
	prev, had := c.unit, c.occupied
	c.unit = Unit{}
	c.occupied = false
	return prev, had
}

// Step returns the cell one step from sq in direction d, or false if that
// step leaves the board.
func (b *Board) Step(sq Square, d Direction) (Cell, bool) {
	df, dr := d.Delta()
	next, ok := sq.Offset(df, dr)
	if !ok {
		return Cell{}, false
	}
	return b.cells[next.Index()], true
}

// SetEnPassant sets or clears the en passant flag of the cell at sq.
func (b *Board) SetEnPassant(sq Square, enabled bool) {
	b.cells[sq.Index()].EnPassant = enabled
}

// SetEnPassantVictim records the pawn that may be captured en passant.
func (b *Board) SetEnPassantVictim(sq Square) {
	b.epVictim = sq
	b.epActive = true
}

// EnPassantVictim returns the square of the pawn that may be captured en passant.
func (b *Board) EnPassantVictim() (Square, bool) {
	return b.epVictim, b.epActive
}

// ClearEnPassant removes every en passant flag and the recorded victim.
func (b *Board) ClearEnPassant() {
	for i := range b.cells {
		b.cells[i].EnPassant = false
	}
	b.epVictim = Square{}
	b.epActive = false
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for i := range b.cells {
		c := &b.cells[i]
		if c.occupied && c.unit.Colour == colour && c.unit.Role == King {
			return c.Square, true
		}
	}
	return Square{}, false
}

// Units returns the units of the given colour in index order.
func (b *Board) Units(colour Colour) []Unit {
	var units []Unit
	for i := range b.cells {
		if b.cells[i].occupied && b.cells[i].unit.Colour == colour {
			units = append(units, b.cells[i].unit)
		}
	}
	return units
}

// Snapshot returns the 64 occupants in rank-major order; nil marks an empty cell.
func (b *Board) Snapshot() []*Piece {
	pieces := make([]*Piece, NumSquares)
	for i := range b.cells {
		if u, ok := b.cells[i].Unit(); ok {
			p := u.Piece
			pieces[i] = &p
		}
	}
	return pieces
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String returns a compact single-line description, one letter per cell from rank 7 down.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			u, ok := b.At(Square{file, rank})
			switch {
			case !ok:
				buf = append(buf, '.')
			case u.Colour == White:
				buf = append(buf, u.Role.Letter())
			default:
				buf = append(buf, u.Role.Letter()+('a'-'A'))
			}
		}
		if rank > 0 {
			buf = append(buf, '/')
		}
	}
	return string(buf)
}
