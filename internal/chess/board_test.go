package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			if _, ok := b.At(SquareAt(i)); ok {
				t.Errorf("At(%v) occupied; want empty", SquareAt(i))
			}
		}
	})

	t.Run("cells carry their coordinates", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			c := b.Cell(SquareAt(i))
			if c.Square.Index() != i {
				t.Errorf("Cell(%d).Square.Index() = %d", i, c.Square.Index())
			}
			if c.EnPassant {
				t.Errorf("Cell(%d).EnPassant = true; want false", i)
			}
		}
	})

	t.Run("no en passant victim", func(t *testing.T) {
		if _, ok := b.EnPassantVictim(); ok {
			t.Error("EnPassantVictim() reported a victim on an empty board")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", Piece{White, Rook}},
		{"white knight b1", "b1", Piece{White, Knight}},
		{"white bishop c1", "c1", Piece{White, Bishop}},
		{"white queen d1", "d1", Piece{White, Queen}},
		{"white king e1", "e1", Piece{White, King}},
		{"white bishop f1", "f1", Piece{White, Bishop}},
		{"white knight g1", "g1", Piece{White, Knight}},
		{"white rook h1", "h1", Piece{White, Rook}},
		// Pawns
		{"white pawn a2", "a2", Piece{White, Pawn}},
		{"white pawn e2", "e2", Piece{White, Pawn}},
		{"black pawn a7", "a7", Piece{Black, Pawn}},
		{"black pawn h7", "h7", Piece{Black, Pawn}},
		// Black back rank
		{"black rook a8", "a8", Piece{Black, Rook}},
		{"black queen d8", "d8", Piece{Black, Queen}},
		{"black king e8", "e8", Piece{Black, King}},
		{"black knight g8", "g8", Piece{Black, Knight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.sq)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.sq, err)
			}
			u, ok := b.At(sq)
			if !ok {
				t.Fatalf("At(%s) empty; want %v", tt.sq, tt.piece)
			}
			if u.Piece != tt.piece {
				t.Errorf("At(%s) = %v; want %v", tt.sq, u.Piece, tt.piece)
			}
			if u.Square != sq {
				t.Errorf("unit on %s records square %v", tt.sq, u.Square)
			}
			if u.Moved {
				t.Errorf("unit on %s marked as moved", tt.sq)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for rank := 2; rank <= 5; rank++ {
			for file := 0; file < BoardSize; file++ {
				if _, ok := b.At(Square{file, rank}); ok {
					t.Errorf("At(%v) occupied; want empty", Square{file, rank})
				}
			}
		}
	})

	t.Run("string form", func(t *testing.T) {
		want := "rnbqkbnr/pppppppp/......../......../......../......../PPPPPPPP/RNBQKBNR"
		if got := b.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	})
}

func TestBoardPlaceRemove(t *testing.T) {
	b := NewBoard()
	e4 := MustSquare(4, 3)

	if _, had := b.Place(e4, NewUnit(White, Knight, Square{})); had {
		t.Error("Place() on empty square reported a previous occupant")
	}
	u, ok := b.At(e4)
	if !ok || u.Role != Knight || u.Square != e4 {
		t.Fatalf("At(e4) = %+v, %v; want white knight on e4", u, ok)
	}

	prev, had := b.Place(e4, NewUnit(Black, Queen, Square{}))
	if !had || prev.Role != Knight {
		t.Errorf("Place() over knight returned %+v, %v; want the knight", prev, had)
	}

	removed, had := b.Remove(e4)
	if !had || removed.Role != Queen {
		t.Errorf("Remove() = %+v, %v; want the queen", removed, had)
	}
	if !b.Cell(e4).Empty() {
		t.Error("cell not empty after Remove()")
	}
}

func TestBoardStep(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name   string
		from   Square
		dir    Direction
		want   Square
		wantOK bool
	}{
		{"up from a1", Square{0, 0}, Up, Square{0, 1}, true},
		{"down-right from e4", Square{4, 3}, DownRight, Square{5, 2}, true},
		{"left off the a-file", Square{0, 3}, Left, Square{}, false},
		{"down off rank 0", Square{3, 0}, Down, Square{}, false},
		{"right off the h-file does not wrap", Square{7, 0}, Right, Square{}, false},
		{"up-right off the h-file does not wrap", Square{7, 3}, UpRight, Square{}, false},
		{"up off rank 7", Square{2, 7}, Up, Square{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := b.Step(tt.from, tt.dir)
			if ok != tt.wantOK {
				t.Fatalf("Step(%v, %v) ok = %v; want %v", tt.from, tt.dir, ok, tt.wantOK)
			}
			if ok && c.Square != tt.want {
				t.Errorf("Step(%v, %v) = %v; want %v", tt.from, tt.dir, c.Square, tt.want)
			}
		})
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.SetEnPassant(Square{3, 2}, true)
	original.SetEnPassantVictim(Square{4, 3})

	copied := original.Copy()

	t.Run("copies all state", func(t *testing.T) {
		if !copied.Cell(Square{3, 2}).EnPassant {
			t.Error("en passant flag not copied")
		}
		if sq, ok := copied.EnPassantVictim(); !ok || sq != (Square{4, 3}) {
			t.Errorf("EnPassantVictim() = %v, %v; want e4", sq, ok)
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		copied.Remove(Square{4, 0})
		copied.ClearEnPassant()

		if _, ok := original.At(Square{4, 0}); !ok {
			t.Error("original king removed by modifying the copy")
		}
		if !original.Cell(Square{3, 2}).EnPassant {
			t.Error("original en passant flag cleared by modifying the copy")
		}
	})
}

func TestBoardFindKing(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	if sq, ok := b.FindKing(White); !ok || sq != (Square{4, 0}) {
		t.Errorf("FindKing(White) = %v, %v; want e1", sq, ok)
	}
	if sq, ok := b.FindKing(Black); !ok || sq != (Square{4, 7}) {
		t.Errorf("FindKing(Black) = %v, %v; want e8", sq, ok)
	}

	empty := NewBoard()
	if _, ok := empty.FindKing(White); ok {
		t.Error("FindKing() on empty board reported a king")
	}
}

func TestBoardSnapshot(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	snap := b.Snapshot()
	if len(snap) != NumSquares {
		t.Fatalf("len(Snapshot()) = %d; want %d", len(snap), NumSquares)
	}
	if snap[0] == nil || *snap[0] != (Piece{White, Rook}) {
		t.Errorf("Snapshot()[0] = %v; want White Rook", snap[0])
	}
	if snap[4*BoardSize+4] != nil {
		t.Errorf("Snapshot()[e5] = %v; want nil", snap[4*BoardSize+4])
	}
	if got := len(b.Units(White)); got != 16 {
		t.Errorf("len(Units(White)) = %d; want 16", got)
	}
}
