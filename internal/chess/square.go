package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a zero-based (file, rank) coordinate. File 0 is the a-file and
// rank 0 is White's back rank.
type Square struct {
	File int
	Rank int
}

// NewSquare validates file and rank and returns the square they address.
func NewSquare(file, rank int) (Square, error) {
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustSquare is like NewSquare but panics on invalid coordinates.
// Intended for constants and tests.
func MustSquare(file, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare converts algebraic notation such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - 'a'
	if s[0] >= 'A' && s[0] <= 'H' {
		file = int(s[0]) - 'A'
	}
	return NewSquare(file, int(s[1])-'1')
}

// SquareAt returns the square with linear index i (rank*8 + file).
func SquareAt(i int) Square {
	if i < 0 || i >= NumSquares {
		panic(fmt.Sprintf("chess: square index %d out of range", i))
	}
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// Valid reports whether both coordinates lie in [0,8).
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the linear index rank*8 + file.
// It panics if the square is off the board.
func (s Square) Index() int {
	if !s.Valid() {
		panic(fmt.Sprintf("chess: square (%d,%d) out of range", s.File, s.Rank))
	}
	return s.Rank*BoardSize + s.File
}

// Offset returns the square df files and dr ranks away, and whether it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	t := Square{File: s.File + df, Rank: s.Rank + dr}
	return t, t.Valid()
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}
