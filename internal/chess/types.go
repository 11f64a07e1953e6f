// Package chess provides core chess types and operations.
package chess

import "strings"

// Colour represents the colour of a unit or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// HomeRank returns the back rank the colour's pieces start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Role represents the kind of a unit.
type Role int

const (
	King Role = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumRoles
)

var roleNames = [NumRoles]string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}

// String returns the string representation of a role.
func (r Role) String() string {
	if r >= 0 && r < NumRoles {
		return roleNames[r]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a role (uppercase).
func (r Role) Letter() byte {
	letters := [NumRoles]byte{'K', 'Q', 'B', 'N', 'R', 'P'}
	if r >= 0 && r < NumRoles {
		return letters[r]
	}
	return '?'
}

// IsPromotable reports whether a pawn may be promoted to r.
func (r Role) IsPromotable() bool {
	return r == Queen || r == Bishop || r == Knight || r == Rook
}

// ParseRole converts a role name or letter, case-insensitively, to a Role.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r := King; r < NumRoles; r++ {
		if s == strings.ToLower(roleNames[r]) || (len(s) == 1 && s[0] == r.Letter()+('a'-'A')) {
			return r, true
		}
	}
	return 0, false
}

// Direction is one of the eight compass directions. Up is towards rank 7.
type Direction int

const (
	Up Direction = iota
	UpLeft
	UpRight
	Down
	DownLeft
	DownRight
	Left
	Right
)

// Compass lists all eight directions.
var Compass = [...]Direction{Up, UpLeft, UpRight, Down, DownLeft, DownRight, Left, Right}

// Delta returns the file and rank offsets of a single step in direction d.
func (d Direction) Delta() (df, dr int) {
	switch d {
	case Up, UpLeft, UpRight:
		dr = 1
	case Down, DownLeft, DownRight:
		dr = -1
	}
	switch d {
	case Left, UpLeft, DownLeft:
		df = -1
	case Right, UpRight, DownRight:
		df = 1
	}
	return df, dr
}

// String returns the name of the direction.
func (d Direction) String() string {
	names := [...]string{"Up", "UpLeft", "UpRight", "Down", "DownLeft", "DownRight", "Left", "Right"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// NumSquares is the number of cells on the board.
const NumSquares = BoardSize * BoardSize

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnDoubleMove
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns a short description of the move class.
func (m MoveClass) String() string {
	names := [...]string{"pawn move", "pawn double move", "promotion", "en passant", "piece move", "kingside castle", "queenside castle"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// CheckStatus indicates whether a side is in check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// String returns the string representation of a check status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	default:
		return "none"
	}
}
