package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// adjacent reports whether a and b are distinct squares a king step apart.
func adjacent(a, b chess.Square) bool {
	df, dr := abs(a.File-b.File), abs(a.Rank-b.Rank)
	return df <= 1 && dr <= 1 && (df != 0 || dr != 0)
}

// containsSquare reports whether sq appears in squares.
func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
