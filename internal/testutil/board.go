package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Sq parses an algebraic square such as "e4" and fails the test on error.
func Sq(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

// Squares parses a space separated list of algebraic squares.
func Squares(t testing.TB, list string) []chess.Square {
	t.Helper()
	var squares []chess.Square
	for _, f := range strings.Fields(list) {
		squares = append(squares, Sq(t, f))
	}
	return squares
}

// Layout builds a 64-entry position from eight diagram rows, rank 8 first.
// Upper case letters are White, lower case Black and '.' an empty square.
func Layout(t testing.TB, rows ...string) []*chess.Piece {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("Layout: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	pieces := make([]*chess.Piece, chess.NumSquares)
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			t.Fatalf("Layout: row %d %q has %d cells", i, row, len(row))
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				c -= 'a' - 'A'
			}
			role, ok := chess.ParseRole(string(c))
			if !ok {
				t.Fatalf("Layout: row %d: unknown piece %q", i, row[file])
			}
			pieces[rank*chess.BoardSize+file] = &chess.Piece{Colour: colour, Role: role}
		}
	}
	return pieces
}

// AssertSquares compares two square sets while ignoring order.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Square) bool { return a.Index() < b.Index() }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "squares mismatch (-want +got):\n%s", diff)
	}
}

// SquareNames renders squares in index order, which reads well in failures.
func SquareNames(squares []chess.Square) string {
	names := make([]string, len(squares))
	sorted := append([]chess.Square(nil), squares...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index() < sorted[j].Index() })
	for i, sq := range sorted {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}
