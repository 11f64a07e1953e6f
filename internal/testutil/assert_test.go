package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// These tests cover the success paths; *testing.T cannot be mocked for the
// failure paths, so formatMessage is tested directly.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Piece{Colour: chess.White, Role: chess.Rook}, chess.Piece{Colour: chess.White, Role: chess.Rook})
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertBooleans_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertContains(t, "hello world", "world")
	AssertNil(t, nil)
	AssertNil(t, (*int)(nil))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"simple"}, "simple"},
		{"format string", []interface{}{"ply %d", 3}, "ply 3"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	pieces := Layout(t,
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"....P...",
		"........",
		"PPPP.PPP",
		"RNBQKBNR",
	)

	if len(pieces) != chess.NumSquares {
		t.Fatalf("len(Layout()) = %d, want %d", len(pieces), chess.NumSquares)
	}
	AssertEqual(t, pieces[Sq(t, "e4").Index()], &chess.Piece{Colour: chess.White, Role: chess.Pawn})
	AssertEqual(t, pieces[Sq(t, "d8").Index()], &chess.Piece{Colour: chess.Black, Role: chess.Queen})
	AssertNil(t, pieces[Sq(t, "e2").Index()])
}

func TestAssertSquares_IgnoresOrder(t *testing.T) {
	AssertSquares(t, Squares(t, "e3 e4"), Squares(t, "e4 e3"))
	AssertSquares(t, nil, []chess.Square{})
	if got := SquareNames(Squares(t, "h8 a1 e4")); got != "a1 e4 h8" {
		t.Errorf("SquareNames() = %q", got)
	}
}
