package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLegalMoves_StartingPosition(t *testing.T) {
	p := mustPosition(t)

	tests := []struct {
		sq   string
		want string
	}{
		{"e2", "e3 e4"},
		{"a7", "a6 a5"},
		{"b1", "a3 c3"},
		{"g8", "f6 h6"},
		{"a1", ""},
		{"d1", ""},
		{"e1", ""},
		{"e4", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			got := p.LegalMoves(testutil.Sq(t, tt.sq))
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want))
		})
	}

	if got := len(p.AllLegalMoves()); got != 20 {
		t.Errorf("len(AllLegalMoves()) = %d, want 20", got)
	}
}

func TestLegalMoves_PawnGenerationOrder(t *testing.T) {
	p := mustPosition(t)
	testutil.AssertEqual(t, p.LegalMoves(testutil.Sq(t, "e2")), testutil.Squares(t, "e3 e4"))
}

func TestLegalMoves_SlidersAndKnights(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		sq    string
		count int
	}{
		{
			name: "rook on the edge with clear lines",
			rows: []string{
				".......K",
				"........",
				"........",
				"..k.....",
				"........",
				"........",
				"........",
				"R.......",
			},
			sq:    "a1",
			count: 14,
		},
		{
			name: "queen in the centre",
			rows: []string{
				"K.......",
				"........",
				"........",
				"........",
				"...Q....",
				"........",
				"........",
				".......k",
			},
			sq:    "d4",
			count: 27,
		},
		{
			name: "bishop in the corner",
			rows: []string{
				"K.....k.",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"B.......",
			},
			sq:    "a1",
			count: 7,
		},
		{
			name: "knight in the corner",
			rows: []string{
				"K......k",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				".......N",
			},
			sq:    "h1",
			count: 2,
		},
		{
			name: "rook stops at the first enemy",
			rows: []string{
				"K......k",
				"........",
				"........",
				"........",
				"p.......",
				"........",
				"........",
				"R.P.....",
			},
			sq:    "a1",
			count: 4, // a2 a3 a4(capture) b1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustLayout(t, chess.White, tt.rows...)
			got := p.LegalMoves(testutil.Sq(t, tt.sq))
			if len(got) != tt.count {
				t.Errorf("LegalMoves(%s) = %s (%d), want %d", tt.sq, testutil.SquareNames(got), len(got), tt.count)
			}
		})
	}
}

func TestLegalMoves_PinnedPiece(t *testing.T) {
	p := mustLayout(t, chess.White,
		"k...r...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....R...",
		"....K...",
	)

	testutil.AssertSquares(t, p.LegalMoves(testutil.Sq(t, "e2")), testutil.Squares(t, "e3 e4 e5 e6 e7 e8"))
}

func TestLegalMoves_KingsKeepApart(t *testing.T) {
	p := mustLayout(t, chess.White,
		"........",
		"........",
		"....k...",
		"........",
		"....K...",
		"........",
		"........",
		"........",
	)

	testutil.AssertSquares(t, p.LegalMoves(testutil.Sq(t, "e4")), testutil.Squares(t, "d3 e3 f3 d4 f4"))
}

func TestLegalMoves_PawnAttacksEmptyDiagonals(t *testing.T) {
	rows := []string{
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"....p...",
		"........",
		"....K...",
	}

	t.Run("standard pushes", func(t *testing.T) {
		p := mustLayout(t, chess.White, rows...)
		testutil.AssertSquares(t, p.LegalMoves(testutil.Sq(t, "e1")), testutil.Squares(t, "d1 e2 f1"))
	})

	t.Run("unconditional pushes also attack ahead", func(t *testing.T) {
		p, err := NewCustomPosition(testutil.Layout(t, rows...), unconditional())
		testutil.AssertNoError(t, err)
		testutil.AssertSquares(t, p.LegalMoves(testutil.Sq(t, "e1")), testutil.Squares(t, "d1 f1"))
	})
}

func TestLegalMoves_DoesNotModifyBoard(t *testing.T) {
	p := mustFEN(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	before := p.Snapshot()
	p.AllLegalMoves()
	testutil.AssertEqual(t, p.Snapshot(), before)
}

func TestIsAttacked(t *testing.T) {
	p := mustLayout(t, chess.White,
		"....k...",
		"........",
		"........",
		"...b....",
		"........",
		"........",
		"........",
		"....K...",
	)
	board := p.Board()
	rules := config.NewRulesConfig()

	tests := []struct {
		sq   string
		want bool
	}{
		{"g2", true},
		{"h1", true},
		{"a8", true},
		{"d7", true}, // beside the black king
		{"e1", false},
		{"d4", false},
	}
	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			got := IsAttacked(board, testutil.Sq(t, tt.sq), chess.White, rules)
			if got != tt.want {
				t.Errorf("IsAttacked(%s) = %v, want %v", tt.sq, got, tt.want)
			}
		})
	}
}
