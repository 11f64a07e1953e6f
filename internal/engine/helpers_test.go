package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func mustPosition(t testing.TB, opts ...Option) *Position {
	t.Helper()
	p, err := NewPosition(opts...)
	if err != nil {
		t.Fatalf("NewPosition() error: %v", err)
	}
	return p
}

func mustLayout(t testing.TB, colour chess.Colour, rows ...string) *Position {
	t.Helper()
	p, err := NewCustomPosition(testutil.Layout(t, rows...), WithActiveColour(colour))
	if err != nil {
		t.Fatalf("NewCustomPosition() error: %v", err)
	}
	return p
}

func mustFEN(t testing.TB, fen string, opts ...Option) *Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return p
}

// play requests each coordinate move ("e2e4") in turn and returns the last result.
func play(t testing.TB, p *Position, moves ...string) MoveResult {
	t.Helper()
	var res MoveResult
	for _, m := range moves {
		from, to := testutil.Sq(t, m[:2]), testutil.Sq(t, m[2:])
		var err error
		res, err = p.RequestMove(from, to)
		if err != nil {
			t.Fatalf("RequestMove(%s) error: %v", m, err)
		}
	}
	return res
}

func unconditional() Option {
	rules := config.NewRulesConfig()
	rules.PawnPush = config.PushUnconditional
	return WithRules(rules)
}
