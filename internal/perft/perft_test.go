package perft

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 0", engine.InitialFEN, 0, 1},
		{"initial depth 1", engine.InitialFEN, 1, 20},
		{"initial depth 2", engine.InitialFEN, 2, 400},
		{"initial depth 3", engine.InitialFEN, 3, 8902},
		{"kiwipete depth 1", kiwipete, 1, 48},
		{"kiwipete depth 2", kiwipete, 2, 2039},
		{"position 3 depth 1", position3, 1, 14},
		{"position 3 depth 2", position3, 2, 191},
		{"position 3 depth 3", position3, 3, 2812},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth >= 3 {
				t.Skip("deep perft skipped in short mode")
			}
			p, err := engine.NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error: %v", err)
			}
			got, err := Perft(p, tt.depth)
			if err != nil {
				t.Fatalf("Perft() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	p, err := engine.NewPosition()
	if err != nil {
		t.Fatalf("NewPosition() error: %v", err)
	}

	counts, total, err := Divide(context.Background(), p, 2, 4)
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}
	if total != 400 {
		t.Errorf("total = %d; want 400", total)
	}
	if len(counts) != 20 {
		t.Fatalf("len(counts) = %d; want 20", len(counts))
	}

	moves := p.AllLegalMoves()
	for i, c := range counts {
		if c.Move != moves[i] {
			t.Errorf("counts[%d].Move = %v; want %v", i, c.Move, moves[i])
		}
		if c.Nodes != 20 {
			t.Errorf("%v: %d nodes; want 20", c.Move, c.Nodes)
		}
	}
}

func TestDivide_MatchesPerft(t *testing.T) {
	p, err := engine.NewPositionFromFEN(kiwipete)
	if err != nil {
		t.Fatalf("NewPositionFromFEN() error: %v", err)
	}

	_, total, err := Divide(context.Background(), p, 2, 3)
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}
	want, _ := Perft(p, 2)
	if total != want {
		t.Errorf("Divide total = %d; Perft = %d", total, want)
	}
}

func TestDivide_Errors(t *testing.T) {
	p, err := engine.NewPosition()
	if err != nil {
		t.Fatalf("NewPosition() error: %v", err)
	}

	if _, _, err := Divide(context.Background(), p, 0, 1); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Divide(depth 0) error = %v; want ErrInvalidConfig", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Divide(ctx, p, 2, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("Divide(cancelled) error = %v; want context.Canceled", err)
	}
}

func BenchmarkPerft(b *testing.B) {
	p, err := engine.NewPosition()
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, err := Perft(p, 2); err != nil {
			b.Fatal(err)
		}
	}
}
