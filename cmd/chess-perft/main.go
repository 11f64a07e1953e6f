// chess-perft counts the legal move tree below a position, for checking the
// move generator against published node totals.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

var (
	depth    = flag.Int("depth", 3, "Number of plies to enumerate")
	workers  = flag.Int("workers", 0, "Worker goroutines for -divide (default: number of CPUs)")
	startFEN = flag.String("fen", engine.InitialFEN, "Position to count from")
	divide   = flag.Bool("divide", false, "Report the node count below every root move")
	pawnPush = flag.String("push", "empty", "Pawn push policy: empty, unconditional")
	quiet    = flag.Bool("q", false, "Print only the node total")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *startFEN, *divide, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildConfig() (*config.Config, error) {
	policy, err := config.ParsePawnPushPolicy(*pawnPush)
	if err != nil {
		return nil, err
	}
	b := config.NewConfigBuilder().
		WithPawnPush(policy).
		WithPerftDepth(*depth)
	if *workers > 0 {
		b = b.WithWorkers(*workers)
	}
	if *quiet {
		b = b.WithVerbosity(0)
	}
	cfg := b.Build()
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, fen string, byMove bool, out io.Writer) error {
	pos, err := engine.NewPositionFromFEN(fen, engine.WithRules(cfg.Rules))
	if err != nil {
		return err
	}

	start := time.Now()
	var total uint64
	if byMove && cfg.Perft.Depth > 0 {
		counts, sum, err := perft.Divide(ctx, pos, cfg.Perft.Depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		if cfg.Verbosity > 0 {
			for _, c := range counts {
				fmt.Fprintf(out, "%s: %d\n", c.Move, c.Nodes)
			}
			fmt.Fprintln(out)
		}
		total = sum
	} else {
		total, err = perft.Perft(pos, cfg.Perft.Depth)
		if err != nil {
			return err
		}
	}

	if cfg.Verbosity == 0 {
		fmt.Fprintln(out, total)
		return nil
	}
	elapsed := time.Since(start)
	fmt.Fprintf(out, "depth %d: %d nodes in %v", cfg.Perft.Depth, total, elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(out, " (%.0f nodes/s)", float64(total)/secs)
	}
	fmt.Fprintln(out)
	return nil
}
