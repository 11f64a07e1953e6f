// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game options
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the initial layout")
	pawnPush  = flag.String("push", "empty", "Pawn push policy: empty, unconditional")
	promoteTo = flag.String("promote", "queen", "Default promotion role: queen, rook, bishop, knight")

	// Shell options
	noColour    = flag.Bool("no-colour", false, "Disable ANSI colours")
	historyFile = flag.String("history", ".chess_history", "Readline history file (empty disables history)")

	// Diagnostics
	verbose = flag.Bool("v", false, "Log game lifecycle events to stderr")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags builds the configuration from the parsed command-line flags.
func applyFlags(cfg *config.Config) error {
	policy, err := config.ParsePawnPushPolicy(*pawnPush)
	if err != nil {
		return err
	}
	role, ok := chess.ParseRole(*promoteTo)
	if !ok {
		return fmt.Errorf("unknown promotion role %q", *promoteTo)
	}

	verbosity := 1
	if *verbose {
		verbosity = 2
	}

	*cfg = *config.NewConfigBuilder().
		WithPawnPush(policy).
		WithDefaultPromotion(role).
		WithHistoryFile(*historyFile).
		WithColour(!*noColour).
		WithVerbosity(verbosity).
		Build()
	return cfg.Validate()
}
