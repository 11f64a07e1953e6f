// Package config provides configuration for the chess rules engine and its tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PawnPushPolicy selects how a pawn's forward advance treats occupied squares.
type PawnPushPolicy int

const (
	// PushRequiresEmpty only offers forward squares that are empty.
	PushRequiresEmpty PawnPushPolicy = iota
	// PushUnconditional offers forward squares regardless of occupancy,
	// which lets a pawn take whatever stands in front of it.
	PushUnconditional
)

// String returns the policy name used on the command line.
func (p PawnPushPolicy) String() string {
	if p == PushUnconditional {
		return "unconditional"
	}
	return "empty"
}

// ParsePawnPushPolicy converts a policy name to a PawnPushPolicy.
func ParsePawnPushPolicy(s string) (PawnPushPolicy, error) {
	switch s {
	case "empty", "":
		return PushRequiresEmpty, nil
	case "unconditional":
		return PushUnconditional, nil
	}
	return 0, fmt.Errorf("pawn push policy %q: %w", s, errors.ErrInvalidConfig)
}

// RulesConfig holds settings that change move generation.
type RulesConfig struct {
	// PawnPush governs single and double pawn advances onto occupied squares
	PawnPush PawnPushPolicy

	// DefaultPromotion is the promotion role both colours start with
	DefaultPromotion chess.Role
}

// NewRulesConfig creates a RulesConfig with standard chess defaults.
func NewRulesConfig() RulesConfig {
	return RulesConfig{
		PawnPush:         PushRequiresEmpty,
		DefaultPromotion: chess.Queen,
	}
}

// Validate rejects a default promotion role a pawn cannot become.
func (r RulesConfig) Validate() error {
	if !r.DefaultPromotion.IsPromotable() {
		return fmt.Errorf("default promotion %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	if r.PawnPush != PushRequiresEmpty && r.PawnPush != PushUnconditional {
		return fmt.Errorf("pawn push policy %d: %w", r.PawnPush, errors.ErrInvalidConfig)
	}
	return nil
}

// ShellConfig holds settings for the interactive shell.
type ShellConfig struct {
	// Prompt is printed before every input line
	Prompt string

	// HistoryFile stores readline history (empty disables history)
	HistoryFile string

	// Colour enables ANSI colours; the shell turns it off when stdout is not a terminal
	Colour bool
}

// NewShellConfig creates a ShellConfig with default values.
func NewShellConfig() ShellConfig {
	return ShellConfig{
		Prompt:      "chess> ",
		HistoryFile: ".chess_history",
		Colour:      true,
	}
}

// PerftConfig holds settings for move-generator verification runs.
type PerftConfig struct {
	// Depth is the number of plies to enumerate
	Depth int

	// Workers is the number of goroutines used for divide
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() PerftConfig {
	return PerftConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

// Config holds all program configuration.
type Config struct {
	Rules RulesConfig
	Shell ShellConfig
	Perft PerftConfig

	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Shell:      NewShellConfig(),
		Perft:      NewPerftConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Perft.Depth < 0 {
		return fmt.Errorf("perft depth %d: %w", c.Perft.Depth, errors.ErrInvalidConfig)
	}
	if c.Perft.Workers < 1 {
		return fmt.Errorf("perft workers %d: %w", c.Perft.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
