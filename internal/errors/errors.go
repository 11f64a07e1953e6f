// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common rejection conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a file or rank outside [0,8).
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidBoardSize indicates a custom position that is not exactly 64 entries.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrInvalidPromotion indicates King or Pawn was requested as a promotion role.
	ErrInvalidPromotion = errors.New("invalid promotion role")

	// ErrInvalidPiece indicates a custom position entry with an unknown colour or role.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrNoUnit indicates a move was requested from an empty square.
	ErrNoUnit = errors.New("no unit on origin square")

	// ErrIllegalMove indicates a destination outside the mover's legal destinations.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourTurn indicates a move of a unit that does not belong to the active colour.
	ErrNotYourTurn = errors.New("unit does not belong to the active colour")

	// ErrCastlingRook indicates the rook half of a castling move could not be applied.
	ErrCastlingRook = errors.New("castling rook unavailable")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps a rejected move with its context: the squares involved,
// the ply at which it was attempted and, when known, the game it belongs to.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	GameID string // Session identifier (if applicable)
	From   string // Origin square in algebraic form
	To     string // Destination square in algebraic form
	Ply    int    // Number of half-moves already played
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a position-notation error with column context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
