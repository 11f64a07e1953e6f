package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour, rules config.RulesConfig) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsAttacked(board, king, colour, rules)
}

// IsAttacked returns true if any unit of the defender's opponent can capture
// on target. Kings attack their neighbours, pawns their capture squares and
// every other role its pseudo-legal destinations.
func IsAttacked(board *chess.Board, target chess.Square, defender chess.Colour, rules config.RulesConfig) bool {
	for _, u := range board.Units(defender.Opposite()) {
		if attacks(board, u, target, rules) {
			return true
		}
	}
	return false
}

// attacks reports whether unit u attacks target.
func attacks(board *chess.Board, u chess.Unit, target chess.Square, rules config.RulesConfig) bool {
	switch u.Role {
	case chess.King:
		return adjacent(u.Square, target)
	case chess.Pawn:
		return containsSquare(pawnAttacks(u, rules), target)
	}
	paths, sliding := movePaths(u.Role)
	return containsSquare(walkPaths(board, u.Square, u.Colour, paths, sliding), target)
}

// Attackers returns the squares of every unit attacking target on behalf of
// the defender's opponent.
func Attackers(board *chess.Board, target chess.Square, defender chess.Colour, rules config.RulesConfig) []chess.Square {
	var squares []chess.Square
	for _, u := range board.Units(defender.Opposite()) {
		if attacks(board, u, target, rules) {
			squares = append(squares, u.Square)
		}
	}
	return squares
}
