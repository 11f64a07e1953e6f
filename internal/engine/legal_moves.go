package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Move is a request to move the unit on From to To.
type Move struct {
	From chess.Square
	To   chess.Square
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// PseudoLegalMoves returns the destinations the unit on from could reach
// ignoring the safety of its own king. It returns nil for an empty square.
func PseudoLegalMoves(board *chess.Board, from chess.Square, rules config.RulesConfig) []chess.Square {
	u, ok := board.At(from)
	if !ok {
		return nil
	}
	if u.Role == chess.Pawn {
		return pawnMoves(board, u, rules)
	}
	paths, sliding := movePaths(u.Role)
	moves := walkPaths(board, from, u.Colour, paths, sliding)
	if u.Role == chess.King {
		moves = append(moves, castlingCandidates(board, u, rules)...)
	}
	return moves
}

// LegalMoves returns the destinations of the unit on from that do not leave
// its own king attacked, in generation order. Each candidate is played on a
// scratch copy of the board; the board itself is never modified.
func LegalMoves(board *chess.Board, from chess.Square, rules config.RulesConfig) []chess.Square {
	u, ok := board.At(from)
	if !ok {
		return nil
	}
	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, from, rules) {
		if isLegal(board, u, to, rules) {
			legal = append(legal, to)
		}
	}
	return legal
}

// isLegal plays u to "to" on a scratch board and checks the mover's king.
func isLegal(board *chess.Board, u chess.Unit, to chess.Square, rules config.RulesConfig) bool {
	if c, ok := castleForMove(u, to); ok && !castlePathSafe(board, c, rules) {
		return false
	}
	scratch := board.Copy()
	if _, err := execute(scratch, u.Square, to, rules.DefaultPromotion); err != nil {
		return false
	}
	return !IsInCheck(scratch, u.Colour, rules)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, rules config.RulesConfig) bool {
	for _, u := range board.Units(colour) {
		for _, to := range PseudoLegalMoves(board, u.Square, rules) {
			if isLegal(board, u, to, rules) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move of the given colour, ordered by
// origin square index and then by generation order.
func AllLegalMoves(board *chess.Board, colour chess.Colour, rules config.RulesConfig) []Move {
	var moves []Move
	for _, u := range board.Units(colour) {
		for _, to := range LegalMoves(board, u.Square, rules) {
			moves = append(moves, Move{From: u.Square, To: to})
		}
	}
	return moves
}
