package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// IsCheckmate returns true if colour is in check and no unit of colour has a
// legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour, rules config.RulesConfig) bool {
	return IsInCheck(board, colour, rules) && !HasLegalMoves(board, colour, rules)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour, rules config.RulesConfig) bool {
	return !IsInCheck(board, colour, rules) && !HasLegalMoves(board, colour, rules)
}

// StatusOf reports whether colour is unchecked, in check, or checkmated.
func StatusOf(board *chess.Board, colour chess.Colour, rules config.RulesConfig) chess.CheckStatus {
	if !IsInCheck(board, colour, rules) {
		return chess.NoCheck
	}
	if HasLegalMoves(board, colour, rules) {
		return chess.Check
	}
	return chess.Checkmate
}
