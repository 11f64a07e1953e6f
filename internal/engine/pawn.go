package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// pawnMoves generates the pseudo-legal destinations of a pawn: the forward
// push, the double push from its starting rank, diagonal captures and the
// en passant capture.
func pawnMoves(board *chess.Board, u chess.Unit, rules config.RulesConfig) []chess.Square {
	lenient := rules.PawnPush == config.PushUnconditional
	fwd := u.Colour.Forward()
	var moves []chess.Square

	one, ok := u.Square.Offset(0, fwd)
	if !ok {
		return nil
	}
	if lenient || board.Cell(one).Empty() {
		moves = append(moves, one)
		if u.Square.Rank == u.Colour.PawnRank() {
			if two, ok := one.Offset(0, fwd); ok && (lenient || board.Cell(two).Empty()) {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range [...]int{-1, 1} {
		target, ok := u.Square.Offset(df, fwd)
		if !ok {
			continue
		}
		if occupant, occupied := board.At(target); occupied && occupant.Colour != u.Colour {
			moves = append(moves, target)
		}
	}

	if target, ok := enPassantTarget(board, u); ok {
		moves = append(moves, target)
	}
	return moves
}

// enPassantTarget returns the square a pawn lands on when capturing en passant.
// The pawn's forward cell must carry the en passant flag and the victim must
// be an enemy pawn standing beside it.
func enPassantTarget(board *chess.Board, u chess.Unit) (chess.Square, bool) {
	forward, ok := u.Square.Offset(0, u.Colour.Forward())
	if !ok || !board.Cell(forward).EnPassant {
		return chess.Square{}, false
	}
	victimSq, ok := board.EnPassantVictim()
	if !ok || victimSq.Rank != u.Square.Rank || abs(victimSq.File-u.Square.File) != 1 {
		return chess.Square{}, false
	}
	victim, ok := board.At(victimSq)
	if !ok || victim.Role != chess.Pawn || victim.Colour == u.Colour {
		return chess.Square{}, false
	}
	target := chess.Square{File: victimSq.File, Rank: forward.Rank}
	if !board.Cell(target).Empty() {
		return chess.Square{}, false
	}
	return target, true
}

// pawnAttacks returns the squares on which a pawn could capture. Diagonals
// count whether or not they are occupied; under the unconditional push
// policy the squares ahead count too, since a push there removes any occupant.
func pawnAttacks(u chess.Unit, rules config.RulesConfig) []chess.Square {
	fwd := u.Colour.Forward()
	var squares []chess.Square
	for _, df := range [...]int{-1, 1} {
		if sq, ok := u.Square.Offset(df, fwd); ok {
			squares = append(squares, sq)
		}
	}
	if rules.PawnPush == config.PushUnconditional {
		if one, ok := u.Square.Offset(0, fwd); ok {
			squares = append(squares, one)
			if u.Square.Rank == u.Colour.PawnRank() {
				if two, ok := one.Offset(0, fwd); ok {
					squares = append(squares, two)
				}
			}
		}
	}
	return squares
}
