package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Outcome describes what executing a move did to the board.
type Outcome struct {
	Class    chess.MoveClass
	Unit     chess.Unit  // the moved unit as it stands after the move
	Captured *chess.Unit // nil if nothing was captured
	Promoted bool
}

// ApplyMove executes the move from -> to on board without checking legality.
// The move is applied to a copy first and committed only if every part of it
// succeeds, so a failed castling leaves the board untouched. promotion is the
// role a pawn reaching its last rank becomes.
func ApplyMove(board *chess.Board, from, to chess.Square, promotion chess.Role) (Outcome, error) {
	if !from.Valid() || !to.Valid() {
		return Outcome{}, chesserrors.ErrInvalidSquare
	}
	next := board.Copy()
	outcome, err := execute(next, from, to, promotion)
	if err != nil {
		return Outcome{}, err
	}
	*board = *next
	return outcome, nil
}

// Classify returns the class of the move from -> to on board.
func Classify(board *chess.Board, from, to chess.Square) (chess.MoveClass, bool) {
	u, ok := board.At(from)
	if !ok {
		return 0, false
	}
	return classify(board, u, to), true
}

func classify(board *chess.Board, u chess.Unit, to chess.Square) chess.MoveClass {
	switch u.Role {
	case chess.King:
		if c, ok := castleForMove(u, to); ok {
			return c.class
		}
		return chess.PieceMove
	case chess.Pawn:
		switch {
		case to.Rank == u.Colour.PromotionRank():
			return chess.PawnMoveWithPromotion
		case abs(to.Rank-u.Square.Rank) == 2:
			return chess.PawnDoubleMove
		case to.File != u.Square.File && board.Cell(to).Empty() && isEnPassantVictim(board, chess.Square{File: to.File, Rank: u.Square.Rank}):
			return chess.EnPassantPawnMove
		}
		return chess.PawnMove
	}
	return chess.PieceMove
}

func isEnPassantVictim(board *chess.Board, sq chess.Square) bool {
	victim, ok := board.EnPassantVictim()
	return ok && victim == sq
}

// execute mutates board in place. Callers own the board.
func execute(board *chess.Board, from, to chess.Square, promotion chess.Role) (Outcome, error) {
	u, ok := board.At(from)
	if !ok {
		return Outcome{}, chesserrors.ErrNoUnit
	}

	class := classify(board, u, to)
	switch class {
	case chess.KingsideCastle, chess.QueensideCastle:
		return applyCastle(board, u, to)
	case chess.PawnMove, chess.PawnDoubleMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		return applyPawnMove(board, u, to, class, promotion)
	}
	return applyPieceMove(board, u, to)
}

// relocate moves u to "to", marking it as moved and returning any unit it
// displaced. Every move clears the en passant state first.
func relocate(board *chess.Board, u chess.Unit, to chess.Square) (chess.Unit, *chess.Unit) {
	board.ClearEnPassant()
	board.Remove(u.Square)
	u.Moved = true
	prev, had := board.Place(to, u)
	u.Square = to
	if !had {
		return u, nil
	}
	return u, &prev
}

func applyPieceMove(board *chess.Board, u chess.Unit, to chess.Square) (Outcome, error) {
	moved, captured := relocate(board, u, to)
	return Outcome{Class: chess.PieceMove, Unit: moved, Captured: captured}, nil
}

// applyCastle moves the king two files and the rook to the square it crossed.
func applyCastle(board *chess.Board, king chess.Unit, to chess.Square) (Outcome, error) {
	c, _ := castleForMove(king, to)
	rook, ok := board.At(c.rookFrom)
	if !ok || rook.Role != chess.Rook || rook.Colour != king.Colour {
		return Outcome{}, fmt.Errorf("%s on %s: %w", c.class, c.rookFrom, chesserrors.ErrCastlingRook)
	}
	if !board.Cell(c.rookTo).Empty() {
		return Outcome{}, fmt.Errorf("%s: %s occupied: %w", c.class, c.rookTo, chesserrors.ErrCastlingRook)
	}

	moved, captured := relocate(board, king, to)
	board.Remove(c.rookFrom)
	rook.Moved = true
	board.Place(c.rookTo, rook)
	return Outcome{Class: c.class, Unit: moved, Captured: captured}, nil
}

func applyPawnMove(board *chess.Board, u chess.Unit, to chess.Square, class chess.MoveClass, promotion chess.Role) (Outcome, error) {
	var victim *chess.Unit
	if class == chess.EnPassantPawnMove {
		victimSq := chess.Square{File: to.File, Rank: u.Square.Rank}
		if v, ok := board.Remove(victimSq); ok {
			victim = &v
		}
	}

	from := u.Square
	moved, captured := relocate(board, u, to)
	if victim != nil {
		captured = victim
	}

	switch class {
	case chess.PawnDoubleMove:
		markEnPassant(board, from, to)
	case chess.PawnMoveWithPromotion:
		if !promotion.IsPromotable() {
			return Outcome{}, fmt.Errorf("%s: %w", promotion, chesserrors.ErrInvalidPromotion)
		}
		moved.Role = promotion
		board.Place(to, moved)
		return Outcome{Class: class, Unit: moved, Captured: captured, Promoted: true}, nil
	}
	return Outcome{Class: class, Unit: moved, Captured: captured}, nil
}

// markEnPassant flags the cells beside the square a double-pushed pawn
// crossed and records the pawn as the en passant victim.
func markEnPassant(board *chess.Board, from, to chess.Square) {
	passed := (from.Rank + to.Rank) / 2
	for _, df := range [...]int{-1, 1} {
		if sq, ok := (chess.Square{File: to.File, Rank: passed}).Offset(df, 0); ok {
			board.SetEnPassant(sq, true)
		}
	}
	board.SetEnPassantVictim(to)
}
