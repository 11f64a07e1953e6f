package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// kingHomeFile is the file both kings start on.
const kingHomeFile = 4

// castle describes the squares involved in one castling move.
type castle struct {
	class    chess.MoveClass
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	through  chess.Square // square the king crosses
	between  []int        // files that must be empty
}

// castleFor returns the castling geometry for colour on the given wing.
func castleFor(colour chess.Colour, kingside bool) castle {
	rank := colour.HomeRank()
	sq := func(file int) chess.Square { return chess.Square{File: file, Rank: rank} }
	if kingside {
		return castle{
			class:    chess.KingsideCastle,
			kingFrom: sq(kingHomeFile),
			kingTo:   sq(6),
			rookFrom: sq(7),
			rookTo:   sq(5),
			through:  sq(5),
			between:  []int{5, 6},
		}
	}
	return castle{
		class:    chess.QueensideCastle,
		kingFrom: sq(kingHomeFile),
		kingTo:   sq(2),
		rookFrom: sq(0),
		rookTo:   sq(3),
		through:  sq(3),
		between:  []int{1, 2, 3},
	}
}

// castleForMove returns the castling geometry when moving king to "to" is a
// castling move: a two-file king step from its home square.
func castleForMove(king chess.Unit, to chess.Square) (castle, bool) {
	if king.Role != chess.King {
		return castle{}, false
	}
	home := chess.Square{File: kingHomeFile, Rank: king.Colour.HomeRank()}
	if king.Square != home || to.Rank != home.Rank || abs(to.File-home.File) != 2 {
		return castle{}, false
	}
	return castleFor(king.Colour, to.File > home.File), true
}

// castlingCandidates returns the king destinations of every castling move
// whose static conditions hold: king and rook unmoved on their home squares,
// the squares between them empty and the king not in check. Queenside comes
// first. Whether the crossed square is attacked is checked during legality
// filtering.
func castlingCandidates(board *chess.Board, king chess.Unit, rules config.RulesConfig) []chess.Square {
	home := chess.Square{File: kingHomeFile, Rank: king.Colour.HomeRank()}
	if king.Moved || king.Square != home {
		return nil
	}
	if IsAttacked(board, king.Square, king.Colour, rules) {
		return nil
	}

	var moves []chess.Square
	for _, kingside := range [...]bool{false, true} {
		c := castleFor(king.Colour, kingside)
		rook, ok := board.At(c.rookFrom)
		if !ok || rook.Role != chess.Rook || rook.Colour != king.Colour || rook.Moved {
			continue
		}
		if !filesEmpty(board, home.Rank, c.between) {
			continue
		}
		moves = append(moves, c.kingTo)
	}
	return moves
}

// castlePathSafe simulates the king standing on the square it crosses and
// reports whether it would be safe there.
func castlePathSafe(board *chess.Board, c castle, rules config.RulesConfig) bool {
	scratch := board.Copy()
	king, ok := scratch.Remove(c.kingFrom)
	if !ok {
		return false
	}
	scratch.Place(c.through, king)
	return !IsAttacked(scratch, c.through, king.Colour, rules)
}

func filesEmpty(board *chess.Board, rank int, files []int) bool {
	for _, f := range files {
		if !board.Cell(chess.Square{File: f, Rank: rank}).Empty() {
			return false
		}
	}
	return true
}
