package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Path is a sequence of single steps that together reach one candidate square.
// Sliding roles repeat a path until they are blocked.
type Path []chess.Direction

var (
	orthogonalPaths = []Path{{chess.Up}, {chess.Down}, {chess.Left}, {chess.Right}}

	diagonalPaths = []Path{{chess.UpLeft}, {chess.UpRight}, {chess.DownLeft}, {chess.DownRight}}

	compassPaths = []Path{
		{chess.Up}, {chess.UpLeft}, {chess.UpRight}, {chess.Down},
		{chess.DownLeft}, {chess.DownRight}, {chess.Left}, {chess.Right},
	}

	knightPaths = []Path{
		{chess.UpLeft, chess.Up}, {chess.UpRight, chess.Up},
		{chess.DownLeft, chess.Down}, {chess.DownRight, chess.Down},
		{chess.Left, chess.UpLeft}, {chess.Left, chess.DownLeft},
		{chess.Right, chess.UpRight}, {chess.Right, chess.DownRight},
	}
)

// movePaths returns the direction paths for a role and whether the role
// slides along them. Pawns have no fixed paths and are generated separately.
func movePaths(role chess.Role) ([]Path, bool) {
	switch role {
	case chess.King:
		return compassPaths, false
	case chess.Queen:
		return compassPaths, true
	case chess.Bishop:
		return diagonalPaths, true
	case chess.Knight:
		return knightPaths, false
	case chess.Rook:
		return orthogonalPaths, true
	case chess.Pawn:
		return nil, false
	}
	panic(fmt.Sprintf("engine: unknown role %d", role))
}

// follow applies every step of path starting at sq.
// It fails if any step leaves the board.
func follow(board *chess.Board, sq chess.Square, path Path) (chess.Square, bool) {
	for _, d := range path {
		cell, ok := board.Step(sq, d)
		if !ok {
			return chess.Square{}, false
		}
		sq = cell.Square
	}
	return sq, true
}

// walkPaths collects the squares a unit of the given colour reaches from
// origin along paths. A path ends at the board edge, before a friendly unit,
// or on an enemy unit (which is included as a capture).
func walkPaths(board *chess.Board, origin chess.Square, colour chess.Colour, paths []Path, sliding bool) []chess.Square {
	var squares []chess.Square
	for _, path := range paths {
		current := origin
		for {
			next, ok := follow(board, current, path)
			if !ok {
				break
			}
			current = next
			occupant, occupied := board.At(current)
			if occupied && occupant.Colour == colour {
				break
			}
			squares = append(squares, current)
			if occupied || !sliding {
				break
			}
		}
	}
	return squares
}
