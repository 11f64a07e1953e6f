package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenRole converts a FEN letter, either case, to a role.
func fenRole(c byte) (chess.Role, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	}
	return 0, false
}

// fenLetter returns the FEN letter of a piece: upper case for White.
func fenLetter(piece chess.Piece) byte {
	letter := piece.Role.Letter()
	if piece.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// NewPositionFromFEN creates a position from a FEN string. The placement
// field is required; side to move, castling availability and the en passant
// square are honoured when present. Clocks are accepted and ignored.
//
// Castling availability is mapped onto the moved flags of kings and rooks,
// and a pawn off its starting rank counts as moved.
func NewPositionFromFEN(fen string, opts ...Option) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", chesserrors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	colour := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			colour = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s: %w", parts[1], chesserrors.ErrInvalidFEN)
		}
	}

	p, err := NewCustomPosition(pieces, append(opts, WithActiveColour(colour))...)
	if err != nil {
		return nil, err
	}

	markMovedPawns(&p.board)
	rights := "KQkq"
	if len(parts) >= 3 {
		rights = parts[2]
	}
	if err := applyCastlingRights(&p.board, rights); err != nil {
		return nil, err
	}
	if len(parts) >= 4 {
		if err := applyEnPassant(&p.board, parts[3], colour); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(placement string) ([]*chess.Piece, error) {
	pieces := make([]*chess.Piece, chess.NumSquares)
	rank, file := chess.BoardSize-1, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return nil, placementError(placement, i, "8 files", fmt.Sprintf("%d", file))
			}
			rank--
			file = 0
			if rank < 0 {
				return nil, placementError(placement, i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return nil, placementError(placement, i, "8 files", fmt.Sprintf("%d", file))
			}
		default:
			role, ok := fenRole(c)
			if !ok {
				return nil, placementError(placement, i, "piece letter", string(c))
			}
			if file >= chess.BoardSize {
				return nil, placementError(placement, i, "8 files", "9")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pieces[rank*chess.BoardSize+file] = &chess.Piece{Colour: colour, Role: role}
			file++
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return nil, placementError(placement, len(placement)-1, "8 ranks of 8 files", "short placement")
	}
	return pieces, nil
}

func placementError(input string, i int, expected, got string) error {
	return &chesserrors.ParseError{
		Err:      chesserrors.ErrInvalidFEN,
		Input:    input,
		Column:   i + 1,
		Expected: expected,
		Got:      got,
	}
}

func markMovedPawns(board *chess.Board) {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		for _, u := range board.Units(colour) {
			if u.Role == chess.Pawn && u.Square.Rank != colour.PawnRank() {
				setMoved(board, u)
			}
		}
	}
}

func setMoved(board *chess.Board, u chess.Unit) {
	u.Moved = true
	board.Place(u.Square, u)
}

// applyCastlingRights marks kings and rooks as moved when the castling
// field denies them.
func applyCastlingRights(board *chess.Board, rights string) error {
	type wing struct {
		letter byte
		colour chess.Colour
		file   int
	}
	wings := [...]wing{
		{'K', chess.White, 7}, {'Q', chess.White, 0},
		{'k', chess.Black, 7}, {'q', chess.Black, 0},
	}
	if rights != "-" {
		for i := 0; i < len(rights); i++ {
			if !strings.ContainsRune("KQkq", rune(rights[i])) {
				return &chesserrors.ParseError{Err: chesserrors.ErrInvalidFEN, Input: rights, Column: i + 1, Expected: "castling letter", Got: string(rights[i])}
			}
		}
	}

	kingKeeps := map[chess.Colour]bool{}
	for _, w := range wings {
		allowed := rights != "-" && strings.IndexByte(rights, w.letter) >= 0
		if allowed {
			kingKeeps[w.colour] = true
			continue
		}
		rookSq := chess.Square{File: w.file, Rank: w.colour.HomeRank()}
		if rook, ok := board.At(rookSq); ok && rook.Role == chess.Rook && rook.Colour == w.colour {
			setMoved(board, rook)
		}
	}
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		if kingKeeps[colour] {
			continue
		}
		if sq, ok := board.FindKing(colour); ok {
			king, _ := board.At(sq)
			setMoved(board, king)
		}
	}
	return nil
}

// applyEnPassant restores the en passant state from the FEN target square,
// the square the last double-pushed pawn crossed.
func applyEnPassant(board *chess.Board, field string, toMove chess.Colour) error {
	if field == "-" {
		return nil
	}
	target, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", field, chesserrors.ErrInvalidFEN)
	}
	pusher := toMove.Opposite()
	if target.Rank != pusher.PawnRank()+pusher.Forward() {
		return fmt.Errorf("en passant square %q on wrong rank: %w", field, chesserrors.ErrInvalidFEN)
	}
	victimSq := chess.Square{File: target.File, Rank: target.Rank + pusher.Forward()}
	victim, ok := board.At(victimSq)
	if !ok || victim.Role != chess.Pawn || victim.Colour != pusher {
		return fmt.Errorf("en passant square %q without a pawn beyond it: %w", field, chesserrors.ErrInvalidFEN)
	}
	markEnPassant(board, chess.Square{File: target.File, Rank: pusher.PawnRank()}, victimSq)
	return nil
}

// FEN returns the position in Forsyth-Edwards Notation. Castling rights are
// derived from the moved flags; the clocks are reported as "0 n" where n is
// the full move number implied by the ply count.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.board)
	sb.WriteByte(' ')
	if p.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &p.board)
	sb.WriteByte(' ')
	if victim, ok := p.board.EnPassantVictim(); ok {
		u, _ := p.board.At(victim)
		sb.WriteString(chess.Square{File: victim.File, Rank: victim.Rank - u.Colour.Forward()}.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", p.ply/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			u, ok := board.At(chess.Square{File: file, Rank: rank})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(u.Piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		rank := colour.HomeRank()
		king, ok := board.At(chess.Square{File: kingHomeFile, Rank: rank})
		if !ok || king.Role != chess.King || king.Colour != colour || king.Moved {
			continue
		}
		for _, w := range [...]struct {
			file   int
			letter byte
		}{{7, 'K'}, {0, 'Q'}} {
			rook, ok := board.At(chess.Square{File: w.file, Rank: rank})
			if !ok || rook.Role != chess.Rook || rook.Colour != colour || rook.Moved {
				continue
			}
			letter := w.letter
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
