// Package engine implements the chess rules: move generation, legality
// filtering, move execution and check detection over a chess.Board.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a game in progress: the board, the side to move and each
// colour's configured promotion role. A Position is not safe for concurrent
// use.
type Position struct {
	board      chess.Board
	toMove     chess.Colour
	promotions [2]chess.Role // indexed by colour
	rules      config.RulesConfig
	ply        int
}

// MoveResult reports an accepted move and the state it left the opponent in.
type MoveResult struct {
	Move     Move
	Class    chess.MoveClass
	Unit     chess.Unit  // the moved unit after the move
	Captured *chess.Unit // nil if nothing was captured
	Promoted bool
	Opponent chess.Colour      // the side now to move
	Status   chess.CheckStatus // status of Opponent
}

// Checkmated returns the checkmated colour if the move delivered mate.
func (r MoveResult) Checkmated() (chess.Colour, bool) {
	return r.Opponent, r.Status == chess.Checkmate
}

// Option configures a Position at construction.
type Option func(*Position)

// WithRules sets the rules the position is played under.
func WithRules(rules config.RulesConfig) Option {
	return func(p *Position) {
		p.rules = rules
	}
}

// WithActiveColour sets the side to move. The default is White.
func WithActiveColour(colour chess.Colour) Option {
	return func(p *Position) {
		p.toMove = colour
	}
}

func newPosition(opts []Option) (*Position, error) {
	p := &Position{
		toMove: chess.White,
		rules:  config.NewRulesConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.rules.Validate(); err != nil {
		return nil, err
	}
	if p.toMove != chess.White && p.toMove != chess.Black {
		return nil, fmt.Errorf("active colour %d: %w", p.toMove, chesserrors.ErrInvalidConfig)
	}
	p.promotions = [2]chess.Role{p.rules.DefaultPromotion, p.rules.DefaultPromotion}
	return p, nil
}

// NewPosition returns the standard starting position with White to move.
// It fails only if the options carry invalid rules.
func NewPosition(opts ...Option) (*Position, error) {
	p, err := newPosition(opts)
	if err != nil {
		return nil, err
	}
	p.board.SetupInitialPosition()
	return p, nil
}

// NewCustomPosition builds a position from 64 entries indexed rank*8+file;
// a nil entry is an empty square. Every unit starts unmoved.
func NewCustomPosition(pieces []*chess.Piece, opts ...Option) (*Position, error) {
	if len(pieces) != chess.NumSquares {
		return nil, fmt.Errorf("got %d entries, want %d: %w", len(pieces), chess.NumSquares, chesserrors.ErrInvalidBoardSize)
	}
	p, err := newPosition(opts)
	if err != nil {
		return nil, err
	}
	p.board = *chess.NewBoard()
	for i, piece := range pieces {
		if piece == nil {
			continue
		}
		if err := validPiece(*piece); err != nil {
			return nil, fmt.Errorf("square %s: %w", chess.SquareAt(i), err)
		}
		sq := chess.SquareAt(i)
		p.board.Place(sq, chess.NewUnit(piece.Colour, piece.Role, sq))
	}
	return p, nil
}

func validPiece(piece chess.Piece) error {
	if piece.Colour != chess.White && piece.Colour != chess.Black {
		return fmt.Errorf("colour %d: %w", piece.Colour, chesserrors.ErrInvalidPiece)
	}
	if piece.Role < chess.King || piece.Role >= chess.NumRoles {
		return fmt.Errorf("role %d: %w", piece.Role, chesserrors.ErrInvalidPiece)
	}
	return nil
}

// ActiveColour returns the side to move.
func (p *Position) ActiveColour() chess.Colour { return p.toMove }

// Ply returns the number of accepted moves.
func (p *Position) Ply() int { return p.ply }

// Rules returns the rules the position is played under.
func (p *Position) Rules() config.RulesConfig { return p.rules }

// Board returns a copy of the board.
func (p *Position) Board() *chess.Board { return p.board.Copy() }

// PromotionRole returns the role colour's pawns promote to.
func (p *Position) PromotionRole(colour chess.Colour) chess.Role {
	return p.promotions[colour]
}

// SetPromotionRole configures the role colour's pawns promote to.
// King and Pawn are rejected and leave the configuration unchanged.
func (p *Position) SetPromotionRole(colour chess.Colour, role chess.Role) error {
	if !role.IsPromotable() {
		return fmt.Errorf("%s for %s: %w", role, colour, chesserrors.ErrInvalidPromotion)
	}
	if colour != chess.White && colour != chess.Black {
		return fmt.Errorf("colour %d: %w", colour, chesserrors.ErrInvalidPiece)
	}
	p.promotions[colour] = role
	return nil
}

// LegalMoves returns the legal destinations of the unit on sq, whichever
// colour it belongs to. It is empty for an empty or off-board square.
func (p *Position) LegalMoves(sq chess.Square) []chess.Square {
	if !sq.Valid() {
		return nil
	}
	return LegalMoves(&p.board, sq, p.rules)
}

// AllLegalMoves returns every legal move of the side to move.
func (p *Position) AllLegalMoves() []Move {
	return AllLegalMoves(&p.board, p.toMove, p.rules)
}

// Snapshot returns the 64 cells indexed rank*8+file; nil means empty.
func (p *Position) Snapshot() []*chess.Piece {
	return p.board.Snapshot()
}

// Status reports the check status of the side to move.
func (p *Position) Status() chess.CheckStatus {
	return StatusOf(&p.board, p.toMove, p.rules)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return IsInCheck(&p.board, p.toMove, p.rules)
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// RequestMove plays the unit on from to "to". The unit must belong to the
// side to move and "to" must be one of its legal destinations. On success
// the side to move passes to the opponent, even when the opponent is mated.
// A rejected move leaves the position unchanged.
func (p *Position) RequestMove(from, to chess.Square) (MoveResult, error) {
	reject := func(err error) (MoveResult, error) {
		return MoveResult{}, &chesserrors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: p.ply}
	}
	if !from.Valid() || !to.Valid() {
		return reject(chesserrors.ErrInvalidSquare)
	}
	u, ok := p.board.At(from)
	if !ok {
		return reject(chesserrors.ErrNoUnit)
	}
	if u.Colour != p.toMove {
		return reject(chesserrors.ErrNotYourTurn)
	}
	if !containsSquare(LegalMoves(&p.board, from, p.rules), to) {
		return reject(chesserrors.ErrIllegalMove)
	}

	outcome, err := ApplyMove(&p.board, from, to, p.promotions[u.Colour])
	if err != nil {
		return reject(err)
	}

	opponent := p.toMove.Opposite()
	p.toMove = opponent
	p.ply++
	return MoveResult{
		Move:     Move{From: from, To: to},
		Class:    outcome.Class,
		Unit:     outcome.Unit,
		Captured: outcome.Captured,
		Promoted: outcome.Promoted,
		Opponent: opponent,
		Status:   StatusOf(&p.board, opponent, p.rules),
	}, nil
}

// Successor returns the position after m without validating it or computing
// the opponent's status. m must be one of AllLegalMoves; it is meant for
// tree walks that already enumerate legal moves.
func (p *Position) Successor(m Move) (*Position, error) {
	u, ok := p.board.At(m.From)
	if !ok {
		return nil, chesserrors.ErrNoUnit
	}
	next := p.Clone()
	if _, err := ApplyMove(&next.board, m.From, m.To, p.promotions[u.Colour]); err != nil {
		return nil, err
	}
	next.toMove = p.toMove.Opposite()
	next.ply++
	return next, nil
}
