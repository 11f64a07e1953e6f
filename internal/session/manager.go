// Package session keeps a registry of games in progress, each identified by
// a UUID and guarded by its own lock.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is one registered game. Its position is only reached through the
// Manager, which holds the game's lock for every operation.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	pos       *engine.Position
	history   []engine.Move
	updatedAt time.Time
}

// Summary is a read-only view of a game.
type Summary struct {
	ID           string
	Pieces       []*chess.Piece
	ActiveColour chess.Colour
	Status       chess.CheckStatus
	Ply          int
	FEN          string
	History      []engine.Move
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Manager owns the registry of games.
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Game
	rules  config.RulesConfig
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for lifecycle events. The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRules sets the rules new games are played under.
func WithRules(rules config.RulesConfig) Option {
	return func(m *Manager) {
		m.rules = rules
	}
}

// NewManager creates an empty registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		games:  make(map[string]*Game),
		rules:  config.NewRulesConfig(),
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) register(pos *engine.Position, kind string) *Game {
	now := m.now()
	g := &Game{
		ID:        uuid.NewString(),
		CreatedAt: now,
		pos:       pos,
		updatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.logger.Printf("game %s created (%s)", g.ID, kind)
	return g
}

// NewGame registers a game from the standard starting position.
func (m *Manager) NewGame() (*Game, error) {
	pos, err := engine.NewPosition(engine.WithRules(m.rules))
	if err != nil {
		return nil, err
	}
	return m.register(pos, "standard"), nil
}

// NewCustomGame registers a game from 64 entries indexed rank*8+file.
func (m *Manager) NewCustomGame(pieces []*chess.Piece, active chess.Colour) (*Game, error) {
	pos, err := engine.NewCustomPosition(pieces, engine.WithRules(m.rules), engine.WithActiveColour(active))
	if err != nil {
		return nil, err
	}
	return m.register(pos, "custom"), nil
}

// NewGameFromFEN registers a game from a FEN string.
func (m *Manager) NewGameFromFEN(fen string) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen, engine.WithRules(m.rules))
	if err != nil {
		return nil, err
	}
	return m.register(pos, "fen"), nil
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%q: %w", id, chesserrors.ErrGameNotFound)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, chesserrors.ErrGameNotFound)
	}
	return g, nil
}

// Move validates req and plays it in game id.
func (m *Manager) Move(id string, req MoveRequest) (engine.MoveResult, error) {
	if err := validate.Struct(req); err != nil {
		return engine.MoveResult{}, fmt.Errorf("%s: %w", validationDetails(err), chesserrors.ErrInvalidSquare)
	}
	g, err := m.Get(id)
	if err != nil {
		return engine.MoveResult{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, to := req.squares()
	res, err := g.pos.RequestMove(from, to)
	if err != nil {
		var moveErr *chesserrors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.GameID = id
		}
		return engine.MoveResult{}, err
	}
	g.history = append(g.history, res.Move)
	g.updatedAt = m.now()

	m.logger.Printf("game %s: %s %s", id, res.Move, res.Class)
	if colour, mated := res.Checkmated(); mated {
		m.logger.Printf("game %s: %s is checkmated", id, colour)
	}
	return res, nil
}

// SetPromotion validates req and configures the promotion role in game id.
func (m *Manager) SetPromotion(id string, req PromotionRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", validationDetails(err), chesserrors.ErrInvalidPromotion)
	}
	g, err := m.Get(id)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	colour, role := req.parse()
	if err := g.pos.SetPromotionRole(colour, role); err != nil {
		return err
	}
	g.updatedAt = m.now()
	return nil
}

// LegalMoves returns the legal destinations of the unit on (file, rank) in game id.
func (m *Manager) LegalMoves(id string, file, rank int) ([]chess.Square, error) {
	sq, err := chess.NewSquare(file, rank)
	if err != nil {
		return nil, err
	}
	g, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.LegalMoves(sq), nil
}

// AllLegalMoves returns every legal move of the side to move in game id.
func (m *Manager) AllLegalMoves(id string) ([]engine.Move, error) {
	g, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pos.AllLegalMoves(), nil
}

// Checkers returns the squares of the units giving check to the side to move
// in game id.
func (m *Manager) Checkers(id string) ([]chess.Square, error) {
	g, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	board := g.pos.Board()
	king, ok := board.FindKing(g.pos.ActiveColour())
	if !ok {
		return nil, nil
	}
	return engine.Attackers(board, king, g.pos.ActiveColour(), g.pos.Rules()), nil
}

// Snapshot returns a read-only view of game id.
func (m *Manager) Snapshot(id string) (Summary, error) {
	g, err := m.Get(id)
	if err != nil {
		return Summary{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return Summary{
		ID:           g.ID,
		Pieces:       g.pos.Snapshot(),
		ActiveColour: g.pos.ActiveColour(),
		Status:       g.pos.Status(),
		Ply:          g.pos.Ply(),
		FEN:          g.pos.FEN(),
		History:      append([]engine.Move(nil), g.history...),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.updatedAt,
	}, nil
}

// Delete removes game id from the registry.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%s: %w", id, chesserrors.ErrGameNotFound)
	}
	delete(m.games, id)
	m.logger.Printf("game %s deleted", id)
	return nil
}

// List returns the ids of all games, oldest first.
func (m *Manager) List() []string {
	m.mu.RLock()
	games := make([]*Game, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, g)
	}
	m.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}
