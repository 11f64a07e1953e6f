package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/session"
)

var errQuit = errors.New("quit")

// shell runs one game at a time through a session manager.
type shell struct {
	mgr    *session.Manager
	gameID string
	out    io.Writer
	colour palette
}

type command struct {
	usage string
	help  string
	run   func(s *shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"move":    {"move <from> <to>", "move a unit, e.g. move e2 e4 (or just e2e4)", (*shell).cmdMove},
		"moves":   {"moves [square]", "list legal moves of a square or of the side to move", (*shell).cmdMoves},
		"promote": {"promote [white|black] <role>", "set the promotion role", (*shell).cmdPromote},
		"board":   {"board", "show the board", (*shell).cmdBoard},
		"status":  {"status", "show the side to move and check status", (*shell).cmdStatus},
		"new":     {"new", "start a new game", (*shell).cmdNew},
		"fen":     {"fen [fen]", "show the position as FEN, or start a game from one", (*shell).cmdFEN},
		"help":    {"help", "show this help", (*shell).cmdHelp},
		"quit":    {"quit", "leave the shell", func(*shell, []string) error { return errQuit }},
	}
	commands["exit"] = commands["quit"]
}

func newShell(mgr *session.Manager, out io.Writer, colour bool) (*shell, error) {
	s := &shell{mgr: mgr, out: out, colour: palette(colour)}
	if err := s.cmdNew(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// execute runs one input line. It returns errQuit when the shell should end;
// command failures are printed and not returned.
func (s *shell) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := commands[name]
	if !ok {
		if len(fields) == 1 && len(name) == 4 {
			cmd, args = commands["move"], []string{name}
		} else {
			fmt.Fprintf(s.out, "unknown command %q; type 'help'\n", fields[0])
			return nil
		}
	}

	err := cmd.run(s, args)
	if errors.Is(err, errQuit) {
		return err
	}
	if err != nil {
		fmt.Fprintln(s.out, s.colour.paint(red, "error: "+err.Error()))
		if hint := describeError(err); hint != "" {
			fmt.Fprintln(s.out, hint)
		}
	}
	return nil
}

func (s *shell) prompt(base string) string {
	snap, err := s.mgr.Snapshot(s.gameID)
	if err != nil {
		return base
	}
	name := strings.TrimRight(base, "> ")
	return fmt.Sprintf("%s [%s]> ", name, colourName(snap.ActiveColour, s.colour))
}

func parseMoveArgs(args []string) (chess.Square, chess.Square, error) {
	var from, to string
	switch {
	case len(args) == 2:
		from, to = args[0], args[1]
	case len(args) == 1 && len(args[0]) == 4:
		from, to = args[0][:2], args[0][2:]
	case len(args) == 1 && len(args[0]) == 5 && args[0][2] == '-':
		from, to = args[0][:2], args[0][3:]
	default:
		return chess.Square{}, chess.Square{}, fmt.Errorf("usage: move <from> <to>")
	}
	f, err := chess.ParseSquare(from)
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	t, err := chess.ParseSquare(to)
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	return f, t, nil
}

func (s *shell) cmdMove(args []string) error {
	from, to, err := parseMoveArgs(args)
	if err != nil {
		return err
	}
	res, err := s.mgr.Move(s.gameID, session.MoveRequest{
		FromFile: from.File, FromRank: from.Rank,
		ToFile: to.File, ToRank: to.Rank,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s %s", res.Move, res.Class)
	if res.Captured != nil {
		fmt.Fprintf(s.out, ", captures %s", res.Captured.Piece)
	}
	if res.Promoted {
		fmt.Fprintf(s.out, ", promotes to %s", res.Unit.Role)
	}
	fmt.Fprintln(s.out)

	if colour, mated := res.Checkmated(); mated {
		fmt.Fprintln(s.out, s.colour.paint(yellow, fmt.Sprintf("checkmate: %s wins", colour.Opposite())))
	} else if res.Status == chess.Check {
		fmt.Fprintln(s.out, s.colour.paint(yellow, fmt.Sprintf("%s is in check", res.Opponent)))
	}
	return s.cmdBoard(nil)
}

func (s *shell) cmdMoves(args []string) error {
	snap, err := s.mgr.Snapshot(s.gameID)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		moves, err := s.mgr.AllLegalMoves(s.gameID)
		if err != nil {
			return err
		}
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		fmt.Fprintf(s.out, "%d legal moves: %s\n", len(moves), strings.Join(names, " "))
		return nil
	}

	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	moves, err := s.mgr.LegalMoves(s.gameID, sq.File, sq.Rank)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		fmt.Fprintf(s.out, "no legal moves from %s\n", sq)
		return nil
	}
	fmt.Fprintf(s.out, "%s: %s\n", sq, strings.Join(squareNames(moves), " "))
	renderBoard(s.out, snap.Pieces, s.colour, moves)
	return nil
}

func (s *shell) cmdPromote(args []string) error {
	snap, err := s.mgr.Snapshot(s.gameID)
	if err != nil {
		return err
	}
	req := session.PromotionRequest{Colour: strings.ToLower(snap.ActiveColour.String())}
	switch len(args) {
	case 1:
		req.Role = strings.ToLower(args[0])
	case 2:
		req.Colour, req.Role = strings.ToLower(args[0]), strings.ToLower(args[1])
	default:
		return fmt.Errorf("usage: promote [white|black] <role>")
	}
	if role, ok := chess.ParseRole(req.Role); ok {
		req.Role = strings.ToLower(role.String())
	}
	if err := s.mgr.SetPromotion(s.gameID, req); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s pawns now promote to %s\n", req.Colour, req.Role)
	return nil
}

func (s *shell) cmdBoard([]string) error {
	snap, err := s.mgr.Snapshot(s.gameID)
	if err != nil {
		return err
	}
	renderBoard(s.out, snap.Pieces, s.colour, nil)
	return nil
}

func (s *shell) cmdStatus([]string) error {
	snap, err := s.mgr.Snapshot(s.gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "game %s, ply %d, %s to move, status %s\n",
		snap.ID, snap.Ply, colourName(snap.ActiveColour, s.colour), snap.Status)
	if snap.Status == chess.Check || snap.Status == chess.Checkmate {
		checkers, err := s.mgr.Checkers(s.gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "checked by %s\n", strings.Join(squareNames(checkers), " "))
	}
	return nil
}

func (s *shell) replace(g *session.Game) {
	if s.gameID != "" {
		_ = s.mgr.Delete(s.gameID)
	}
	s.gameID = g.ID
}

func (s *shell) cmdNew([]string) error {
	g, err := s.mgr.NewGame()
	if err != nil {
		return err
	}
	s.replace(g)
	return s.cmdBoard(nil)
}

func (s *shell) cmdFEN(args []string) error {
	if len(args) == 0 {
		snap, err := s.mgr.Snapshot(s.gameID)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, snap.FEN)
		return nil
	}
	g, err := s.mgr.NewGameFromFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.replace(g)
	return s.cmdBoard(nil)
}

func (s *shell) cmdHelp([]string) error {
	for _, name := range []string{"move", "moves", "promote", "board", "status", "new", "fen", "help", "quit"} {
		cmd := commands[name]
		fmt.Fprintf(s.out, "  %-30s %s\n", cmd.usage, cmd.help)
	}
	return nil
}

func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// describeError adds a hint for the errors a player is likely to hit.
func describeError(err error) string {
	switch {
	case errors.Is(err, chesserrors.ErrNotYourTurn):
		return "it is the other side's turn"
	case errors.Is(err, chesserrors.ErrIllegalMove):
		return "that move is not legal; try 'moves <square>'"
	case errors.Is(err, chesserrors.ErrNoUnit):
		return "there is no unit on that square"
	}
	return ""
}
