package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Terminal colour codes.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

// palette wraps text in colour codes when colour output is enabled.
type palette bool

func (p palette) paint(code, s string) string {
	if !p {
		return s
	}
	return code + s + reset
}

// renderBoard draws the board with rank 8 at the top. Squares in marks are
// shown as '*' when empty and highlighted when occupied.
func renderBoard(w io.Writer, pieces []*chess.Piece, colour palette, marks []chess.Square) {
	marked := make(map[int]bool, len(marks))
	for _, sq := range marks {
		marked[sq.Index()] = true
	}

	files := colour.paint(cyan, "  a b c d e f g h")
	fmt.Fprintln(w, files)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var line strings.Builder
		label := colour.paint(cyan, fmt.Sprintf("%d", rank+1))
		line.WriteString(label)
		for file := 0; file < chess.BoardSize; file++ {
			i := rank*chess.BoardSize + file
			line.WriteByte(' ')
			line.WriteString(cellText(pieces[i], marked[i], colour))
		}
		line.WriteByte(' ')
		line.WriteString(label)
		fmt.Fprintln(w, line.String())
	}
	fmt.Fprintln(w, files)
}

func cellText(piece *chess.Piece, marked bool, colour palette) string {
	if piece == nil {
		if marked {
			return colour.paint(yellow, "*")
		}
		return "."
	}
	letter := string(piece.Role.Letter())
	if piece.Colour == chess.Black {
		letter = strings.ToLower(letter)
	}
	switch {
	case marked:
		return colour.paint(yellow, letter)
	case piece.Colour == chess.White:
		return colour.paint(blue, letter)
	default:
		return colour.paint(red, letter)
	}
}

// colourName renders a side's name in its display colour.
func colourName(c chess.Colour, colour palette) string {
	if c == chess.White {
		return colour.paint(blue, c.String())
	}
	return colour.paint(red, c.String())
}
