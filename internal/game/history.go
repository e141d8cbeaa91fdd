package game

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Ply is one half-move in the game history.
type Ply struct {
	Number    int // 1-based
	Colour    chess.Colour
	Piece     chess.Kind
	From      chess.Square
	To        chess.Square
	Captured  chess.Kind
	Castle    bool
	Kingside  bool
	EnPassant bool
	Promotion chess.Kind
	Check     bool
	Mate      bool
}

func newPly(number int, rec engine.Record) Ply {
	return Ply{
		Number:    number,
		Colour:    rec.Colour,
		Piece:     rec.Piece,
		From:      rec.From,
		To:        rec.To,
		Captured:  rec.Captured,
		Castle:    rec.IsCastle(),
		Kingside:  rec.IsKingside(),
		EnPassant: rec.Status == chess.EnPassant,
	}
}

// MoveNumber returns the full-move number the ply belongs to.
func (p Ply) MoveNumber() int {
	return (p.Number + 1) / 2
}

// Notation returns the ply in long algebraic notation, e.g. "Ng1-f3",
// "e5xd6", "a7-a8=Q+" or "O-O".
func (p Ply) Notation() string {
	var sb strings.Builder
	switch {
	case p.Castle && p.Kingside:
		sb.WriteString("O-O")
	case p.Castle:
		sb.WriteString("O-O-O")
	default:
		if p.Piece != chess.Pawn {
			sb.WriteByte(p.Piece.Letter())
		}
		sb.WriteString(p.From.String())
		if p.Captured != 0 {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
		sb.WriteString(p.To.String())
		if p.Promotion != 0 {
			sb.WriteByte('=')
			sb.WriteByte(p.Promotion.Letter())
		}
	}
	switch {
	case p.Mate:
		sb.WriteByte('#')
	case p.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// FormatHistory renders plies as numbered move pairs: "1. e2-e4 e7-e5 2. ...".
func FormatHistory(plies []Ply) string {
	var sb strings.Builder
	for i, p := range plies {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if p.Colour == chess.White || i == 0 {
			sb.WriteString(strconv.Itoa(p.MoveNumber()))
			if p.Colour == chess.White {
				sb.WriteString(". ")
			} else {
				sb.WriteString("... ")
			}
		}
		sb.WriteString(p.Notation())
	}
	return sb.String()
}
