package chess

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParsePlacement parses a piece placement such as "Ke1" or "pd7": a kind
// letter, uppercase for White and lowercase for Black, then a square.
func ParsePlacement(token string) (Kind, Colour, Square, error) {
	if len(token) != 3 {
		return 0, 0, NoSquare, errors.Wrapf(errors.ErrInvalidLayout, "token %q", token)
	}
	kind, ok := KindFromLetter(token[0])
	if !ok {
		return 0, 0, NoSquare, errors.Wrapf(errors.ErrInvalidLayout, "piece letter in %q", token)
	}
	colour := White
	if token[0] >= 'a' {
		colour = Black
	}
	sq, ok := FromNotation(token[1:])
	if !ok {
		return 0, 0, NoSquare, errors.Wrapf(errors.ErrInvalidLayout, "square in %q", token)
	}
	return kind, colour, sq, nil
}

// ParseLayout builds a board from space-separated placements such as
// "Ke1 Rh1 ke8".
func ParseLayout(layout string) (*Board, error) {
	b := NewBoard()
	for _, token := range strings.Fields(layout) {
		kind, colour, sq, err := ParsePlacement(token)
		if err != nil {
			return nil, err
		}
		if err := b.Spawn(sq, NewPiece(kind, colour)); err != nil {
			return nil, errors.Wrapf(err, "layout %q", token)
		}
	}
	return b, nil
}
