package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MustSquare parses algebraic notation or fails the test.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, ok := chess.FromNotation(text)
	if !ok {
		t.Fatalf("invalid square %q", text)
	}
	return sq
}

// ParseLayout builds a board from space-separated piece placements such as
// "Ke1 Rh1 ke8". Uppercase letters are White, lowercase Black.
func ParseLayout(layout string) (*chess.Board, error) {
	return chess.ParseLayout(layout)
}

// SetupBoard is ParseLayout that fails the test on error.
func SetupBoard(t testing.TB, layout string) *chess.Board {
	t.Helper()
	b, err := ParseLayout(layout)
	if err != nil {
		t.Fatalf("SetupBoard(%q): %v", layout, err)
	}
	return b
}

// Placement is one piece of a layout.
type Placement struct {
	Square chess.Square
	Kind   chess.Kind
	Colour chess.Colour
}

// ParsePlacements parses a layout without building a board.
func ParsePlacements(layout string) ([]Placement, error) {
	var out []Placement
	for _, token := range strings.Fields(layout) {
		kind, colour, sq, err := chess.ParsePlacement(token)
		if err != nil {
			return nil, err
		}
		out = append(out, Placement{Square: sq, Kind: kind, Colour: colour})
	}
	return out, nil
}

// Activated returns the activated target squares in ascending order.
func Activated(targets []chess.Target) []chess.Square {
	var out []chess.Square
	for _, t := range targets {
		if t.Status.Activated {
			out = append(out, t.Square)
		}
	}
	return chess.SquareSet(0).AddAll(out).Squares()
}

// Squares parses a space-separated list of squares, sorted ascending.
func Squares(t testing.TB, list string) []chess.Square {
	t.Helper()
	var out []chess.Square
	for _, f := range strings.Fields(list) {
		out = append(out, MustSquare(t, f))
	}
	return chess.SquareSet(0).AddAll(out).Squares()
}
