package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestAssertHelpersPass(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "e4", "e4", "square %d", 1)
	AssertNoError(t, nil)
	AssertErrorIs(t, errors.Wrap(errors.ErrInvalidMove, "e2e5"), errors.ErrInvalidMove)
	AssertContains(t, "Black to move", "Black")
	AssertTrue(t, true)
	AssertFalse(t, false, "with message")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"test message"}, "test message"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{123}, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestParseLayout(t *testing.T) {
	b, err := ParseLayout("Ke1 Rh1 ke8 pd7")
	AssertNoError(t, err)
	AssertEqual(t, b.Placement(), "....k.../...p..../......../......../......../......../......../....K..R")

	for _, bad := range []string{"Xe1", "Ke9", "Ke", "Ke1 Ke1", "K e1"} {
		if _, err := ParseLayout(bad); err == nil {
			t.Errorf("ParseLayout(%q) error = nil; want error", bad)
		}
	}
}

func TestParsePlacements(t *testing.T) {
	got, err := ParsePlacements("Qd1 nb8")
	AssertNoError(t, err)
	want := []Placement{
		{Square: chess.D1, Kind: chess.Queen, Colour: chess.White},
		{Square: chess.B8, Kind: chess.Knight, Colour: chess.Black},
	}
	AssertEqual(t, got, want)
}

func TestActivated(t *testing.T) {
	targets := []chess.Target{
		{Square: chess.E4, Status: chess.NewStatus(chess.Movable, chess.White).Activate()},
		{Square: chess.D3, Status: chess.NewStatus(chess.Threaten, chess.White)},
		{Square: chess.E3, Status: chess.NewStatus(chess.Movable, chess.White).Activate()},
	}
	AssertEqual(t, Activated(targets), Squares(t, "e4 e3"))
	AssertEqual(t, Squares(t, "h8 a1"), []chess.Square{chess.A1, chess.H8})
}
