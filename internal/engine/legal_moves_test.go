package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestLegalTargets(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		from   string
		want   string
	}{
		{"pawn from start", "Pe2 Ke1 ke8", "e2", "e3 e4"},
		{"pinned knight", "Ke1 Nd2 bb4 ke8", "d2", ""},
		{"king versus rook on the e-file", "Ke1 re8", "e1", "d1 d2 f1 f2"},
		{"rook must block", "Ke1 Ra2 re8 ka8", "a2", "e2"},
		{"king may capture undefended checker", "Ke1 re2 ka8", "e1", "d1 e2 f1"},
		{"king may not capture defended checker", "Ke1 re2 rh2 ka8", "e1", "d1 f1"},
		{"castling both sides, no marker", "Ke1 Ra1 Rh1 ke8", "e1", "c1 d1 d2 e2 f1 f2 g1"},
		{"empty square", "Ke1 ke8", "e4", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.SetupBoard(t, tt.layout)
			got := testutil.Activated(LegalTargets(board, testutil.MustSquare(t, tt.from)))
			testutil.AssertEqual(t, got, testutil.Squares(t, tt.want))
		})
	}
}

func TestLegalTargets_KeepsReach(t *testing.T) {
	board := testutil.SetupBoard(t, "Ke1 Ra1 ke8")
	targets := LegalTargets(board, chess.E1)

	var marker *chess.Target
	for i := range targets {
		if targets[i].Square == chess.B1 {
			marker = &targets[i]
		}
	}
	if marker == nil {
		t.Fatal("queenside marker b1 missing from reach")
	}
	testutil.AssertEqual(t, marker.Status.Kind, chess.Castling)
	testutil.AssertFalse(t, marker.Status.Activated, "b1 marker is never a landing square")
}

func TestLegalTargets_EnPassantExposingKing(t *testing.T) {
	board := testutil.SetupBoard(t, "Kh5 Pe5 pd7 ra5 ke8")
	if _, err := Apply(board, chess.D7, chess.D5, chess.NewStatus(chess.Movable, chess.Black)); err != nil {
		t.Fatal(err)
	}

	targets := LegalTargets(board, chess.E5)
	for _, target := range targets {
		if target.Square == chess.D6 {
			testutil.AssertEqual(t, target.Status.Kind, chess.EnPassant)
			testutil.AssertFalse(t, target.Status.Activated, "en passant would expose the king")
		}
	}
	testutil.AssertEqual(t, testutil.Activated(targets), []chess.Square{chess.E6})
}

func TestMoves(t *testing.T) {
	board := chess.NewStandardBoard()

	white := Moves(board, chess.White)
	testutil.AssertEqual(t, len(white), 20)
	testutil.AssertEqual(t, len(Moves(board, chess.Black)), 20)

	texts := make(map[string]bool)
	for _, m := range white {
		texts[m.String()] = true
	}
	for _, want := range []string{"e2e4", "g1f3", "b1a3", "a2a3", "h2h4"} {
		testutil.AssertTrue(t, texts[want], "missing %s", want)
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		colour chess.Colour
		want   bool
	}{
		{"starting king", "Ke1 ke8", chess.White, true},
		{"stalemated", "Ka1 kc2 qb3", chess.White, false},
		{"mated", "Kg1 Pf2 Pg2 Ph2 re1 ke8", chess.White, false},
		{"mate escaped by capture", "Kg1 Pf2 Pg2 Ph2 Qd1 re1 ke8", chess.White, true},
		{"no pieces", "ke8", chess.White, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.SetupBoard(t, tt.layout)
			testutil.AssertEqual(t, HasLegalMoves(board, tt.colour), tt.want)
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		colour chess.Colour
		want   bool
	}{
		{"rook on file", "Ke1 re8", chess.White, true},
		{"blocked rook", "Ke1 Pe2 re8", chess.White, false},
		{"knight", "Ke1 nd3", chess.White, true},
		{"pawn", "ke8 Pd7", chess.Black, true},
		{"pawn pushes do not check", "ke5 Pe4", chess.Black, false},
		{"no king", "re8", chess.White, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.SetupBoard(t, tt.layout)
			testutil.AssertEqual(t, IsInCheck(board, tt.colour), tt.want)
		})
	}
}

func TestCheckingPieces(t *testing.T) {
	board := testutil.SetupBoard(t, "Ke1 re8 nd3 ka8")
	testutil.AssertEqual(t, CheckingPieces(board, chess.White), []chess.Square{chess.D3, chess.E8})
	testutil.AssertEqual(t, len(CheckingPieces(board, chess.Black)), 0)
}
