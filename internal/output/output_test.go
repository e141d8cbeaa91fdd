package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func playGame(t *testing.T, moves ...string) *game.Game {
	t.Helper()
	g := game.NewStandard()
	for _, m := range moves {
		from := testutil.MustSquare(t, m[:2])
		to := testutil.MustSquare(t, m[2:])
		testutil.AssertNoError(t, g.SelectPiece(from), "SelectPiece(%s)", from)
		testutil.AssertNoError(t, g.MovePiece(from, to), "MovePiece(%s)", m)
	}
	return g
}

func render(t *testing.T, cells []chess.Cell, opts Options) []string {
	t.Helper()
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, cells, opts), "RenderBoard")
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestRenderBoard(t *testing.T) {
	got := render(t, chess.NewStandardBoard().Snapshot(), Options{Coordinates: true, Selected: chess.NoSquare})
	want := []string{
		"8  r n b q k b n r",
		"7  p p p p p p p p",
		"6  . . . . . . . .",
		"5  . . . . . . . .",
		"4  . . . . . . . .",
		"3  . . . . . . . .",
		"2  P P P P P P P P",
		"1  R N B Q K B N R",
		"   a b c d e f g h",
	}
	testutil.AssertEqual(t, got, want, "RenderBoard()")
}

func TestRenderBoard_Reach(t *testing.T) {
	g := game.NewStandard()
	testutil.AssertNoError(t, g.SelectPiece(chess.E2), "SelectPiece")

	got := render(t, g.Board(), Options{Coordinates: true, ShowReach: true, Selected: g.Selected()})
	testutil.AssertEqual(t, got[4], "4  . . . .*. . . .", "rank 4")
	testutil.AssertEqual(t, got[5], "3  . . . .*. . . .", "rank 3")
	testutil.AssertEqual(t, got[6], "2  P P P P>P P P P", "rank 2")

	got = render(t, g.Board(), Options{Coordinates: true, Selected: g.Selected()})
	testutil.AssertEqual(t, got[4], "4  . . . . . . . .", "rank 4 without reach")
}

func TestRenderBoard_Flip(t *testing.T) {
	got := render(t, chess.NewStandardBoard().Snapshot(), Options{Flip: true, Selected: chess.NoSquare})

	testutil.AssertEqual(t, len(got), 8, "line count")
	testutil.AssertEqual(t, got[0], " R N B K Q B N R", "first line")
	testutil.AssertEqual(t, got[7], " r n b k q b n r", "last line")
}

func TestRenderBoard_Unicode(t *testing.T) {
	got := render(t, chess.NewStandardBoard().Snapshot(), Options{Unicode: true, Coordinates: true, Selected: chess.NoSquare})

	testutil.AssertEqual(t, got[0], "8  ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜", "rank 8")
	testutil.AssertEqual(t, got[7], "1  ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖", "rank 1")
}

func TestRenderBoard_Colour(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBoard(&buf, chess.NewStandardBoard().Snapshot(), Options{Colour: true, Selected: chess.NoSquare})
	testutil.AssertNoError(t, err, "RenderBoard")

	out := buf.String()
	testutil.AssertContains(t, out, ansiWhiteText, "white pieces")
	testutil.AssertContains(t, out, ansiBlackText, "black pieces")
	testutil.AssertContains(t, out, ansiReset+"\n", "line reset")
	testutil.AssertFalse(t, strings.Contains(out, "."), "empty squares are blank")
}

func TestColourEnabled(t *testing.T) {
	var buf bytes.Buffer

	testutil.AssertTrue(t, ColourEnabled(config.ColourAlways, &buf), "always")
	testutil.AssertFalse(t, ColourEnabled(config.ColourNever, &buf), "never")
	testutil.AssertFalse(t, ColourEnabled(config.ColourAuto, &buf), "auto on a buffer")
}

func TestNewOptions(t *testing.T) {
	cfg := config.NewDisplayConfig()
	cfg.Unicode = true
	cfg.Colour = config.ColourAlways

	got := NewOptions(cfg, &bytes.Buffer{})
	want := Options{Colour: true, Unicode: true, ShowReach: true, Coordinates: true, Selected: chess.NoSquare}
	testutil.AssertEqual(t, got, want, "NewOptions()")
}

func TestGameToJSON(t *testing.T) {
	g := playGame(t, "e2e4", "d7d5", "e4d5")

	jg := GameToJSON(g)
	testutil.AssertEqual(t, jg.ID, g.ID().String(), "ID")
	testutil.AssertEqual(t, jg.Turn, "black", "Turn")
	testutil.AssertEqual(t, jg.State, "Playing", "State")
	testutil.AssertEqual(t, jg.PlyCount, 3, "PlyCount")
	testutil.AssertEqual(t, jg.Placement, g.Placement(), "Placement")

	want := JSONMove{
		MoveNumber: 2,
		Color:      "white",
		Notation:   "e4xd5",
		UCI:        "e4d5",
		From:       "e4",
		To:         "d5",
		Piece:      "pawn",
		Captured:   "pawn",
	}
	testutil.AssertEqual(t, jg.Moves[2], want, "Moves[2]")
}

func TestGameToJSON_Checkmate(t *testing.T) {
	g := playGame(t, "f2f3", "e7e5", "g2g4", "d8h4")

	jg := GameToJSON(g)
	testutil.AssertEqual(t, jg.State, "Checkmate", "State")
	testutil.AssertEqual(t, jg.Winner, "black", "Winner")
	testutil.AssertTrue(t, jg.Moves[3].Mate, "last move is mate")
}

// TestTextWriter_WriteGame verifies the text writer prints board, state and moves
func TestTextWriter_WriteGame(t *testing.T) {
	g := playGame(t, "e2e4", "e7e5")

	var buf bytes.Buffer
	writer := NewTextWriter(&buf, Options{Coordinates: true})
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "4  . . . . P . . .") {
		t.Errorf("missing moved pawn in:\n%s", out)
	}
	if !strings.Contains(out, "White to move, Playing\n") {
		t.Errorf("missing state line in:\n%s", out)
	}
	if !strings.HasSuffix(out, "1. e2-e4 e7-e5\n") {
		t.Errorf("missing move list in:\n%s", out)
	}
}

// TestJSONWriter_WriteGame verifies JSON writer batches games until Flush
func TestJSONWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	testutil.AssertNoError(t, writer.WriteGame(playGame(t, "e2e4")), "WriteGame")
	testutil.AssertNoError(t, writer.WriteGame(playGame(t, "d2d4")), "WriteGame")
	testutil.AssertEqual(t, buf.Len(), 0, "output before Flush")

	testutil.AssertNoError(t, writer.Flush(), "Flush")

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out), "Unmarshal")
	testutil.AssertEqual(t, len(out.Games), 2, "games")
	testutil.AssertEqual(t, out.Games[1].Moves[0].UCI, "d2d4", "second game first move")
}

// TestJSONWriter_Single verifies single mode writes immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, writer.WriteGame(playGame(t, "g1f3")), "WriteGame")

	var jg JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &jg), "Unmarshal")
	testutil.AssertEqual(t, jg.Moves[0].Notation, "Ng1-f3", "Notation")
	testutil.AssertNoError(t, writer.Close(), "Close")
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	testutil.AssertNoError(t, writer.WriteGame(game.NewStandard()), "WriteGame")

	testutil.AssertNoError(t, writer.Close(), "Close")
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ GameWriter = NewTextWriter(&buf, Options{})
	var _ GameWriter = NewJSONWriter(&buf)
}
