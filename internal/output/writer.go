package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/game"
)

// GameWriter writes snapshots of games: the current position, state and
// move list.
type GameWriter interface {
	WriteGame(g *game.Game) error

	// Flush writes anything held back by a batching writer.
	Flush() error

	Close() error
}

// TextWriter writes a board diagram, the state line and the move list.
type TextWriter struct {
	w    io.Writer
	opts Options
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts Options) *TextWriter {
	return &TextWriter{
		w:    w,
		opts: opts,
	}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	opts := tw.opts
	opts.Selected = g.Selected()
	if err := RenderBoard(tw.w, g.Board(), opts); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw.w, "%s to move, %s\n", g.Turn(), g.State()); err != nil {
		return err
	}
	if history := g.History(); len(history) > 0 {
		if _, err := fmt.Fprintln(tw.w, game.FormatHistory(history)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written as each game arrives.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op.
func (tw *TextWriter) Close() error { return nil }

// JSONWriter encodes game snapshots as JSON. Batched writers collect
// games into one {"games": [...]} document written on Flush or Close.
type JSONWriter struct {
	w      io.Writer
	games  []*game.Game
	single bool
}

// NewJSONWriter returns a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle returns a JSON writer that encodes each game as it
// is written.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame encodes g, or holds it until Flush when batching.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	if jw.single {
		return OutputGameJSON(g, jw.w)
	}
	jw.games = append(jw.games, g)
	return nil
}

// Flush writes the held games and empties the batch.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes the batch.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
