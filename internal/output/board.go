// Package output renders boards and games as text and JSON.
package output

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// ANSI sequences used for coloured boards.
const (
	ansiReset     = "\x1b[0m"
	ansiLight     = "\x1b[48;5;180m"
	ansiDark      = "\x1b[48;5;137m"
	ansiTarget    = "\x1b[48;5;71m"
	ansiSelected  = "\x1b[48;5;179m"
	ansiWhiteText = "\x1b[1;97m"
	ansiBlackText = "\x1b[1;30m"
)

var glyphs = map[chess.Colour][7]string{
	chess.White: {" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Options controls how a board is drawn.
type Options struct {
	Colour      bool
	Unicode     bool
	ShowReach   bool
	Coordinates bool
	Flip        bool

	// Selected is highlighted when ShowReach is set.
	Selected chess.Square
}

// NewOptions derives render options from the display configuration. Colour
// is resolved against w when the mode is auto.
func NewOptions(cfg *config.DisplayConfig, w io.Writer) Options {
	return Options{
		Colour:      ColourEnabled(cfg.Colour, w),
		Unicode:     cfg.Unicode,
		ShowReach:   cfg.ShowReach,
		Coordinates: cfg.Coordinates,
		Flip:        cfg.Flip,
		Selected:    chess.NoSquare,
	}
}

// ColourEnabled reports whether ANSI colour should be written to w.
func ColourEnabled(mode config.ColourMode, w io.Writer) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderBoard writes cells, a 64-square snapshot, as an 8x8 diagram.
// Without colour, squares the selected piece may move to are prefixed
// with '*'.
func RenderBoard(w io.Writer, cells []chess.Cell, opts Options) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if opts.Flip {
			rank = row
		}
		if opts.Coordinates {
			bw.WriteByte(byte('1' + rank))
			bw.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if opts.Flip {
				file = chess.BoardSize - 1 - col
			}
			idx := rank*chess.BoardSize + file
			if idx < len(cells) {
				writeCell(bw, cells[idx], opts)
			}
		}
		if opts.Colour {
			bw.WriteString(ansiReset)
		}
		bw.WriteByte('\n')
	}
	if opts.Coordinates {
		bw.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if opts.Flip {
				file = chess.BoardSize - 1 - col
			}
			bw.WriteByte(' ')
			bw.WriteByte(byte('a' + file))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeCell(bw *bufio.Writer, cell chess.Cell, opts Options) {
	target := opts.ShowReach && cell.Status.Activated
	selected := opts.ShowReach && cell.Square == opts.Selected

	if opts.Colour {
		switch {
		case selected:
			bw.WriteString(ansiSelected)
		case target:
			bw.WriteString(ansiTarget)
		case isLight(cell.Square):
			bw.WriteString(ansiLight)
		default:
			bw.WriteString(ansiDark)
		}
		if cell.Piece != nil {
			if cell.Piece.Colour() == chess.White {
				bw.WriteString(ansiWhiteText)
			} else {
				bw.WriteString(ansiBlackText)
			}
		}
		bw.WriteByte(' ')
		bw.WriteString(symbol(cell.Piece, opts.Unicode, ' '))
		return
	}

	switch {
	case target:
		bw.WriteByte('*')
	case selected:
		bw.WriteByte('>')
	default:
		bw.WriteByte(' ')
	}
	bw.WriteString(symbol(cell.Piece, opts.Unicode, '.'))
}

func symbol(p chess.Piece, unicode bool, empty byte) string {
	if p == nil {
		return string(empty)
	}
	if unicode {
		return glyphs[p.Colour()][p.Kind()]
	}
	return string(chess.Letter(p))
}

func isLight(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
