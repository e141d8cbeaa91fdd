package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

const commandHelp = `  e2          select the piece on e2 and show where it can go
  e2 e4       move the piece on e2 to e4 (also e2e4 or e2-e4)
  moves       list the legal moves of the side to move
  board       show the board
  history     show the moves played so far
  json        print the game in JSON format
  spawn Ke1   place pieces, e.g. "spawn Ke1 Rh1 ke8" (uppercase is White)
  new         start a new game
  help        show this help
  quit        leave
`

// Session reads commands line by line and plays them on a game.
type Session struct {
	game    *game.Game
	in      *bufio.Scanner
	out     io.Writer
	board   output.GameWriter
	log     log.Interface
	restart func() (*game.Game, error)
}

// NewSession creates a session playing g with commands read from in.
func NewSession(g *game.Game, in io.Reader, out io.Writer, opts output.Options, logger log.Interface) *Session {
	return &Session{
		game:  g,
		in:    bufio.NewScanner(in),
		out:   out,
		board: output.NewTextWriter(out, opts),
		log:   logger,
		restart: func() (*game.Game, error) {
			return game.NewStandard(game.WithLogger(logger)), nil
		},
	}
}

// Game returns the game being played.
func (s *Session) Game() *game.Game {
	return s.game
}

// Run processes commands until quit or end of input.
func (s *Session) Run() error {
	s.show()
	for {
		s.prompt()
		if !s.in.Scan() {
			return s.in.Err()
		}
		quit, err := s.Handle(s.in.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			s.log.WithError(err).Debug("command rejected")
		}
		if quit {
			return nil
		}
	}
}

// Handle executes one command line.
func (s *Session) Handle(line string) (quit bool, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, "-", " "))
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
		return false, nil
	case "board":
		s.show()
		return false, nil
	case "moves":
		s.listMoves()
		return false, nil
	case "history":
		fmt.Fprintln(s.out, game.FormatHistory(s.game.History()))
		return false, nil
	case "json":
		return false, output.OutputGameJSON(s.game, s.out)
	case "new":
		g, err := s.restart()
		if err != nil {
			return false, err
		}
		s.game = g
		s.show()
		return false, nil
	case "spawn":
		if err := s.game.SpawnLayout(strings.Join(fields[1:], " ")); err != nil {
			return false, err
		}
		s.show()
		return false, nil
	}

	squares, err := parseSquares(fields)
	if err != nil {
		return false, err
	}
	if len(squares) == 1 {
		if err := s.game.SelectPiece(squares[0]); err != nil {
			return false, err
		}
		s.show()
		return false, nil
	}
	return false, s.move(squares[0], squares[1])
}

// move selects from when needed, moves, and asks for the promotion piece.
func (s *Session) move(from, to chess.Square) error {
	if s.game.Selected() != from {
		if err := s.game.SelectPiece(from); err != nil {
			return err
		}
	}
	if err := s.game.MovePiece(from, to); err != nil {
		return err
	}
	if s.game.State().Phase == game.Promoting {
		if err := s.promote(); err != nil {
			return err
		}
	}
	s.show()
	return nil
}

// promote reads promotion choices until one is accepted.
func (s *Session) promote() error {
	for {
		fmt.Fprint(s.out, "promote to (q, r, b, n): ")
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		choice := strings.TrimSpace(s.in.Text())
		kind, ok := chess.KindFromLetter(firstByte(choice))
		if !ok {
			fmt.Fprintf(s.out, "error: %q is not a piece letter\n", choice)
			continue
		}
		if _, err := s.game.ResolvePromotion(kind); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		return nil
	}
}

func (s *Session) listMoves() {
	moves := s.game.Moves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	fmt.Fprintf(s.out, "%d moves: %s\n", len(moves), strings.Join(names, " "))
}

func (s *Session) show() {
	if err := s.board.WriteGame(s.game); err != nil {
		s.log.WithError(err).Warn("writing board")
	}
}

func (s *Session) prompt() {
	if s.game.State().Phase.IsTerminal() {
		fmt.Fprint(s.out, "game over> ")
		return
	}
	fmt.Fprintf(s.out, "%s> ", s.game.Turn())
}

// parseSquares reads one or two squares from "e2", "e2 e4" or "e2e4".
func parseSquares(fields []string) ([]chess.Square, error) {
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) > 2 {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "too many squares in %q", strings.Join(fields, " "))
	}
	squares := make([]chess.Square, 0, len(fields))
	for _, f := range fields {
		sq, ok := chess.FromNotation(strings.ToLower(f))
		if !ok {
			return nil, fmt.Errorf("unknown command or square %q", f)
		}
		squares = append(squares, sq)
	}
	return squares, nil
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
