// Package game drives a two-player game on top of the rules engine: it keeps
// the turn, the current selection and its legal targets, the move history and
// the play state (check, promotion, mate, stalemate, draw).
//
// A Game is not safe for concurrent use; one caller drives one game.
package game

import (
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Game is a single game between White and Black. White moves first.
type Game struct {
	id    uuid.UUID
	board *chess.Board
	turn  chess.Colour
	state State

	selected chess.Square
	legal    []chess.Target

	history []Ply
	log     log.Interface
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for selection, move and phase events.
func WithLogger(l log.Interface) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithID sets the game identifier. A random one is used otherwise.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New creates a game on an empty board. Pieces are placed with Spawn.
func New(opts ...Option) *Game {
	return newGame(chess.NewBoard(), opts)
}

// NewStandard creates a game from the standard initial position.
func NewStandard(opts ...Option) *Game {
	return newGame(chess.NewStandardBoard(), opts)
}

func newGame(board *chess.Board, opts []Option) *Game {
	g := &Game{
		id:       uuid.New(),
		board:    board,
		turn:     chess.White,
		state:    playing(),
		selected: chess.NoSquare,
		log:      &log.Logger{Handler: discard.Default, Level: log.InfoLevel},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.WithField("game", g.id.String())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// State returns the current play state.
func (g *Game) State() State {
	return g.state
}

// Board returns a snapshot of all 64 squares. The pieces in it are copies.
func (g *Game) Board() []chess.Cell {
	return g.board.Snapshot()
}

// Placement returns the piece placement, rank 8 first, e.g.
// "rnbqkbnr/pppppppp/......../......../......../......../PPPPPPPP/RNBQKBNR".
func (g *Game) Placement() string {
	return g.board.Placement()
}

// Selected returns the selected square, or NoSquare.
func (g *Game) Selected() chess.Square {
	return g.selected
}

// LegalSquares returns the squares the selected piece may move to.
func (g *Game) LegalSquares() []chess.Square {
	var squares []chess.Square
	for _, t := range g.legal {
		if t.Status.Activated {
			squares = append(squares, t.Square)
		}
	}
	return squares
}

// History returns a copy of the plies played so far.
func (g *Game) History() []Ply {
	return append([]Ply(nil), g.history...)
}

// IsKingChecked reports whether the king of colour c is in check.
func (g *Game) IsKingChecked(c chess.Colour) bool {
	return g.board.IsKingChecked(c)
}

// Spawn places a new piece during setup.
func (g *Game) Spawn(sq chess.Square, kind chess.Kind, colour chess.Colour) error {
	piece := chess.NewPiece(kind, colour)
	if piece == nil {
		return errors.Wrapf(errors.ErrInvalidLayout, "spawn kind %d", kind)
	}
	if err := g.board.Spawn(sq, piece); err != nil {
		return err
	}
	g.deselect()
	if !g.state.Phase.IsTerminal() && g.state.Phase != Promoting {
		g.state = g.checkState()
	}
	g.log.WithFields(log.Fields{
		"square": sq.String(),
		"piece":  chess.Name(piece),
	}).Debug("spawned")
	return nil
}

// SpawnLayout spawns every placement of a layout such as "Ke1 Rh1 ke8".
// It stops at the first failure; pieces spawned before it stay.
func (g *Game) SpawnLayout(layout string) error {
	for _, token := range strings.Fields(layout) {
		kind, colour, sq, err := chess.ParsePlacement(token)
		if err != nil {
			return err
		}
		if err := g.Spawn(sq, kind, colour); err != nil {
			return errors.Wrapf(err, "spawn %s", token)
		}
	}
	return nil
}

// Moves lists the legal moves of the side to move. It is empty while a
// promotion is pending and after the game has ended.
func (g *Game) Moves() []engine.Move {
	if g.ready() != nil {
		return nil
	}
	return engine.Moves(g.board, g.turn)
}

// SelectPiece selects the piece on sq and marks its legal targets on the
// board. Only pieces of the side to move can be selected.
func (g *Game) SelectPiece(sq chess.Square) error {
	if err := g.ready(); err != nil {
		return err
	}
	piece := g.board.Piece(sq)
	if piece == nil {
		return &errors.MoveError{Err: errors.ErrNoPieceFound, From: sq.String()}
	}
	if piece.Colour() != g.turn {
		return &errors.MoveError{Err: errors.ErrNotYourTurn, From: sq.String(), Piece: chess.Name(piece)}
	}

	g.board.ClearMarks()
	g.legal = engine.LegalTargets(g.board, sq)
	g.board.MarkAll(g.legal)
	g.selected = sq

	g.log.WithFields(log.Fields{
		"from":  sq.String(),
		"piece": chess.Name(piece),
		"moves": len(g.LegalSquares()),
	}).Debug("selected")
	return nil
}

// MovePiece moves the selected piece from from to to. Moving a piece onto
// its own square cancels the selection. On failure the board is unchanged.
func (g *Game) MovePiece(from, to chess.Square) error {
	if from == to {
		g.deselect()
		return nil
	}
	if err := g.ready(); err != nil {
		return err
	}

	idx := slices.IndexFunc(g.legal, func(t chess.Target) bool {
		return t.Square == to && t.Status.Activated
	})
	if from != g.selected || idx < 0 {
		return &errors.MoveError{
			Err:   errors.ErrInvalidMove,
			Ply:   len(g.history) + 1,
			From:  from.String(),
			To:    to.String(),
			Piece: chess.Name(g.board.Piece(from)),
		}
	}

	rec, err := engine.Apply(g.board, from, to, g.legal[idx].Status)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: len(g.history) + 1, From: from.String(), To: to.String()}
	}
	g.deselect()
	g.turn = g.turn.Opposite()

	ply := newPly(len(g.history)+1, rec)
	g.history = append(g.history, ply)
	g.log.WithFields(log.Fields{
		"from":  from.String(),
		"to":    to.String(),
		"piece": rec.Piece.String(),
		"ply":   ply.Number,
	}).Info("moved")

	if rec.Promotion {
		g.setState(State{Phase: Promoting, By: rec.Colour, Pawn: to})
		return nil
	}
	g.evaluate()
	return nil
}

// ResolvePromotion replaces the pawn awaiting promotion with a piece of the
// given kind and resumes play. It returns the new piece.
func (g *Game) ResolvePromotion(kind chess.Kind) (chess.Piece, error) {
	if g.state.Phase != Promoting {
		return nil, errors.ErrNoPromotion
	}
	sq := g.state.Pawn
	pawn, ok := g.board.Piece(sq).(*chess.PawnPiece)
	if !ok {
		panic("game: promoting pawn missing from " + sq.String())
	}
	promoted, err := pawn.Promote(kind)
	if err != nil {
		return nil, err
	}
	if err := g.board.Replace(sq, promoted); err != nil {
		return nil, err
	}
	if n := len(g.history); n > 0 {
		g.history[n-1].Promotion = kind
	}
	g.log.WithFields(log.Fields{
		"square": sq.String(),
		"piece":  chess.Name(promoted),
	}).Info("promoted")

	g.evaluate()
	return promoted.Clone(), nil
}

// ready reports whether selection and movement are currently allowed.
func (g *Game) ready() error {
	switch {
	case g.state.Phase == Promoting:
		return errors.ErrPromotionPending
	case g.state.Phase.IsTerminal():
		return errors.ErrGameOver
	}
	return nil
}

func (g *Game) deselect() {
	g.board.ClearMarks()
	g.legal = nil
	g.selected = chess.NoSquare
}

// evaluate moves the state machine after a completed move. Game-ending
// outcomes need both kings on the board.
func (g *Game) evaluate() {
	if g.board.KingSquare(chess.White) == chess.NoSquare || g.board.KingSquare(chess.Black) == chess.NoSquare {
		g.setState(g.checkState())
		g.annotate(g.state.Phase == InCheck, false)
		return
	}

	next := playing()
	switch engine.Evaluate(g.board, g.turn) {
	case engine.Check:
		next = State{Phase: InCheck, By: g.turn.Opposite(), Pawn: chess.NoSquare}
	case engine.Checkmate:
		next = State{Phase: Checkmate, By: g.turn.Opposite(), Pawn: chess.NoSquare}
	case engine.Stalemate:
		next.Phase = Stalemate
	case engine.InsufficientMaterial:
		next.Phase = Drawn
	}
	g.setState(next)
	g.annotate(g.board.IsKingChecked(g.turn), next.Phase == Checkmate)
}

func (g *Game) checkState() State {
	if g.board.IsKingChecked(g.turn) {
		return State{Phase: InCheck, By: g.turn.Opposite(), Pawn: chess.NoSquare}
	}
	return playing()
}

func (g *Game) annotate(check, mate bool) {
	if n := len(g.history); n > 0 {
		g.history[n-1].Check = check
		g.history[n-1].Mate = mate
	}
}

func (g *Game) setState(next State) {
	if next.Phase != g.state.Phase {
		entry := g.log.WithFields(log.Fields{
			"phase": next.Phase.String(),
			"turn":  g.turn.String(),
		})
		if next.Phase.IsTerminal() {
			entry.Info("game over")
		} else {
			entry.Debug("phase changed")
		}
	}
	g.state = next
}
