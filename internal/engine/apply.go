package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Record describes a move that has been applied to a board.
type Record struct {
	From   chess.Square
	To     chess.Square
	Piece  chess.Kind
	Colour chess.Colour
	Status chess.StatusKind

	// Captured is the kind taken, zero when nothing was captured.
	// CapturedOn differs from To only for en passant.
	Captured   chess.Kind
	CapturedOn chess.Square

	// RookFrom and RookTo are set for castling, NoSquare otherwise.
	RookFrom chess.Square
	RookTo   chess.Square

	// Promotion is true when a pawn reached the far rank and must be replaced.
	Promotion bool
}

// IsCastle reports whether the record is a castling move.
func (r Record) IsCastle() bool {
	return r.RookFrom != chess.NoSquare
}

// IsKingside reports whether the record is a kingside castle.
func (r Record) IsKingside() bool {
	return r.IsCastle() && r.To.File() > r.From.File()
}

// Apply moves the piece on from to to and performs the side effects the
// status calls for: removing the pawn taken en passant, relocating the rook
// when castling, recording that a king or rook has moved, and setting or
// clearing the en-passant target. Legality is not checked.
func Apply(board *chess.Board, from, to chess.Square, status chess.MoveStatus) (Record, error) {
	piece := board.Piece(from)
	if piece == nil {
		return Record{}, errors.Wrapf(errors.ErrEmptySource, "apply %s%s", from, to)
	}
	if !to.Valid() {
		return Record{}, errors.Wrapf(errors.ErrOutOfBounds, "apply %s to %d", from, to)
	}
	colour := piece.Colour()

	rec := Record{
		From:       from,
		To:         to,
		Piece:      piece.Kind(),
		Colour:     colour,
		Status:     status.Kind,
		CapturedOn: chess.NoSquare,
		RookFrom:   chess.NoSquare,
		RookTo:     chess.NoSquare,
	}
	if victim := board.Piece(to); victim != nil {
		rec.Captured = victim.Kind()
		rec.CapturedOn = to
	}

	switch status.Kind {
	case chess.EnPassant:
		applyEnPassant(board, &rec)
	case chess.Castling:
		if err := applyCastle(board, &rec); err != nil {
			return Record{}, err
		}
	}

	board.SetEnPassantTarget(passedSquare(piece, from, to))
	if err := board.Move(from, to); err != nil {
		return Record{}, err
	}
	if m, ok := piece.(mover); ok {
		m.SetMoved()
	}

	rec.Promotion = piece.Kind() == chess.Pawn && to.Rank() == chess.PromotionRank(colour)
	return rec, nil
}

// mover is implemented by pieces whose first move matters.
type mover interface {
	SetMoved()
}

// applyEnPassant removes the pawn that is captured en passant. It stands
// beside the capturing pawn, on the capturing pawn's rank and the landing file.
func applyEnPassant(board *chess.Board, rec *Record) {
	victim, err := chess.FromPosition(rec.To.File(), rec.From.Rank())
	if err != nil {
		return
	}
	if board.Remove(victim) != nil {
		rec.Captured = chess.Pawn
		rec.CapturedOn = victim
	}
}

// passedSquare returns the square skipped by a double pawn step, or NoSquare.
func passedSquare(piece chess.Piece, from, to chess.Square) chess.Square {
	if piece.Kind() != chess.Pawn || abs(to.Rank()-from.Rank()) != 2 {
		return chess.NoSquare
	}
	return from.Offset(0, sign(to.Rank()-from.Rank()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
