package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// castleRook returns the rook's origin and destination for a king moving two
// files along its back rank: H to F kingside, A to D queenside.
func castleRook(from, to chess.Square) (rookFrom, rookTo chess.Square, ok bool) {
	if from.Rank() != to.Rank() || abs(to.File()-from.File()) != 2 {
		return chess.NoSquare, chess.NoSquare, false
	}
	rank := from.Rank()
	fromFile, toFile := 0, 3
	if to.File() > from.File() {
		fromFile, toFile = 7, 5
	}
	rookFrom, _ = chess.FromPosition(fromFile, rank)
	rookTo, _ = chess.FromPosition(toFile, rank)
	return rookFrom, rookTo, true
}

// applyCastle relocates the castling rook and marks it as moved. The king
// itself is moved by the caller.
func applyCastle(board *chess.Board, rec *Record) error {
	rookFrom, rookTo, ok := castleRook(rec.From, rec.To)
	if !ok {
		return errors.Wrapf(errors.ErrInvalidMove, "castle %s%s", rec.From, rec.To)
	}
	rook, isRook := board.Piece(rookFrom).(*chess.RookPiece)
	if !isRook {
		return errors.Wrapf(errors.ErrEmptySource, "castling rook on %s", rookFrom)
	}
	if err := board.Move(rookFrom, rookTo); err != nil {
		return err
	}
	rook.SetMoved()
	rec.RookFrom = rookFrom
	rec.RookTo = rookTo
	return nil
}
