package chess

import (
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PawnPiece moves forward one square, two from its starting rank, and
// attacks diagonally forward.
type PawnPiece struct {
	colour Colour
}

func (p *PawnPiece) Kind() Kind     { return Pawn }
func (p *PawnPiece) Colour() Colour { return p.colour }
func (p *PawnPiece) Clone() Piece   { c := *p; return &c }

// Reach returns forward pushes as Movable, diagonal captures as Capturable,
// empty or friendly diagonals as Threaten, and an en-passant landing square
// when the adjacent enemy pawn has just made its double step.
func (p *PawnPiece) Reach(b *Board, from Square) []Target {
	var targets []Target
	dir := ColourOffset(p.colour)

	if one := from.Offset(0, dir); one.Valid() && b.IsEmpty(one) {
		targets = append(targets, Target{Square: one, Status: NewStatus(Movable, p.colour)})
		if from.Rank() == PawnRank(p.colour) {
			if two := from.Offset(0, 2*dir); two.Valid() && b.IsEmpty(two) {
				targets = append(targets, Target{Square: two, Status: NewStatus(Movable, p.colour)})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		diag := from.Offset(df, dir)
		if !diag.Valid() {
			continue
		}
		if victim := b.Piece(diag); victim != nil && victim.Colour() != p.colour {
			targets = append(targets, Target{Square: diag, Status: NewStatus(Capturable, p.colour)})
			continue
		}
		if p.canTakeEnPassant(b, from, diag, df) {
			targets = append(targets, Target{Square: diag, Status: NewStatus(EnPassant, p.colour)})
			continue
		}
		targets = append(targets, Target{Square: diag, Status: NewStatus(Threaten, p.colour)})
	}
	return targets
}

func (p *PawnPiece) canTakeEnPassant(b *Board, from, diag Square, df int) bool {
	if from.Rank() != EnPassantRank(p.colour) || diag != b.EnPassantTarget() || !b.IsEmpty(diag) {
		return false
	}
	side := b.Piece(from.Offset(df, 0))
	return side != nil && side.Kind() == Pawn && side.Colour() != p.colour
}

// Promote returns the piece the pawn becomes on reaching the far rank.
// Only Queen, Rook, Bishop and Knight are accepted. A promoted rook counts
// as moved and never grants castling.
func (p *PawnPiece) Promote(kind Kind) (Piece, error) {
	switch kind {
	case Queen, Bishop, Knight:
		return NewPiece(kind, p.colour), nil
	case Rook:
		return &RookPiece{colour: p.colour, moved: true}, nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", kind)
}
