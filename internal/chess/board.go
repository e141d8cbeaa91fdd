package chess

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board is the 8x8 grid of squares. Each square holds at most one piece and
// may carry a move-status mark for the currently selected piece. The board
// also keeps the attacked-square set of each colour, refreshed after every
// mutation, and the en-passant target left by the last double pawn step.
type Board struct {
	cells     [NumSquares]Piece
	marks     map[Square]MoveStatus
	attacks   [2]SquareSet
	enPassant Square
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		marks:     make(map[Square]MoveStatus),
		enPassant: NoSquare,
	}
}

// NewStandardBoard creates a board holding the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

var backRankKinds = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition clears the board and places the 32 starting pieces.
func (b *Board) SetupInitialPosition() {
	b.cells = [NumSquares]Piece{}
	b.marks = make(map[Square]MoveStatus)
	b.enPassant = NoSquare
	for file := 0; file < BoardSize; file++ {
		for _, colour := range [2]Colour{White, Black} {
			back, _ := FromPosition(file, BackRank(colour))
			pawn, _ := FromPosition(file, PawnRank(colour))
			b.cells[back] = NewPiece(backRankKinds[file], colour)
			b.cells[pawn] = NewPiece(Pawn, colour)
		}
	}
	b.UpdateAttacks()
}

// Spawn places a piece on an empty square.
func (b *Board) Spawn(sq Square, p Piece) error {
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "spawn at %d", sq)
	}
	if b.cells[sq] != nil {
		return errors.Wrapf(errors.ErrOccupiedSquare, "spawn %s at %s", Name(p), sq)
	}
	b.cells[sq] = p
	b.UpdateAttacks()
	return nil
}

// Piece returns the piece on sq, or nil if the square is empty or invalid.
func (b *Board) Piece(sq Square) Piece {
	if !sq.Valid() {
		return nil
	}
	return b.cells[sq]
}

// IsEmpty reports whether sq is a valid square with no piece on it.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.cells[sq] == nil
}

// Move relocates the piece on from to to, replacing whatever stood on to.
// The mark on from, if any, travels with the piece.
func (b *Board) Move(from, to Square) error {
	if !from.Valid() || !to.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "move %s-%s", from, to)
	}
	piece := b.cells[from]
	if piece == nil {
		return errors.Wrapf(errors.ErrEmptySource, "move from %s", from)
	}
	b.cells[to] = piece
	b.cells[from] = nil
	if mark, ok := b.marks[from]; ok {
		b.marks[to] = mark
		delete(b.marks, from)
	}
	b.UpdateAttacks()
	return nil
}

// Remove takes the piece off sq and returns it.
func (b *Board) Remove(sq Square) Piece {
	if !sq.Valid() {
		return nil
	}
	piece := b.cells[sq]
	b.cells[sq] = nil
	b.UpdateAttacks()
	return piece
}

// Replace puts p on sq, discarding any previous occupant.
func (b *Board) Replace(sq Square, p Piece) error {
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "replace at %d", sq)
	}
	b.cells[sq] = p
	b.UpdateAttacks()
	return nil
}

// Mark sets the move-status overlay for one square.
func (b *Board) Mark(sq Square, status MoveStatus) {
	if sq.Valid() {
		b.marks[sq] = status
	}
}

// MarkAll marks every target.
func (b *Board) MarkAll(targets []Target) {
	for _, t := range targets {
		b.Mark(t.Square, t.Status)
	}
}

// Status returns the mark on sq; the zero status when unmarked.
func (b *Board) Status(sq Square) MoveStatus {
	return b.marks[sq]
}

// Marked returns the marked squares in ascending order.
func (b *Board) Marked() []Square {
	squares := maps.Keys(b.marks)
	slices.Sort(squares)
	return squares
}

// ClearMarks removes every mark.
func (b *Board) ClearMarks() {
	maps.Clear(b.marks)
}

// UpdateAttacks recomputes both colours' attacked-square sets and then
// refreshes each king's check flag. Kings contribute their adjacent squares
// directly so that king reach, which consults the attack sets, is never
// needed to build them.
func (b *Board) UpdateAttacks() {
	var attacks [2]SquareSet
	for sq := A1; sq <= H8; sq++ {
		piece := b.cells[sq]
		if piece == nil {
			continue
		}
		side := piece.Colour()
		if piece.Kind() == King {
			for _, next := range adjacent(sq) {
				attacks[side] = attacks[side].Add(next)
			}
			continue
		}
		for _, t := range piece.Reach(b, sq) {
			if t.Status.Attacks() {
				attacks[side] = attacks[side].Add(t.Square)
			}
		}
	}
	b.attacks = attacks

	for sq := A1; sq <= H8; sq++ {
		if king, ok := b.cells[sq].(*KingPiece); ok {
			king.checked = attacks[king.colour.Opposite()].Has(sq)
		}
	}
}

// Attacked returns the set of squares attacked by colour c.
func (b *Board) Attacked(c Colour) SquareSet {
	return b.attacks[c]
}

// IsAttacked reports whether colour by attacks sq.
func (b *Board) IsAttacked(sq Square, by Colour) bool {
	return b.attacks[by].Has(sq)
}

// KingSquare returns the square of colour c's king, or NoSquare.
func (b *Board) KingSquare(c Colour) Square {
	for sq := A1; sq <= H8; sq++ {
		if p := b.cells[sq]; p != nil && p.Kind() == King && p.Colour() == c {
			return sq
		}
	}
	return NoSquare
}

// IsKingChecked reports whether colour c's king is currently attacked.
// It is false when c has no king.
func (b *Board) IsKingChecked(c Colour) bool {
	sq := b.KingSquare(c)
	if sq == NoSquare {
		return false
	}
	return b.cells[sq].(*KingPiece).checked
}

// EnPassantTarget returns the square passed over by the last double pawn
// step, or NoSquare.
func (b *Board) EnPassantTarget() Square {
	return b.enPassant
}

// SetEnPassantTarget records the en-passant target. Pawn reach depends on it,
// so attack sets are refreshed.
func (b *Board) SetEnPassantTarget(sq Square) {
	if !sq.Valid() {
		sq = NoSquare
	}
	if sq == b.enPassant {
		return
	}
	b.enPassant = sq
	b.UpdateAttacks()
}

// Reach returns the reach of the piece on sq, or nil for an empty square.
func (b *Board) Reach(sq Square) []Target {
	piece := b.Piece(sq)
	if piece == nil {
		return nil
	}
	return piece.Reach(b, sq)
}

// Squares returns the squares occupied by colour c in ascending order.
func (b *Board) Squares(c Colour) []Square {
	var out []Square
	for sq := A1; sq <= H8; sq++ {
		if p := b.cells[sq]; p != nil && p.Colour() == c {
			out = append(out, sq)
		}
	}
	return out
}

// Count returns the number of pieces of the given kind and colour.
func (b *Board) Count(kind Kind, c Colour) int {
	n := 0
	for _, p := range b.cells {
		if p != nil && p.Kind() == kind && p.Colour() == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board. Pieces are cloned so that moved and
// checked flags on the copy never leak back.
func (b *Board) Clone() *Board {
	c := &Board{
		marks:     maps.Clone(b.marks),
		attacks:   b.attacks,
		enPassant: b.enPassant,
	}
	for sq, p := range b.cells {
		if p != nil {
			c.cells[sq] = p.Clone()
		}
	}
	return c
}

// Snapshot returns all 64 cells in square order. Pieces are copies.
func (b *Board) Snapshot() []Cell {
	cells := make([]Cell, NumSquares)
	for i := range cells {
		sq := Square(i)
		cells[i] = Cell{Square: sq, Status: b.marks[sq]}
		if p := b.cells[sq]; p != nil {
			cells[i].Piece = p.Clone()
		}
	}
	return cells
}

// Placement returns the board as eight rank strings from the 8th rank down,
// using piece letters and '.' for empty squares.
func (b *Board) Placement() string {
	out := make([]byte, 0, NumSquares+BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			p := b.cells[rank*BoardSize+file]
			if p == nil {
				out = append(out, '.')
			} else {
				out = append(out, Letter(p))
			}
		}
		if rank > 0 {
			out = append(out, '/')
		}
	}
	return string(out)
}
