package chess

import (
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Square identifies a board square as rank*8 + file, so A1=0, H1=7, A8=56, H8=63.
type Square int8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare is the off-board sentinel.
	NoSquare Square = -1
)

// FromPosition returns the square at the given file and rank, both 0..7.
func FromPosition(file, rank int) (Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, errors.Wrapf(errors.ErrOutOfBounds, "file %d rank %d", file, rank)
	}
	return Square(rank*BoardSize + file), nil
}

// FromNotation parses two-character algebraic notation such as "E4" or "e4".
func FromNotation(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	file := text[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square(int(rank-'1')*BoardSize + int(file-'a')), true
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the file (0=a .. 7=h), or -1 for an invalid square.
func (sq Square) File() int {
	if !sq.Valid() {
		return -1
	}
	return int(sq) % BoardSize
}

// Rank returns the rank (0=1st .. 7=8th), or -1 for an invalid square.
func (sq Square) Rank() int {
	if !sq.Valid() {
		return -1
	}
	return int(sq) / BoardSize
}

// Offset returns the square df files and dr ranks away, or NoSquare when that
// leaves the board.
func (sq Square) Offset(df, dr int) Square {
	if !sq.Valid() {
		return NoSquare
	}
	target, err := FromPosition(sq.File()+df, sq.Rank()+dr)
	if err != nil {
		return NoSquare
	}
	return target
}

// String returns the algebraic name of the square ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// SquareSet is a set of squares, one bit per square.
type SquareSet uint64

// Add returns the set with sq included. Invalid squares are ignored.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq)
}

// AddAll returns the set with every square in squares included.
func (s SquareSet) AddAll(squares []Square) SquareSet {
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

// Squares returns the members in ascending order.
func (s SquareSet) Squares() []Square {
	var out []Square
	for sq := A1; sq <= H8; sq++ {
		if s.Has(sq) {
			out = append(out, sq)
		}
	}
	return out
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	n := 0
	for ; s != 0; s &= s - 1 {
		n++
	}
	return n
}
