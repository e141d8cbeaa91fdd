package chess

// Piece is one of the six chess piece kinds. Each kind owns its own move
// generation: Reach returns every square the piece reaches from the given
// origin with full board visibility, classified by MoveStatus. Reach never
// mutates the board or other pieces.
type Piece interface {
	Kind() Kind
	Colour() Colour
	Reach(b *Board, from Square) []Target
	Clone() Piece
}

// NewPiece creates an unmoved piece of the given kind and colour.
// It returns nil for an unknown kind.
func NewPiece(kind Kind, colour Colour) Piece {
	switch kind {
	case Pawn:
		return &PawnPiece{colour: colour}
	case Knight:
		return &KnightPiece{colour: colour}
	case Bishop:
		return &BishopPiece{colour: colour}
	case Rook:
		return &RookPiece{colour: colour}
	case Queen:
		return &QueenPiece{colour: colour}
	case King:
		return &KingPiece{colour: colour}
	}
	return nil
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func Letter(p Piece) byte {
	if p == nil {
		return ' '
	}
	l := p.Kind().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// Name returns a human-readable piece name such as "White Knight".
func Name(p Piece) string {
	if p == nil {
		return ""
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// KnightPiece jumps to the eight (±1,±2)/(±2,±1) offsets.
type KnightPiece struct {
	colour Colour
}

func (p *KnightPiece) Kind() Kind     { return Knight }
func (p *KnightPiece) Colour() Colour { return p.colour }
func (p *KnightPiece) Clone() Piece   { c := *p; return &c }

// Reach returns every jump square that is empty or enemy-held as Capturable.
func (p *KnightPiece) Reach(b *Board, from Square) []Target {
	return stepTargets(b, from, p.colour, knightJumps[:])
}

// BishopPiece slides along the four diagonals.
type BishopPiece struct {
	colour Colour
}

func (p *BishopPiece) Kind() Kind     { return Bishop }
func (p *BishopPiece) Colour() Colour { return p.colour }
func (p *BishopPiece) Clone() Piece   { c := *p; return &c }

func (p *BishopPiece) Reach(b *Board, from Square) []Target {
	return walkRays(b, from, p.colour, diagonals[:])
}

// RookPiece slides along ranks and files and remembers whether it has moved,
// which decides castling rights.
type RookPiece struct {
	colour Colour
	moved  bool
}

func (p *RookPiece) Kind() Kind     { return Rook }
func (p *RookPiece) Colour() Colour { return p.colour }
func (p *RookPiece) Clone() Piece   { c := *p; return &c }

// HasMoved reports whether the rook has left its square since it was placed.
func (p *RookPiece) HasMoved() bool { return p.moved }

// SetMoved records that the rook has moved.
func (p *RookPiece) SetMoved() { p.moved = true }

func (p *RookPiece) Reach(b *Board, from Square) []Target {
	return walkRays(b, from, p.colour, orthogonals[:])
}

// QueenPiece combines bishop and rook movement.
type QueenPiece struct {
	colour Colour
}

func (p *QueenPiece) Kind() Kind     { return Queen }
func (p *QueenPiece) Colour() Colour { return p.colour }
func (p *QueenPiece) Clone() Piece   { c := *p; return &c }

func (p *QueenPiece) Reach(b *Board, from Square) []Target {
	return walkRays(b, from, p.colour, allDirections[:])
}
