package chess

// KingPiece steps one square in any direction and may castle. It tracks
// whether it has moved and whether it is currently in check; the board
// refreshes the check flag after every mutation.
type KingPiece struct {
	colour  Colour
	moved   bool
	checked bool
}

func (p *KingPiece) Kind() Kind     { return King }
func (p *KingPiece) Colour() Colour { return p.colour }
func (p *KingPiece) Clone() Piece   { c := *p; return &c }

// HasMoved reports whether the king has left its square since it was placed.
func (p *KingPiece) HasMoved() bool { return p.moved }

// SetMoved records that the king has moved, forfeiting castling.
func (p *KingPiece) SetMoved() { p.moved = true }

// Checked reports whether the king was attacked at the last attack refresh.
func (p *KingPiece) Checked() bool { return p.checked }

// Reach returns the adjacent squares that are not friendly-held and not
// attacked by the opponent, plus castling squares when castling is available.
func (p *KingPiece) Reach(b *Board, from Square) []Target {
	opp := p.colour.Opposite()
	var targets []Target
	for _, sq := range adjacent(from) {
		if piece := b.Piece(sq); piece != nil && piece.Colour() == p.colour {
			continue
		}
		if b.IsAttacked(sq, opp) {
			continue
		}
		targets = append(targets, Target{Square: sq, Status: NewStatus(Capturable, p.colour)})
	}
	return append(targets, p.castling(b, from)...)
}

// castling returns the kingside landing square (G) and the queenside landing
// square (C) together with the queenside pass-through marker (B).
func (p *KingPiece) castling(b *Board, from Square) []Target {
	back := BackRank(p.colour)
	home, _ := FromPosition(4, back)
	opp := p.colour.Opposite()
	if p.moved || from != home || b.IsAttacked(from, opp) {
		return nil
	}

	at := func(file int) Square {
		sq, _ := FromPosition(file, back)
		return sq
	}
	empty := func(files ...int) bool {
		for _, f := range files {
			if !b.IsEmpty(at(f)) {
				return false
			}
		}
		return true
	}
	safe := func(files ...int) bool {
		for _, f := range files {
			if b.IsAttacked(at(f), opp) {
				return false
			}
		}
		return true
	}

	var targets []Target
	if p.unmovedRook(b, at(7)) && empty(5, 6) && safe(5, 6) {
		targets = append(targets, Target{Square: at(6), Status: NewStatus(Castling, p.colour)})
	}
	if p.unmovedRook(b, at(0)) && empty(1, 2, 3) && safe(2, 3) {
		targets = append(targets,
			Target{Square: at(2), Status: NewStatus(Castling, p.colour)},
			Target{Square: at(1), Status: NewStatus(Castling, p.colour)},
		)
	}
	return targets
}

func (p *KingPiece) unmovedRook(b *Board, sq Square) bool {
	rook, ok := b.Piece(sq).(*RookPiece)
	return ok && rook.colour == p.colour && !rook.moved
}
