package chess

// Direction tables as (file delta, rank delta).
var (
	diagonals   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonals = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	allDirections = [8][2]int{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}

	knightJumps = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}

	kingSteps = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// walkRays walks each direction outward from the origin one square at a time.
// Empty squares and the first enemy blocker are Capturable; a friendly blocker
// stops the ray unrecorded. When the first blocker is the enemy king, exactly
// one further square is recorded as Pierced so that the king cannot step back
// along the line it is attacked on.
func walkRays(b *Board, from Square, colour Colour, dirs [][2]int) []Target {
	var targets []Target
	for _, dir := range dirs {
		pierced := 0
		for sq := from.Offset(dir[0], dir[1]); sq.Valid() && pierced < 2; sq = sq.Offset(dir[0], dir[1]) {
			if pierced == 1 {
				targets = append(targets, Target{Square: sq, Status: NewStatus(Pierced, colour)})
				pierced++
				continue
			}

			piece := b.Piece(sq)
			if piece == nil {
				targets = append(targets, Target{Square: sq, Status: NewStatus(Capturable, colour)})
				continue
			}
			if piece.Colour() == colour {
				break
			}
			targets = append(targets, Target{Square: sq, Status: NewStatus(Capturable, colour)})
			if piece.Kind() != King {
				break
			}
			pierced++
		}
	}
	return targets
}

// stepTargets returns the single-step offsets that land on an empty or
// enemy-held square, all Capturable.
func stepTargets(b *Board, from Square, colour Colour, offsets [][2]int) []Target {
	var targets []Target
	for _, off := range offsets {
		sq := from.Offset(off[0], off[1])
		if !sq.Valid() {
			continue
		}
		if piece := b.Piece(sq); piece != nil && piece.Colour() == colour {
			continue
		}
		targets = append(targets, Target{Square: sq, Status: NewStatus(Capturable, colour)})
	}
	return targets
}

// adjacent returns the valid squares one king step from sq.
func adjacent(sq Square) []Square {
	out := make([]Square, 0, len(kingSteps))
	for _, step := range kingSteps {
		if next := sq.Offset(step[0], step[1]); next.Valid() {
			out = append(out, next)
		}
	}
	return out
}
