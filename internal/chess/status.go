package chess

// StatusKind classifies a destination square produced by move generation.
type StatusKind int

const (
	StatusNone StatusKind = iota
	// Capturable squares are attacked and may be landed on: empty or enemy-held.
	Capturable
	// Threaten squares are attacked but not landable, such as an empty pawn diagonal.
	Threaten
	// Pierced squares lie one step behind an enemy king on a sliding ray.
	Pierced
	// EnPassant marks the landing square of an en-passant capture.
	EnPassant
	// Castling marks king castling squares; only the landing square two files away is a move.
	Castling
	// Movable squares may be landed on without being attacked (pawn pushes).
	Movable
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	names := []string{"None", "Capturable", "Threaten", "Pierced", "EnPassant", "Castling", "Movable"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// MoveStatus is the per-square annotation for one piece's reach. Activated is
// set only on squares the currently selected piece may legally land on.
type MoveStatus struct {
	Kind      StatusKind
	By        Colour
	Activated bool
}

// NewStatus returns a non-activated status of the given kind for a colour.
func NewStatus(kind StatusKind, by Colour) MoveStatus {
	return MoveStatus{Kind: kind, By: by}
}

// IsNone reports whether the status carries no annotation.
func (s MoveStatus) IsNone() bool {
	return s.Kind == StatusNone
}

// Authorizes reports whether the status kind can ever authorize a move.
func (s MoveStatus) Authorizes() bool {
	switch s.Kind {
	case Capturable, Movable, Castling, EnPassant:
		return true
	}
	return false
}

// Attacks reports whether the square counts toward the attacker's attacked-square set.
func (s MoveStatus) Attacks() bool {
	switch s.Kind {
	case Capturable, Threaten, Pierced, EnPassant:
		return true
	}
	return false
}

// Activate returns a copy of the status marked as a legal landing square.
func (s MoveStatus) Activate() MoveStatus {
	s.Activated = true
	return s
}

// Target pairs a destination square with its classification.
type Target struct {
	Square Square
	Status MoveStatus
}

// Cell is one read-only entry of a board snapshot.
type Cell struct {
	Square Square
	Piece  Piece // nil when empty
	Status MoveStatus
}
