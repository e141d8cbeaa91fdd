package game

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Phase is the stage of play.
type Phase int

const (
	// Playing is the normal state: the side to move is not in check.
	Playing Phase = iota
	// InCheck means the side to move is in check.
	InCheck
	// Promoting suspends play until the promotion piece is chosen.
	Promoting
	// Checkmate ends the game; State.By is the winner.
	Checkmate
	// Stalemate ends the game in a draw.
	Stalemate
	// Drawn ends the game because neither side can mate.
	Drawn
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	names := []string{"Playing", "InCheck", "Promoting", "Checkmate", "Stalemate", "Drawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// IsTerminal reports whether the phase ends the game.
func (p Phase) IsTerminal() bool {
	return p == Checkmate || p == Stalemate || p == Drawn
}

// State is the game state machine value.
type State struct {
	Phase Phase
	// By is the attacking colour for InCheck and the winner for Checkmate.
	By chess.Colour
	// Pawn is the square of the pawn awaiting promotion, NoSquare otherwise.
	Pawn chess.Square
}

// String describes the state, e.g. "InCheck by Black".
func (s State) String() string {
	switch s.Phase {
	case InCheck:
		return s.Phase.String() + " by " + s.By.String()
	case Checkmate:
		return s.Phase.String() + ", " + s.By.String() + " wins"
	case Promoting:
		return s.Phase.String() + " on " + s.Pawn.String()
	}
	return s.Phase.String()
}

func playing() State {
	return State{Phase: Playing, Pawn: chess.NoSquare}
}
