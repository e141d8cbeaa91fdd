package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Move is a fully legal move for the side to move.
type Move struct {
	From   chess.Square
	To     chess.Square
	Status chess.MoveStatus
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// LegalTargets returns the reach of the piece on from with every legal
// landing square activated. A target is legal when its status authorizes a
// move and making the move leaves the mover's king unattacked. It returns nil
// for an empty square.
func LegalTargets(board *chess.Board, from chess.Square) []chess.Target {
	targets := board.Reach(from)
	for i, t := range targets {
		if isLegal(board, from, t) {
			targets[i].Status = t.Status.Activate()
		}
	}
	return targets
}

// Moves returns every legal move for colour in square order.
func Moves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for _, from := range board.Squares(colour) {
		for _, t := range LegalTargets(board, from) {
			if t.Status.Activated {
				moves = append(moves, Move{From: from, To: t.Square, Status: t.Status})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Squares(colour) {
		for _, t := range board.Reach(from) {
			if isLegal(board, from, t) {
				return true
			}
		}
	}
	return false
}

func isLegal(board *chess.Board, from chess.Square, t chess.Target) bool {
	if !t.Status.Authorizes() {
		return false
	}
	if t.Status.Kind == chess.Castling && abs(t.Square.File()-from.File()) != 2 {
		return false
	}
	return tryMove(board, from, t)
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from chess.Square, t chess.Target) bool {
	piece := board.Piece(from)
	if piece == nil {
		return false
	}
	testBoard := board.Clone()
	if _, err := Apply(testBoard, from, t.Square, t.Status); err != nil {
		return false
	}
	return !IsInCheck(testBoard, piece.Colour())
}
