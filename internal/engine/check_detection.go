package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return board.IsKingChecked(colour)
}

// CheckingPieces returns the squares of the opponent pieces that attack
// colour's king.
func CheckingPieces(board *chess.Board, colour chess.Colour) []chess.Square {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return nil
	}
	var checkers []chess.Square
	for _, sq := range board.Squares(colour.Opposite()) {
		if attacksSquare(board, sq, king) {
			checkers = append(checkers, sq)
		}
	}
	return checkers
}

// attacksSquare reports whether the piece on from attacks target.
func attacksSquare(board *chess.Board, from, target chess.Square) bool {
	piece := board.Piece(from)
	if piece == nil {
		return false
	}
	if piece.Kind() == chess.King {
		df, dr := abs(target.File()-from.File()), abs(target.Rank()-from.Rank())
		return df <= 1 && dr <= 1 && (df+dr) > 0
	}
	for _, t := range piece.Reach(board, from) {
		if t.Square == target && t.Status.Attacks() {
			return true
		}
	}
	return false
}
