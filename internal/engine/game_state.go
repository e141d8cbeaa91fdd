package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsCheckmate returns true if colour, to move, is checkmated.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour, to move, has no legal move but is not in check.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
