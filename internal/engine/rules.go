// Package engine provides move legality, move application and game-end
// detection on top of the chess board.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Outcome classifies the position for the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	Check
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "ongoing"
}

// Evaluate classifies the position for colour, who is to move. Mate and
// stalemate take precedence over insufficient material.
func Evaluate(board *chess.Board, colour chess.Colour) Outcome {
	inCheck := IsInCheck(board, colour)
	if !HasLegalMoves(board, colour) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}
	if inCheck {
		return Check
	}
	return Ongoing
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == nil || piece.Kind() == chess.King {
			continue
		}

		switch piece.Kind() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, piece.Kind())
			if piece.Kind() == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind())
			if piece.Kind() == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return isMinor(blackPieces[0])
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return isMinor(whitePieces[0])
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

func isMinor(k chess.Kind) bool {
	return k == chess.Bishop || k == chess.Knight
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
