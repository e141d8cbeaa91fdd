// Package errors provides sentinel errors and error types for the chess engine.
// It defines the failure conditions of board setup, piece selection and move
// execution, and a structured move error that preserves context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOccupiedSquare indicates a piece was spawned onto a square that already holds one.
	ErrOccupiedSquare = errors.New("square is occupied")

	// ErrEmptySource indicates a move from a square holding no piece.
	ErrEmptySource = errors.New("no piece on source square")

	// ErrNoPieceFound indicates a selection of an empty square.
	ErrNoPieceFound = errors.New("no piece found")

	// ErrNotYourTurn indicates a selection of the opponent's piece.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidMove indicates a destination outside the legal set computed at selection time.
	ErrInvalidMove = errors.New("invalid move")

	// ErrOutOfBounds indicates a file or rank outside 0..7.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrPromotionPending indicates play is suspended until a promotion piece is chosen.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotion indicates a promotion was resolved while none was pending.
	ErrNoPromotion = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a kind other than queen, rook, bishop or knight.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates an action after checkmate, stalemate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidLayout indicates a piece placement token other than <letter><square>, e.g. "Ke1".
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply being attempted and the
// squares and piece involved. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply number being attempted (0 if not applicable)
	From  string // Source square in algebraic form (if known)
	To    string // Destination square in algebraic form (if known)
	Piece string // Piece name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, "from "+e.From)
	case e.To != "":
		parts = append(parts, "to "+e.To)
	}

	context := strings.Join(parts, " ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
