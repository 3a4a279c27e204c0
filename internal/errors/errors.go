// Package errors provides sentinel errors and error types for the chess engine.
// Every input validation failure maps to a sentinel so callers can decide
// with errors.Is() whether to re-prompt.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnknownPiece indicates a name that is not a live piece of the player to move.
	ErrUnknownPiece = errors.New("invalid piece")

	// ErrNoLegalMoves indicates the selected piece has nowhere to go.
	ErrNoLegalMoves = errors.New("no possible moves")

	// ErrInvalidFormat indicates destination input that is not two integers.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOffBoard indicates a position outside the 8x8 board.
	ErrOffBoard = errors.New("position off the board")

	// ErrIllegalMove indicates a destination not in the legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion choice outside queen, rook, bishop, knight.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrPromotionPending indicates a pawn is waiting to be promoted.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoSelection indicates a move was requested before selecting a piece.
	ErrNoSelection = errors.New("no piece selected")

	// ErrGameOver indicates the game has ended.
	ErrGameOver = errors.New("game over")

	// ErrOccupied indicates a square already holds a piece.
	ErrOccupied = errors.New("square occupied")

	// ErrDuplicateName indicates a piece name already in use.
	ErrDuplicateName = errors.New("duplicate piece name")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with turn context: the turn number, the player,
// the piece involved and the raw input that was rejected. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Turn   int    // Turn number (0 if not applicable)
	Player string // Player to move (if known)
	Piece  string // Piece name (if known)
	Input  string // Raw rejected input (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.Piece != "" {
		parts = append(parts, fmt.Sprintf("piece %s", e.Piece))
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("input %q", e.Input))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
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
