// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a row or column outside 0..7.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates a move starting from an empty square.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrWrongTurn indicates a move of a piece whose side is not to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrGameOver indicates a move submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrSessionNotFound indicates an unknown session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError reports the offending coordinates of an out-of-range position.
type PositionError struct {
	Field string // Which position was bad ("from", "to", "last move"); may be empty
	Row   int
	Col   int
}

// Error returns a message naming the field and the coordinates.
func (e *PositionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%d,%d): %v", e.Field, e.Row, e.Col, ErrInvalidPosition)
	}
	return fmt.Sprintf("(%d,%d): %v", e.Row, e.Col, ErrInvalidPosition)
}

// Unwrap returns ErrInvalidPosition so errors.Is() matches the sentinel.
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// MoveError wraps errors with move context, including the session,
// ply number and the move itself. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err       error  // The underlying error
	SessionID string // Session the move was played in (if known)
	Ply       int    // 1-based ply number (0 if not applicable)
	Move      string // Printable form of the rejected move
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.SessionID != "" {
		parts = append(parts, fmt.Sprintf("session %s", e.SessionID))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
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
