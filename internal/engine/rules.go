// Package engine provides chess move validation and board manipulation.
//
// All functions treat the board they are given as read-only: legality checks
// simulate on private copies and ApplyMove returns a new board.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsValidMove is the legality gate. It reports whether move may be played on
// board given the move played immediately before it (nil if none).
//
// An error is returned only when a coordinate of move or lastMove is off the
// board; every illegal move yields (false, nil).
func IsValidMove(board *chess.Board, move chess.Move, lastMove *chess.Move) (bool, error) {
	if err := checkCoordinates(move, lastMove); err != nil {
		return false, err
	}
	return isLegal(board, move, lastMove), nil
}

// ValidateMove is IsValidMove in error form: nil for a legal move, an error
// wrapping errors.ErrIllegalMove (as a *errors.MoveError) otherwise.
func ValidateMove(board *chess.Board, move chess.Move, lastMove *chess.Move) error {
	ok, err := IsValidMove(board, move, lastMove)
	if err != nil {
		return err
	}
	if !ok {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Move: move.String()}
	}
	return nil
}

func checkCoordinates(move chess.Move, lastMove *chess.Move) error {
	if err := move.Check(); err != nil {
		return err
	}
	if lastMove != nil {
		if err := lastMove.Check(); err != nil {
			return errors.Wrap(err, "last move")
		}
	}
	return nil
}

// isLegal assumes all coordinates are on the board.
func isLegal(board *chess.Board, move chess.Move, lastMove *chess.Move) bool {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return false
	}

	if IsCastlingMove(board, move) {
		return isValidCastling(board, move)
	}

	// En passant is accepted without the self-check simulation below.
	if IsEnPassantMove(board, move, lastMove) {
		return true
	}

	if !canPieceMove(board, piece, move) {
		return false
	}

	return !leavesKingInCheck(board, move, piece.Colour)
}

// leavesKingInCheck plays the plain piece move on a copy and tests the mover's king.
func leavesKingInCheck(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	sim, err := board.WithPieceMoved(move)
	if err != nil {
		return true
	}
	return IsInCheck(sim, colour)
}
