package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Result describes a committed move and the position it produced.
type Result struct {
	Board      *chess.Board
	Move       chess.Move
	Mover      chess.Colour
	NextToMove chess.Colour
	Status     chess.GameStatus

	// Captured is the piece removed from the board, NoPiece if none.
	Captured  chess.Piece
	Castled   bool
	EnPassant bool
	Promoted  bool
}

// ApplyMove plays move on a copy of board and returns the new position with
// its status for the side now to move. board itself is never modified.
//
// The move must already have passed IsValidMove; ApplyMove only rejects
// off-board coordinates and empty source squares.
func (e *Evaluator) ApplyMove(board *chess.Board, move chess.Move) (*Result, error) {
	if err := move.Check(); err != nil {
		return nil, err
	}
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, Move: move.String()}
	}

	res := &Result{
		Move:       move,
		Mover:      piece.Colour,
		NextToMove: piece.Colour.Opposite(),
		Captured:   board.Get(move.To),
	}

	next := board.Clone()
	switch {
	case IsCastlingMove(board, move):
		applyCastleRook(next, move)
		res.Castled = true

	case isEnPassantShape(board, move):
		victim := enPassantVictim(move)
		res.Captured = next.Get(victim)
		next.Squares[victim.Row][victim.Col] = chess.NoPiece
		res.EnPassant = true
	}

	next.Squares[move.To.Row][move.To.Col] = piece
	next.Squares[move.From.Row][move.From.Col] = chess.NoPiece

	if IsPawnPromotion(board, move) {
		next.Squares[move.To.Row][move.To.Col] = chess.Piece{Kind: chess.Queen, Colour: piece.Colour}
		res.Promoted = true
	}

	res.Board = next
	res.Status = e.Status(next, res.NextToMove, &move)
	return res, nil
}

// ApplyMove plays a validated move using exhaustive enumeration for the status.
func ApplyMove(board *chess.Board, move chess.Move) (*Result, error) {
	return defaultEvaluator.ApplyMove(board, move)
}
