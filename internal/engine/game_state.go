package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate reports whether colour is in check with no legal move.
func (e *Evaluator) IsCheckmate(board *chess.Board, colour chess.Colour, lastMove *chess.Move) bool {
	return IsInCheck(board, colour) && !e.HasLegalMoves(board, colour, lastMove)
}

// IsStalemate reports whether colour is not in check but has no legal move.
func (e *Evaluator) IsStalemate(board *chess.Board, colour chess.Colour, lastMove *chess.Move) bool {
	return !IsInCheck(board, colour) && !e.HasLegalMoves(board, colour, lastMove)
}

// Status derives the game status for colour to move.
func (e *Evaluator) Status(board *chess.Board, colour chess.Colour, lastMove *chess.Move) chess.GameStatus {
	inCheck := IsInCheck(board, colour)
	hasMoves := e.HasLegalMoves(board, colour, lastMove)
	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case inCheck:
		return chess.Check
	case !hasMoves:
		return chess.Stalemate
	}
	return chess.InProgress
}

// IsCheckmate returns true if the position is checkmate for colour.
// Escapes by en passant are not considered since no last move is known.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return defaultEvaluator.IsCheckmate(board, colour, nil)
}

// IsStalemate returns true if the position is stalemate for colour.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return defaultEvaluator.IsStalemate(board, colour, nil)
}

// Status returns the game status for colour to move.
func Status(board *chess.Board, colour chess.Colour) chess.GameStatus {
	return defaultEvaluator.Status(board, colour, nil)
}
