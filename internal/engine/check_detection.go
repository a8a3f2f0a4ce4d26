package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour could move onto the
// square under its ordinary movement rule. Castling and en passant never attack.
func isSquareAttacked(board *chess.Board, target chess.Position, byColour chess.Colour) bool {
	for _, sq := range board.Pieces(byColour) {
		if canPieceMove(board, sq.Piece, chess.Move{From: sq.Pos, To: target}) {
			return true
		}
	}
	return false
}

// Attackers returns the squares of every byColour piece attacking target,
// in row-major order.
func Attackers(board *chess.Board, target chess.Position, byColour chess.Colour) []chess.Position {
	if !target.Valid() {
		return nil
	}
	var attackers []chess.Position
	for _, sq := range board.Pieces(byColour) {
		if canPieceMove(board, sq.Piece, chess.Move{From: sq.Pos, To: target}) {
			attackers = append(attackers, sq.Pos)
		}
	}
	return attackers
}
