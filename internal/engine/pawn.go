package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnRule covers the single step, the double step from the starting row and
// the diagonal capture. En passant is handled separately.
func pawnRule(board *chess.Board, move chess.Move, piece chess.Piece) bool {
	dir := piece.Colour.Forward()
	rowDiff := move.RowDelta()
	colDiff := move.ColDelta()

	switch {
	case colDiff == 0 && rowDiff == dir:
		return board.IsEmpty(move.To)

	case colDiff == 0 && rowDiff == 2*dir && move.From.Row == piece.Colour.PawnRow():
		return board.IsEmpty(move.From.Offset(dir, 0)) && board.IsEmpty(move.To)

	case abs(colDiff) == 1 && rowDiff == dir:
		return board.OwnedBy(move.To, piece.Colour.Opposite())
	}

	return false
}

// IsPawnPromotion reports whether the move takes a pawn to the farthest row
// from its start.
func IsPawnPromotion(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	if piece.Kind != chess.Pawn {
		return false
	}
	return move.To.Row == piece.Colour.PromotionRow()
}

// isDoublePawnPush reports whether the piece now standing on move.To is a pawn
// that arrived by moving two rows straight ahead.
func isDoublePawnPush(board *chess.Board, move chess.Move) bool {
	if board.Get(move.To).Kind != chess.Pawn {
		return false
	}
	return move.ColDelta() == 0 && abs(move.RowDelta()) == 2
}
