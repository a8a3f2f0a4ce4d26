package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPathClear checks that every square strictly between move.From and
// move.To is empty. The move must lie on a rank, file or diagonal.
func isPathClear(board *chess.Board, move chess.Move) bool {
	rowDir := sign(move.RowDelta())
	colDir := sign(move.ColDelta())

	pos := move.From.Offset(rowDir, colDir)
	for pos != move.To {
		if board.Occupied(pos) {
			return false
		}
		pos = pos.Offset(rowDir, colDir)
	}

	return true
}

// isStraight reports whether the move stays on one row or one column.
func isStraight(move chess.Move) bool {
	return !move.IsNull() && (move.RowDelta() == 0 || move.ColDelta() == 0)
}

// isDiagonal reports whether the move changes row and column by the same non-zero amount.
func isDiagonal(move chess.Move) bool {
	return move.RowDelta() != 0 && abs(move.RowDelta()) == abs(move.ColDelta())
}
