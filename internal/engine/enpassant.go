package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsEnPassantMove reports whether the move is a legal en passant capture:
// a pawn stepping diagonally forward onto an empty square directly behind an
// opposing pawn that has just advanced two rows.
func IsEnPassantMove(board *chess.Board, move chess.Move, lastMove *chess.Move) bool {
	piece := board.Get(move.From)
	if piece.Kind != chess.Pawn {
		return false
	}
	if abs(move.ColDelta()) != 1 || move.RowDelta() != piece.Colour.Forward() {
		return false
	}
	if !board.IsEmpty(move.To) {
		return false
	}

	if lastMove == nil || lastMove.To.Col != move.To.Col || lastMove.To.Row != move.From.Row {
		return false
	}
	if !isDoublePawnPush(board, *lastMove) {
		return false
	}
	return board.Get(lastMove.To).Colour == piece.Colour.Opposite()
}

// isEnPassantShape reports whether a pawn move lands diagonally on an empty
// square. On a board where the move was validated, only en passant does this.
func isEnPassantShape(board *chess.Board, move chess.Move) bool {
	return board.Get(move.From).Kind == chess.Pawn && move.ColDelta() != 0 && board.IsEmpty(move.To)
}

// enPassantVictim returns the square of the pawn removed by an en passant capture.
func enPassantVictim(move chess.Move) chess.Position {
	return chess.Pos(move.From.Row, move.To.Col)
}
