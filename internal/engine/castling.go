package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCastlingMove reports whether the move is a king moving two columns.
// Whether the castle is legal is decided by isValidCastling.
func IsCastlingMove(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	return piece.Kind == chess.King && abs(move.ColDelta()) == 2
}

// castlingRookCol returns the corner column of the rook the king castles with.
func castlingRookCol(move chess.Move) int {
	if move.ColDelta() > 0 {
		return chess.LastCol
	}
	return chess.FirstCol
}

// isValidCastling checks the rook, the empty squares between king and rook,
// and that the king is not in check before moving or on any square it steps
// onto, up to and including its destination. No record of earlier king or
// rook moves is consulted.
func isValidCastling(board *chess.Board, move chess.Move) bool {
	king := board.Get(move.From)
	if king.Kind != chess.King || abs(move.ColDelta()) != 2 || move.RowDelta() != 0 {
		return false
	}

	row := move.From.Row
	dir := sign(move.ColDelta())
	rookCol := castlingRookCol(move)

	if !board.Get(chess.Pos(row, rookCol)).Is(chess.Rook, king.Colour) {
		return false
	}

	for col := move.From.Col + dir; col != rookCol; col += dir {
		if board.Occupied(chess.Pos(row, col)) {
			return false
		}
	}

	if IsInCheck(board, king.Colour) {
		return false
	}

	// Step the king alone; the rook stays put during the simulation.
	for col := move.From.Col + dir; ; col += dir {
		sim := board.Clone()
		sim.Squares[row][move.From.Col] = chess.NoPiece
		sim.Squares[row][col] = king
		if IsInCheck(sim, king.Colour) {
			return false
		}
		if col == move.To.Col {
			break
		}
	}

	return true
}

// applyCastleRook moves the castling rook onto the square the king crossed.
func applyCastleRook(board *chess.Board, move chess.Move) {
	row := move.From.Row
	rookCol := castlingRookCol(move)
	rook := board.Squares[row][rookCol]
	board.Squares[row][rookCol] = chess.NoPiece
	board.Squares[row][move.To.Col-sign(move.ColDelta())] = rook
}
