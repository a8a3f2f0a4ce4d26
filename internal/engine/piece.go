package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// moveRule decides whether a move is geometrically legal for one piece kind.
// Rules assume both endpoints are on the board, the move is not null and the
// destination does not hold a piece of the mover's colour.
type moveRule func(board *chess.Board, move chess.Move, piece chess.Piece) bool

// pieceRules dispatches on piece kind. NoKind has no rule.
var pieceRules = [chess.NumPieceKinds]moveRule{
	chess.Pawn:   pawnRule,
	chess.Knight: knightRule,
	chess.Bishop: bishopRule,
	chess.Rook:   rookRule,
	chess.Queen:  queenRule,
	chess.King:   kingRule,
}

// canPieceMove checks if a piece can move from one square to another,
// ignoring whether the move exposes its own king. Castling and en passant
// are not covered here.
func canPieceMove(board *chess.Board, piece chess.Piece, move chess.Move) bool {
	if move.IsNull() || !move.From.Valid() || !move.To.Valid() {
		return false
	}
	if board.OwnedBy(move.To, piece.Colour) {
		return false
	}
	if piece.Kind <= chess.NoKind || piece.Kind >= chess.NumPieceKinds {
		return false
	}
	return pieceRules[piece.Kind](board, move, piece)
}

func knightRule(_ *chess.Board, move chess.Move, _ chess.Piece) bool {
	rowDiff := abs(move.RowDelta())
	colDiff := abs(move.ColDelta())
	return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
}

func bishopRule(board *chess.Board, move chess.Move, _ chess.Piece) bool {
	return isDiagonal(move) && isPathClear(board, move)
}

func rookRule(board *chess.Board, move chess.Move, _ chess.Piece) bool {
	return isStraight(move) && isPathClear(board, move)
}

func queenRule(board *chess.Board, move chess.Move, piece chess.Piece) bool {
	return rookRule(board, move, piece) || bishopRule(board, move, piece)
}

func kingRule(_ *chess.Board, move chess.Move, _ chess.Piece) bool {
	return abs(move.RowDelta()) <= 1 && abs(move.ColDelta()) <= 1
}
