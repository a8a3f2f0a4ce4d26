package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// TargetGenerator lists the candidate destination squares for the piece on
// from. Every candidate is still passed through the legality gate, so a
// generator may over-report but must never omit a legal destination.
type TargetGenerator func(board *chess.Board, from chess.Position, piece chess.Piece) []chess.Position

var allSquares = func() []chess.Position {
	squares := make([]chess.Position, 0, chess.BoardSize*chess.BoardSize)
	for row := chess.FirstRow; row <= chess.LastRow; row++ {
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			squares = append(squares, chess.Pos(row, col))
		}
	}
	return squares
}()

// AllSquares offers every square of the board as a candidate. With it,
// enumeration is the exhaustive 64x64 scan.
func AllSquares(_ *chess.Board, _ chess.Position, _ chess.Piece) []chess.Position {
	return allSquares
}

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	castlingOffsets = [][2]int{{0, -2}, {0, 2}}
)

// PseudoLegalTargets offers only the squares the piece could reach by its
// movement pattern, including castling and en passant destinations.
func PseudoLegalTargets(board *chess.Board, from chess.Position, piece chess.Piece) []chess.Position {
	switch piece.Kind {
	case chess.Pawn:
		dir := piece.Colour.Forward()
		return offsetTargets(from, [][2]int{{dir, 0}, {2 * dir, 0}, {dir, -1}, {dir, 1}})
	case chess.Knight:
		return offsetTargets(from, knightOffsets)
	case chess.King:
		return append(offsetTargets(from, kingOffsets), offsetTargets(from, castlingOffsets)...)
	case chess.Bishop:
		return slidingTargets(board, from, diagonalDirs)
	case chess.Rook:
		return slidingTargets(board, from, straightDirs)
	case chess.Queen:
		return append(slidingTargets(board, from, diagonalDirs), slidingTargets(board, from, straightDirs)...)
	}
	return nil
}

func offsetTargets(from chess.Position, offsets [][2]int) []chess.Position {
	targets := make([]chess.Position, 0, len(offsets))
	for _, off := range offsets {
		if to := from.Offset(off[0], off[1]); to.Valid() {
			targets = append(targets, to)
		}
	}
	return targets
}

// slidingTargets walks each ray up to and including the first occupied square.
func slidingTargets(board *chess.Board, from chess.Position, dirs [][2]int) []chess.Position {
	var targets []chess.Position
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			targets = append(targets, to)
			if board.Occupied(to) {
				break
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// Evaluator enumerates legal moves and derives game status. The zero value
// is not usable; construct one with NewEvaluator.
type Evaluator struct {
	targets TargetGenerator
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithTargets sets the candidate generator used for enumeration.
func WithTargets(g TargetGenerator) EvaluatorOption {
	return func(e *Evaluator) {
		if g != nil {
			e.targets = g
		}
	}
}

// NewEvaluator creates an Evaluator. By default it scans all 64 squares.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{targets: AllSquares}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// LegalMoves returns every legal move for colour, ordered by source square
// and then destination square, both row-major.
func (e *Evaluator) LegalMoves(board *chess.Board, colour chess.Colour, lastMove *chess.Move) []chess.Move {
	var moves []chess.Move
	e.eachLegalMove(board, colour, lastMove, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (e *Evaluator) HasLegalMoves(board *chess.Board, colour chess.Colour, lastMove *chess.Move) bool {
	found := false
	e.eachLegalMove(board, colour, lastMove, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// eachLegalMove calls yield for each legal move in order until yield returns false.
func (e *Evaluator) eachLegalMove(board *chess.Board, colour chess.Colour, lastMove *chess.Move, yield func(chess.Move) bool) {
	if lastMove != nil && lastMove.Check() != nil {
		lastMove = nil
	}
	for _, sq := range board.Pieces(colour) {
		var seen [chess.BoardSize][chess.BoardSize]bool
		for _, to := range e.targets(board, sq.Pos, sq.Piece) {
			seen[to.Row][to.Col] = true
		}
		for row := chess.FirstRow; row <= chess.LastRow; row++ {
			for col := chess.FirstCol; col <= chess.LastCol; col++ {
				if !seen[row][col] {
					continue
				}
				move := chess.Move{From: sq.Pos, To: chess.Pos(row, col)}
				if isLegal(board, move, lastMove) && !yield(move) {
					return
				}
			}
		}
	}
}

// LegalMoves returns every legal move for colour using exhaustive enumeration.
func LegalMoves(board *chess.Board, colour chess.Colour, lastMove *chess.Move) []chess.Move {
	return defaultEvaluator.LegalMoves(board, colour, lastMove)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	return defaultEvaluator.HasLegalMoves(board, colour, nil)
}
