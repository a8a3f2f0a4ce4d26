package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Judge runs the legality gate on move and describes the answer. Off-board
// coordinates produce an illegal verdict carrying the error text.
func Judge(board *chess.Board, move chess.Move, lastMove *chess.Move) *Verdict {
	v := &Verdict{Move: MoveToJSON(move)}

	ok, err := engine.IsValidMove(board, move, lastMove)
	if err != nil {
		v.Error = err.Error()
		return v
	}
	v.Legal = ok
	if ok {
		v.Castling = engine.IsCastlingMove(board, move)
		v.EnPassant = engine.IsEnPassantMove(board, move, lastMove)
		v.Promotion = engine.IsPawnPromotion(board, move)
	}
	return v
}

// Describe reports board with toMove to play, evaluated with e.
func Describe(e *engine.Evaluator, board *chess.Board, toMove chess.Colour, lastMove *chess.Move, withMoves bool) *GameReport {
	status := e.Status(board, toMove, lastMove)
	r := &GameReport{
		ToMove:  ColourName(toMove),
		Status:  status.String(),
		InCheck: status == chess.Check || status == chess.Checkmate,
		Board:   BoardToJSON(board),
	}
	if status == chess.Checkmate {
		r.Winner = ColourName(toMove.Opposite())
	}
	if r.InCheck {
		r.Checkers = checkers(board, toMove)
	}
	if withMoves {
		r.LegalMoves = MovesToJSON(e.LegalMoves(board, toMove, lastMove))
	}
	return r
}

// SessionReport reports the current state of s.
func SessionReport(s *session.Session, name string, withMoves bool) *GameReport {
	board := s.Board()
	r := &GameReport{
		Name:      name,
		SessionID: s.ID(),
		Plies:     s.Ply(),
		ToMove:    ColourName(s.ToMove()),
		Status:    s.Status().String(),
		InCheck:   s.InCheck(),
		Board:     BoardToJSON(board),
	}
	if winner, ok := s.Winner(); ok {
		r.Winner = ColourName(winner)
	}
	if r.InCheck {
		r.Checkers = checkers(board, s.ToMove())
	}
	if withMoves {
		r.LegalMoves = MovesToJSON(s.LegalMoves())
	}
	return r
}

// ReplayReport reports the outcome of a batch replay.
func ReplayReport(res worker.ProcessResult) *GameReport {
	r := &GameReport{
		Name:      res.Name,
		SessionID: res.SessionID,
		Plies:     res.Plies,
		ToMove:    ColourName(res.ToMove),
		Status:    res.Status.String(),
		InCheck:   res.Status == chess.Check || res.Status == chess.Checkmate,
	}
	if res.Board != nil {
		r.Board = BoardToJSON(res.Board)
		if r.InCheck {
			r.Checkers = checkers(res.Board, res.ToMove)
		}
	}
	if res.Status == chess.Checkmate {
		r.Winner = ColourName(res.ToMove.Opposite())
	}
	if res.Error != nil {
		r.Error = res.Error.Error()
	}
	return r
}

// checkers lists the pieces attacking colour's king.
func checkers(board *chess.Board, colour chess.Colour) []JSONPosition {
	king, ok := board.FindKing(colour)
	if !ok {
		return nil
	}
	var out []JSONPosition
	for _, pos := range engine.Attackers(board, king, colour.Opposite()) {
		out = append(out, JSONPosition{Row: pos.Row, Col: pos.Col})
	}
	return out
}
