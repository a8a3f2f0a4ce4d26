// Package session keeps the state of a game in progress: the board, the side
// to move, the last move played and the move history. It enforces turn order
// and refuses moves once the game is over, delegating every rule to the
// engine package.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Record is one committed ply.
type Record struct {
	Ply       int
	Move      chess.Move
	Mover     chess.Colour
	Captured  chess.Piece
	Castled   bool
	EnPassant bool
	Promoted  bool
	Status    chess.GameStatus // status for the side to move after this ply
}

// Session is a single game. It is safe for concurrent use.
type Session struct {
	id   string
	eval *engine.Evaluator

	mu       sync.RWMutex
	board    *chess.Board
	toMove   chess.Colour
	lastMove *chess.Move
	status   chess.GameStatus
	history  []Record
}

// Option configures a Session.
type Option func(*Session)

// WithEvaluator sets the evaluator used for legal move enumeration and status.
func WithEvaluator(e *engine.Evaluator) Option {
	return func(s *Session) {
		if e != nil {
			s.eval = e
		}
	}
}

// WithPosition starts the session from a copy of board with toMove to play
// instead of the standard initial position.
func WithPosition(board *chess.Board, toMove chess.Colour) Option {
	return func(s *Session) {
		if board != nil {
			s.board = board.Clone()
			s.toMove = toMove
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// New creates a session in the standard initial position with White to move.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		eval:   engine.NewEvaluator(),
		board:  chess.InitialBoard(),
		toMove: chess.White,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.status = s.eval.Status(s.board, s.toMove, nil)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Play validates move for the side to move and commits it.
//
// The returned error is a *errors.MoveError wrapping ErrGameOver,
// ErrInvalidPosition, ErrNoPiece, ErrWrongTurn or ErrIllegalMove. A rejected
// move leaves the session unchanged.
func (s *Session) Play(move chess.Move) (*engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(move); err != nil {
		return nil, s.moveError(err, move)
	}

	res, err := s.eval.ApplyMove(s.board, move)
	if err != nil {
		return nil, s.moveError(err, move)
	}

	s.board = res.Board
	s.toMove = res.NextToMove
	s.lastMove = &res.Move
	s.status = res.Status
	s.history = append(s.history, Record{
		Ply:       len(s.history) + 1,
		Move:      res.Move,
		Mover:     res.Mover,
		Captured:  res.Captured,
		Castled:   res.Castled,
		EnPassant: res.EnPassant,
		Promoted:  res.Promoted,
		Status:    res.Status,
	})
	return res, nil
}

// moveError attaches the session, the ply about to be played and the move
// to err. The caller must hold s.mu.
func (s *Session) moveError(err error, move chess.Move) *errors.MoveError {
	return &errors.MoveError{
		Err:       err,
		SessionID: s.id,
		Ply:       len(s.history) + 1,
		Move:      move.String(),
	}
}

// check runs the session rules and then the legality gate.
func (s *Session) check(move chess.Move) error {
	if s.status.IsOver() {
		return errors.ErrGameOver
	}
	if err := move.Check(); err != nil {
		return err
	}

	piece := s.board.Get(move.From)
	switch {
	case piece.IsEmpty():
		return errors.ErrNoPiece
	case piece.Colour != s.toMove:
		return errors.ErrWrongTurn
	}

	ok, err := engine.IsValidMove(s.board, move, s.lastMove)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrIllegalMove
	}
	return nil
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// ToMove returns the side whose turn it is.
func (s *Session) ToMove() chess.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toMove
}

// LastMove returns the most recent move, or nil before the first move.
func (s *Session) LastMove() *chess.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastMove == nil {
		return nil
	}
	m := *s.lastMove
	return &m
}

// Status returns the game status for the side to move.
func (s *Session) Status() chess.GameStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	status := s.Status()
	return status == chess.Check || status == chess.Checkmate
}

// Winner returns the side that delivered checkmate. ok is false while the
// game is in progress and after stalemate.
func (s *Session) Winner() (winner chess.Colour, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status != chess.Checkmate {
		return chess.White, false
	}
	return s.toMove.Opposite(), true
}

// LegalMoves lists the moves available to the side to move.
func (s *Session) LegalMoves() []chess.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status.IsOver() {
		return nil
	}
	return s.eval.LegalMoves(s.board, s.toMove, s.lastMove)
}

// History returns a copy of the committed plies in order.
func (s *Session) History() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// Ply returns the number of moves played.
func (s *Session) Ply() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
