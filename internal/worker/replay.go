package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// ReplayFunc returns a ProcessFunc that plays each item's moves in a fresh
// session built with opts. Replay stops at the first rejected move, which is
// reported in ProcessResult.Error; the result still describes the position
// reached before it.
func ReplayFunc(opts ...session.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return replay(session.New(opts...), item)
	}
}

// ReplayRegistered is like ReplayFunc but creates each session in reg so it
// can be looked up by ProcessResult.SessionID afterwards.
func ReplayRegistered(reg *session.Registry) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return replay(reg.Create(), item)
	}
}

func replay(s *session.Session, item WorkItem) ProcessResult {
	res := ProcessResult{
		Index:     item.Index,
		Name:      item.Name,
		SessionID: s.ID(),
	}

	for _, move := range item.Moves {
		if _, err := s.Play(move); err != nil {
			res.Error = err
			break
		}
	}

	res.Plies = s.Ply()
	res.ToMove = s.ToMove()
	res.Status = s.Status()
	res.Board = s.Board()
	return res
}
