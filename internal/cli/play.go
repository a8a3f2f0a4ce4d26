package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// SPIN is the spinner character set shown while games are replayed.
const SPIN = 14

// chess-rules play
func Play(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [file...]",
		Short: "Replay games and report how they ended",
		Long: heredoc.Doc(`play reads games, each a named list of moves, and replays
			them from the initial position in parallel. Replay of a game
			stops at its first rejected move; the report then describes
			the position reached before it along with the reason.

			A game looks like:

			  {"name": "fools mate", "moves": [
			    {"from": {"row": 6, "col": 5}, "to": {"row": 5, "col": 5}}, ...]}`),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, _ := cmd.Flags().GetBool("progress")
			withMoves, _ := cmd.Flags().GetBool("legal-moves")
			return a.play(cmd, args, progress, withMoves)
		},
	}

	cmd.Flags().BoolP("progress", "p", false, "Show a progress spinner on standard error")
	cmd.Flags().BoolP("legal-moves", "l", false, "List the legal moves in each final position")
	return cmd
}

func (a *app) play(cmd *cobra.Command, args []string, progress, withMoves bool) error {
	var items []worker.WorkItem
	err := eachInput(cmd, args, func(dec *output.Decoder, name string) error {
		for dec.More() {
			g, err := dec.DecodeGame()
			if err != nil {
				return err
			}
			item := worker.WorkItem{Index: len(items), Name: g.Name}
			if item.Name == "" {
				item.Name = fmt.Sprintf("%s#%d", name, len(items)+1)
			}
			for _, m := range g.Moves {
				item.Moves = append(item.Moves, m.Move())
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return err
	}

	reg := session.NewRegistry(session.WithEvaluator(a.cfg.Evaluator()))
	pool := worker.NewPool(worker.ReplayRegistered(reg),
		worker.WithWorkers(a.cfg.Workers),
		worker.WithBufferSize(a.cfg.BufferSize),
		worker.WithLogger(logrus.StandardLogger()),
	)

	var onResult func(worker.ProcessResult)
	if progress {
		s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Start()
		defer s.Stop()

		done := 0
		onResult = func(worker.ProcessResult) {
			done++
			s.Lock()
			s.Suffix = fmt.Sprintf(" %d/%d games", done, len(items))
			s.Unlock()
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := pool.Run(ctx, items, onResult)
	if err != nil {
		return err
	}

	w := output.New(a.cfg.OutputFile, a.cfg)
	rejected, mates := 0, 0
	for _, res := range results {
		r, err := report(reg, res, withMoves)
		if err != nil {
			return err
		}
		if err := w.WriteReport(r); err != nil {
			return err
		}

		if res.Error != nil {
			rejected++
		}
		if res.Status == chess.Checkmate {
			mates++
		}
	}

	logrus.WithFields(logrus.Fields{
		"games":     len(results),
		"rejected":  rejected,
		"checkmate": mates,
	}).Info("replay finished")
	return nil
}

// report describes one replayed game. Listing legal moves needs the live
// session, so those reports are built from the registry.
func report(reg *session.Registry, res worker.ProcessResult, withMoves bool) (*output.GameReport, error) {
	if !withMoves {
		return output.ReplayReport(res), nil
	}

	s, err := reg.Get(res.SessionID)
	if err != nil {
		return nil, err
	}
	r := output.SessionReport(s, res.Name, true)
	if res.Error != nil {
		r.Error = res.Error.Error()
	}
	return r, nil
}
