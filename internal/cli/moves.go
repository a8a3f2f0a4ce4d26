package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// chess-rules moves
func Moves(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "moves [file...]",
		Short: "List the legal moves in positions",
		Long: heredoc.Doc(`moves reads position requests and lists every legal move
			for the side to move, ordered by source square and then
			destination square, both row by row.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(a, cmd, args, true)
		},
	}
}

// chess-rules status
func Status(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status [file...]",
		Short: "Report check, checkmate and stalemate",
		Long: heredoc.Doc(`status reads position requests and reports whether the
			side to move is in check, checkmated or stalemated, and
			who has won if the game is over.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(a, cmd, args, false)
		},
	}
}

func describe(a *app, cmd *cobra.Command, args []string, withMoves bool) error {
	w := output.New(a.cfg.OutputFile, a.cfg)
	e := a.cfg.Evaluator()

	n := 0
	return eachRequest(cmd, args, func(req *output.Request) error {
		n++
		board, toMove, err := req.Position()
		if err != nil {
			return errors.Wrapf(err, "request %d", n)
		}
		return w.WriteReport(output.Describe(e, board, toMove, req.Last(), withMoves))
	})
}
