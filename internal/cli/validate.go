package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// chess-rules validate
func Validate(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Judge whether moves are legal",
		Long: heredoc.Doc(`validate reads position requests, each carrying a move,
			and reports whether the move is legal in that position.
			Legal castling, en passant and promotion moves are tagged.

			A request looks like:

			  {"board": [[...], ...], "toMove": "white",
			   "move": {"from": {"row": 6, "col": 4}, "to": {"row": 4, "col": 4}},
			   "lastMove": {"from": {...}, "to": {...}}}

			The board defaults to the initial position. The move played
			before this one is only needed to judge en passant.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := output.New(a.cfg.OutputFile, a.cfg)

			n := 0
			return eachRequest(cmd, args, func(req *output.Request) error {
				n++
				if req.Move == nil {
					return fmt.Errorf("request %d has no move", n)
				}
				board, _, err := req.Position()
				if err != nil {
					return errors.Wrapf(err, "request %d", n)
				}
				return w.WriteVerdict(output.Judge(board, req.Move.Move(), req.Last()))
			})
		},
	}
}
