package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// eachInput calls fn with a decoder for every file in args, or for standard
// input when args is empty or "-".
func eachInput(cmd *cobra.Command, args []string, fn func(dec *output.Decoder, name string) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		if err := readInput(cmd, name, fn); err != nil {
			return err
		}
	}
	return nil
}

func readInput(cmd *cobra.Command, name string, fn func(dec *output.Decoder, name string) error) error {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
		name = "stdin"
	} else {
		f, err := os.Open(name) //nolint:gosec // G304: reading user-specified input files is intended
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	logrus.WithField("input", name).Trace("reading documents")
	if err := fn(output.NewDecoder(r), name); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	return nil
}

// eachRequest decodes every Request in the inputs and hands it to fn with
// its resolved position.
func eachRequest(cmd *cobra.Command, args []string, fn func(req *output.Request) error) error {
	return eachInput(cmd, args, func(dec *output.Decoder, _ string) error {
		for dec.More() {
			req, err := dec.DecodeRequest()
			if err != nil {
				return err
			}
			if err := fn(req); err != nil {
				return err
			}
		}
		return nil
	})
}
