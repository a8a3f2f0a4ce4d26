// Package cli implements the chess-rules command line.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "v0.1.0"

// app carries the resolved configuration from the root command to its
// subcommands.
type app struct {
	cfg *config.Config
}

func Root() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chess-rules",
		Short: "Check chess moves and positions",
		Long: heredoc.Doc(`chess-rules answers rules questions about chess positions:
			whether a move is legal, which moves are available, and
			whether the side to move is in check, checkmated or
			stalemated. It can also replay whole games in parallel.

			Positions, moves and games are read as a stream of JSON
			documents from the files named on the command line, or
			from standard input when none are given.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logrus.SetLevel(level)

			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
			logrus.WithFields(logrus.Fields{
				"workers":     cfg.Workers,
				"enumeration": cfg.Enumeration,
				"format":      cfg.Output.Format,
			}).Debug("configuration loaded")
			return nil
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.StringP("config", "c", "", "Configuration file (default "+config.DefaultPath()+")")
	flags.IntP("workers", "w", 0, "Number of games replayed in parallel")
	flags.StringP("enumeration", "e", "", "Move enumeration: all-squares or pseudo-legal")
	flags.StringP("format", "f", "", "Output format: text or json")
	flags.String("indent", "", "JSON indentation, empty for one document per line")
	flags.Bool("no-diagrams", false, "Omit board diagrams from text output")

	root.Version = programVersion
	root.SetVersionTemplate(programVersion + "\n")

	// Register the various commands.
	root.AddCommand(Validate(a))
	root.AddCommand(Moves(a))
	root.AddCommand(Status(a))
	root.AddCommand(Play(a))

	return root
}

// load reads the configuration file and applies any flags given on the
// command line over it.
func (a *app) load(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	base, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	b := config.NewConfigBuilderFrom(base)
	if flags.Changed("workers") {
		n, _ := flags.GetInt("workers")
		b.WithWorkers(n)
	}
	if flags.Changed("enumeration") {
		e, _ := flags.GetString("enumeration")
		b.WithEnumeration(config.Enumeration(e))
	}
	if flags.Changed("format") {
		f, _ := flags.GetString("format")
		b.WithOutputFormat(config.OutputFormat(f))
	}
	if flags.Changed("indent") {
		indent, _ := flags.GetString("indent")
		b.WithIndent(indent)
	}
	if flags.Changed("no-diagrams") {
		b.WithDiagrams(false)
	}
	b.WithOutput(cmd.OutOrStdout())

	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
