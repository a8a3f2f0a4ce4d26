// chess-rules checks chess moves and positions against the rules of the game.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chess-rules-go/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}
