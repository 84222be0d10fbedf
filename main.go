package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/sift/cli"
	"github.com/ardnew/sift/cli/cmd"
	"github.com/ardnew/sift/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// Quiet no-match carries its verdict in the exit status alone.
		if !errors.Is(err, cmd.ErrNoMatch) {
			log.Error(
				"run failed",
				slog.Any("error", err),
			) // slog automatically uses LogValue()
		}

		os.Exit(1)
	}
}
