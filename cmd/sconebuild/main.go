package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sconestudio/sconebuild/internal/app"
	"github.com/sconestudio/sconebuild/internal/cli"
	"github.com/sconestudio/sconebuild/internal/shell"
)

// main is the entrypoint for the sconebuild application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		// Surface the underlying tool's own exit code when a subprocess failed.
		os.Exit(shell.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	buildApp, err := app.NewApp(outW, appConfig, nil)
	if err != nil {
		return err
	}

	return buildApp.Run(context.Background())
}
