package main

import (
	"context"
	"ctchen222/console-exercises/internal/app"
	"ctchen222/console-exercises/internal/checkbook"
	"ctchen222/console-exercises/internal/console"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type shellRunner interface {
	Run(ctx context.Context) error
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, shutdown, err := app.Bootstrap(ctx, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("Error shutting down telemetry", "error", err)
		}
	}()

	shell := checkbook.NewShell(checkbook.New(), console.NewPrompter(os.Stdin, os.Stdout), logger)

	return serve(ctx, shell, os.Stdout, logger)
}

// serve runs the shell and prints how it ended. It always exits 0.
func serve(ctx context.Context, shell shellRunner, out io.Writer, logger *slog.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered from panic", "panic", r)
			fmt.Fprintf(out, "An unexpected error occurred: %v\n", r)
			code = 0
		}
	}()

	err := shell.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		fmt.Fprint(out, "\n\nProgram interrupted. Goodbye!\n")
	default:
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
	}

	return 0
}
