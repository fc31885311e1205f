package main

import (
	"context"
	"ctchen222/console-exercises/internal/app"
	"ctchen222/console-exercises/internal/console"
	"ctchen222/console-exercises/internal/session"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type gameRunner interface {
	Run(ctx context.Context) (session.Result, error)
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

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	loop := session.NewLoop(prompter, os.Stdout, session.WithLogger(logger))

	return play(ctx, loop, os.Stdout, logger)
}

// play runs one game and prints how it ended. Every terminal state,
// including an unexpected error or panic, exits 0.
func play(ctx context.Context, game gameRunner, out io.Writer, logger *slog.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered from panic", "panic", r)
			fmt.Fprintf(out, "An unexpected error occurred: %v\n", r)
			code = 0
		}
	}()

	result, err := game.Run(ctx)
	if err != nil {
		fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
		return 0
	}
	if result.Reason == session.ReasonInterrupted {
		fmt.Fprint(out, "\n\nGame interrupted. Goodbye!\n")
	}

	return 0
}
