package main

import (
	"context"
	"ctchen222/console-exercises/internal/app"
	"ctchen222/console-exercises/internal/factorial"
	"fmt"
	"os"
	"strconv"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx := context.Background()

	logger, shutdown, err := app.Bootstrap(ctx, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("Error shutting down telemetry", "error", err)
		}
	}()

	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <non-negative integer>\n", args[0])
		return 1
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid number %q\n", args[1])
		return 1
	}

	f, err := factorial.Of(n)
	if err != nil {
		logger.Debug("factorial rejected", "n", n, "error", err)
		fmt.Fprintf(os.Stderr, "%d: %v\n", n, err)
		return 1
	}

	fmt.Println(f)
	return 0
}
