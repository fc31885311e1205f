package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "ctchen222/console-exercises"

// MultiHandler is a slog.Handler that dispatches records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any underlying handler handles records at the given level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle dispatches the record to every underlying handler that accepts its
// level. All handlers are tried; their errors are joined.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a new MultiHandler whose handlers have the given attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return NewMultiHandler(newHandlers...)
}

// WithGroup returns a new MultiHandler whose handlers have the given group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return NewMultiHandler(newHandlers...)
}

// Options selects where diagnostics go. The game owns stdout, so Output is
// normally stderr.
type Options struct {
	Output io.Writer
	Level  slog.Level
	// Telemetry attaches the OpenTelemetry log bridge.
	Telemetry bool
}

// Init builds the process logger and installs it as the slog default.
func Init(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			AddSource: true, // Include source file and line number
			Level:     opts.Level,
		}),
	}
	if opts.Telemetry {
		handlers = append(handlers, otelslog.NewHandler(instrumentationName))
	}

	slogLogger := slog.New(NewMultiHandler(handlers...))
	slog.SetDefault(slogLogger)

	return slogLogger
}
