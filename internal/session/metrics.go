package session

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

func (l *Loop) initInstruments() {
	l.movesCounter = l.counter("tictactoe.moves", "Accepted placements.")
	l.rejectedCounter = l.counter("tictactoe.moves.rejected", "Placements rejected because the cell was taken.")
	l.gamesCounter = l.counter("tictactoe.games", "Games that reached a terminal state, by result.")
}

func (l *Loop) counter(name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit("{count}"))
	if err != nil {
		l.logger.Warn("failed to create counter, using no-op", "metric", name, "error", err)
		return noop.Int64Counter{}
	}
	return c
}
