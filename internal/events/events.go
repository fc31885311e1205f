package events

import (
	"context"
	"ctchen222/console-exercises/internal/game"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Event types
const (
	GameStarted  = "game_started"
	MoveAccepted = "move_accepted"
	MoveRejected = "move_rejected"
	GameFinished = "game_finished"
)

// Event is a notification emitted by a running game.
type Event struct {
	Type    string          `json:"event"`
	GameID  string          `json:"game_id"`
	Payload json.RawMessage `json:"payload"`
}

// GameStartedPayload is the payload for the "game_started" event.
type GameStartedPayload struct {
	FirstTurn game.PlayerMark `json:"first_turn"`
}

// MoveAcceptedPayload is the payload for the "move_accepted" event.
type MoveAcceptedPayload struct {
	Mark       game.PlayerMark `json:"mark"`
	Row        int             `json:"row"`
	Col        int             `json:"col"`
	MoveNumber int             `json:"move_number"`
}

// MoveRejectedPayload is the payload for the "move_rejected" event.
type MoveRejectedPayload struct {
	Mark   game.PlayerMark `json:"mark"`
	Row    int             `json:"row"`
	Col    int             `json:"col"`
	Reason string          `json:"reason"`
}

// GameFinishedPayload is the payload for the "game_finished" event.
type GameFinishedPayload struct {
	Reason string          `json:"reason"`
	Winner game.PlayerMark `json:"winner,omitempty"`
	Moves  int             `json:"moves"`
}

// New builds an Event with payload encoded as JSON.
func New(eventType, gameID string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, GameID: gameID, Payload: raw}, nil
}

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

// Publisher receives game events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes every event as a structured debug record.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.LogAttrs(ctx, slog.LevelDebug, "game event",
		slog.String("event", event.Type),
		slog.String("game.id", event.GameID),
		slog.String("payload", string(event.Payload)),
	)
	return nil
}
