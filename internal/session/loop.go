package session

import (
	"context"
	"ctchen222/console-exercises/internal/console"
	"ctchen222/console-exercises/internal/events"
	"ctchen222/console-exercises/internal/game"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("session")
	meter  = otel.Meter("session")
)

//go:generate mockgen -source=loop.go -destination=mocks/mock_session.go -package=mocks

// CoordinateSource supplies a single board coordinate per call. It returns
// console.ErrCancelled when the player quits.
type CoordinateSource interface {
	RequestCoordinate(ctx context.Context, prompt string) (int, error)
}

// State is the position of the loop in its turn cycle.
type State int

const (
	AwaitingInput State = iota
	Evaluating
	Terminal
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Evaluating:
		return "evaluating"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Reason describes how a game reached its terminal state.
type Reason string

const (
	ReasonWin         Reason = "win"
	ReasonTie         Reason = "tie"
	ReasonCancelled   Reason = "cancelled"
	ReasonInterrupted Reason = "interrupted"
)

// Result is the terminal state of a finished loop.
type Result struct {
	Reason Reason
	Winner game.PlayerMark
	Moves  int
	Board  game.Board
}

// Loop drives a two-player game on one console until a terminal state.
type Loop struct {
	id        string
	game      *game.Game
	state     State
	input     CoordinateSource
	out       io.Writer
	publisher events.Publisher
	logger    *slog.Logger

	movesCounter    metric.Int64Counter
	rejectedCounter metric.Int64Counter
	gamesCounter    metric.Int64Counter
}

type Option func(*Loop)

// WithGameID overrides the generated game id.
func WithGameID(id string) Option {
	return func(l *Loop) { l.id = id }
}

func WithPublisher(p events.Publisher) Option {
	return func(l *Loop) { l.publisher = p }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop creates a loop over a fresh board. Prompts and board renderings go to out.
func NewLoop(input CoordinateSource, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		id:    uuid.New().String(),
		game:  game.NewGame(),
		state: AwaitingInput,
		input: input,
		out:   out,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	if l.publisher == nil {
		l.publisher = events.NewLogPublisher(l.logger)
	}
	l.logger = l.logger.With("game.id", l.id)
	l.initInstruments()

	return l
}

func (l *Loop) ID() string {
	return l.id
}

func (l *Loop) State() State {
	return l.state
}

// Board returns a copy of the current board.
func (l *Loop) Board() game.Board {
	return l.game.Board
}

// Run plays until a win, a tie, a quit token or ctx cancellation. The only
// errors returned are unexpected input failures.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	if l.state == Terminal {
		return Result{}, game.ErrGameFinished
	}

	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(
		attribute.String("game.id", l.id),
	))
	defer span.End()

	l.printWelcome()
	l.publish(ctx, events.GameStarted, events.GameStartedPayload{FirstTurn: l.game.CurrentTurn})
	l.logger.InfoContext(ctx, "game started", "first_turn", l.game.CurrentTurn)

	for {
		switch l.state {
		case AwaitingInput:
			if err := l.turn(ctx); err != nil {
				if errors.Is(err, console.ErrCancelled) {
					fmt.Fprintln(l.out, "Game terminated by player.")
					return l.finish(ctx, span, ReasonCancelled, game.None), nil
				}
				if ctx.Err() != nil {
					return l.finish(ctx, span, ReasonInterrupted, game.None), nil
				}
				span.RecordError(err)
				span.SetStatus(codes.Error, "turn failed")
				l.logger.ErrorContext(ctx, "turn failed", "error", err)
				return Result{}, err
			}

		case Evaluating:
			outcome := l.game.Outcome()
			if !outcome.Terminal() {
				l.state = AwaitingInput
				continue
			}

			fmt.Fprint(l.out, game.Render(l.game.Board))
			if outcome.State == game.Win {
				fmt.Fprintf(l.out, "🎉 Player %s wins! 🎉\n", outcome.Winner)
				return l.finish(ctx, span, ReasonWin, outcome.Winner), nil
			}
			fmt.Fprintln(l.out, "It's a tie! The board is full.")
			return l.finish(ctx, span, ReasonTie, game.None), nil

		case Terminal:
			return Result{}, game.ErrGameFinished
		}
	}
}

// turn collects one coordinate pair and applies it. An occupied cell is
// reported to the player and leaves the loop awaiting input for the same player.
func (l *Loop) turn(ctx context.Context) error {
	mark := l.game.CurrentTurn

	ctx, span := tracer.Start(ctx, "session.turn", trace.WithAttributes(
		attribute.String("game.id", l.id),
		attribute.String("player.mark", string(mark)),
		attribute.Int("game.moves", l.game.Moves),
	))
	defer span.End()

	fmt.Fprint(l.out, game.Render(l.game.Board))
	fmt.Fprintf(l.out, "Player %s's turn\n", mark)

	row, err := l.input.RequestCoordinate(ctx, fmt.Sprintf("Enter row (0, 1, or 2) for player %s: ", mark))
	if err != nil {
		return err
	}
	col, err := l.input.RequestCoordinate(ctx, fmt.Sprintf("Enter column (0, 1, or 2) for player %s: ", mark))
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("move.row", row), attribute.Int("move.col", col))

	if err := l.game.Move(row, col); err != nil {
		if !errors.Is(err, game.ErrCellOccupied) {
			return fmt.Errorf("failed to apply move (%d, %d): %w", row, col, err)
		}

		fmt.Fprintln(l.out, "That spot is already taken! Try again.")
		l.rejectedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player.mark", string(mark))))
		l.logger.DebugContext(ctx, "move rejected", "player.mark", mark, "row", row, "col", col)
		l.publish(ctx, events.MoveRejected, events.MoveRejectedPayload{
			Mark:   mark,
			Row:    row,
			Col:    col,
			Reason: err.Error(),
		})
		return nil
	}

	l.movesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player.mark", string(mark))))
	l.logger.DebugContext(ctx, "move accepted", "player.mark", mark, "row", row, "col", col)
	l.publish(ctx, events.MoveAccepted, events.MoveAcceptedPayload{
		Mark:       mark,
		Row:        row,
		Col:        col,
		MoveNumber: l.game.Moves,
	})
	l.state = Evaluating
	return nil
}

func (l *Loop) finish(ctx context.Context, span trace.Span, reason Reason, winner game.PlayerMark) Result {
	l.state = Terminal

	result := Result{
		Reason: reason,
		Winner: winner,
		Moves:  l.game.Moves,
		Board:  l.game.Board,
	}

	span.SetAttributes(
		attribute.String("game.result", string(reason)),
		attribute.String("game.winner", string(winner)),
		attribute.Int("game.moves", result.Moves),
	)
	// Interrupted runs still record the counter and event, so detach from the
	// cancelled context.
	ctx = context.WithoutCancel(ctx)
	l.gamesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("game.result", string(reason))))
	l.publish(ctx, events.GameFinished, events.GameFinishedPayload{
		Reason: string(reason),
		Winner: winner,
		Moves:  result.Moves,
	})
	l.logger.InfoContext(ctx, "game finished", "result", reason, "winner", winner, "moves", result.Moves)

	return result
}

func (l *Loop) publish(ctx context.Context, eventType string, payload any) {
	event, err := events.New(eventType, l.id, payload)
	if err == nil {
		err = l.publisher.Publish(ctx, event)
	}
	if err != nil {
		l.logger.WarnContext(ctx, "failed to publish game event", "event", eventType, "error", err)
	}
}

func (l *Loop) printWelcome() {
	fmt.Fprintln(l.out, "Welcome to Tic-Tac-Toe!")
	fmt.Fprintln(l.out, "Players will alternate placing X and O on a 3x3 board.")
	fmt.Fprintln(l.out, "Enter coordinates as 0, 1, or 2. Type 'quit' to exit.")
	fmt.Fprintln(l.out)
}
