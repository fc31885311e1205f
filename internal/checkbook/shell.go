package checkbook

import (
	"context"
	"ctchen222/console-exercises/internal/console"
	"ctchen222/console-exercises/internal/validator"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("checkbook")

const commandList = "Available commands: deposit, withdraw, balance, exit"

// CancelTokens return from an amount prompt to the menu.
var CancelTokens = []string{"cancel", "exit", "quit"}

// Shell is the interactive menu around a Checkbook.
type Shell struct {
	book     *Checkbook
	prompter *console.Prompter
	logger   *slog.Logger
}

func NewShell(book *Checkbook, prompter *console.Prompter, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{book: book, prompter: prompter, logger: logger}
}

// Run serves commands until "exit", end of input, or ctx cancellation.
// Cancellation is returned as ctx.Err() so the caller can say goodbye.
func (s *Shell) Run(ctx context.Context) error {
	s.prompter.Println("Welcome to your Checkbook Management System!")
	s.prompter.Println(commandList)

	for {
		action, err := s.prompter.Line(ctx, "\nWhat would you like to do? (deposit, withdraw, balance, exit): ")
		if err != nil {
			if errors.Is(err, console.ErrCancelled) {
				return nil
			}
			return err
		}

		switch strings.ToLower(action) {
		case "exit":
			s.prompter.Println("Thank you for using the Checkbook Management System!")
			return nil
		case "deposit":
			if err := s.transact(ctx, "deposit", "Enter the amount to deposit: $"); err != nil {
				return err
			}
		case "withdraw":
			if err := s.transact(ctx, "withdraw", "Enter the amount to withdraw: $"); err != nil {
				return err
			}
		case "balance":
			s.printBalance()
		default:
			s.prompter.Println("Invalid command. Please try again.")
			s.prompter.Println(commandList)
		}
	}
}

func (s *Shell) transact(ctx context.Context, kind, prompt string) error {
	amount, err := s.requestAmount(ctx, prompt)
	if err != nil {
		if errors.Is(err, console.ErrCancelled) {
			return nil
		}
		return err
	}

	_, span := tracer.Start(ctx, "checkbook."+kind, trace.WithAttributes(
		attribute.Int64("amount.cents", int64(amount)),
	))
	defer span.End()

	switch kind {
	case "deposit":
		err = s.book.Deposit(amount)
	case "withdraw":
		err = s.book.Withdraw(amount)
	}

	switch {
	case errors.Is(err, ErrNonPositiveAmount) && kind == "deposit":
		s.prompter.Println("Deposit amount must be positive.")
	case errors.Is(err, ErrNonPositiveAmount):
		s.prompter.Println("Withdrawal amount must be positive.")
	case errors.Is(err, ErrInsufficientFunds):
		s.prompter.Println("Insufficient funds to complete the withdrawal.")
	case err != nil:
		return err
	case kind == "deposit":
		s.prompter.Printf("Deposited %s\n", amount)
		s.printBalance()
	default:
		s.prompter.Printf("Withdrew %s\n", amount)
		s.printBalance()
	}

	s.logger.DebugContext(ctx, "transaction", "kind", kind, "amount", amount.String(), "balance", s.book.Balance().String(), "error", err)
	return nil
}

// requestAmount prompts until a non-negative number or a cancel token is entered.
func (s *Shell) requestAmount(ctx context.Context, prompt string) (Cents, error) {
	for {
		text, err := s.prompter.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if console.IsToken(text, CancelTokens...) {
			return 0, console.ErrCancelled
		}

		amount, err := ParseAmount(text)
		if err != nil {
			s.prompter.Println("Invalid input. Please enter a valid number (or 'cancel' to return to menu).")
			continue
		}
		if err := validator.GetValidator().Var(int64(amount), "gte=0"); err != nil {
			s.prompter.Println("Amount cannot be negative. Please enter a positive number.")
			continue
		}

		return amount, nil
	}
}

func (s *Shell) printBalance() {
	s.prompter.Printf("Current Balance: %s\n", s.book.Balance())
}
