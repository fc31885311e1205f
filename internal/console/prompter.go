package console

import (
	"bufio"
	"context"
	"ctchen222/console-exercises/internal/validator"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrCancelled is returned when the user types a cancellation token or the
// input stream ends.
var ErrCancelled = errors.New("input cancelled")

const (
	msgCoordinateRange   = "Please enter 0, 1, or 2 only."
	msgCoordinateInvalid = "Invalid input. Please enter a number (0, 1, or 2) or 'quit' to exit."
)

// QuitTokens end a game of tic-tac-toe.
var QuitTokens = []string{"quit", "exit"}

// Prompter reads answers line by line from an input stream and writes
// prompts to an output stream.
//
// Lines are read on a background goroutine so that a blocked read still
// observes context cancellation. Only one read is outstanding at a time.
type Prompter struct {
	out    io.Writer
	reader *bufio.Reader

	start   sync.Once
	lines   chan string
	scanErr error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		out:    out,
		reader: bufio.NewReader(in),
		lines:  make(chan string),
	}
}

// Out is the stream prompts are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Line writes prompt and returns the next input line with surrounding
// whitespace removed. End of input yields ErrCancelled.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	p.start.Do(func() { go p.scan() })

	fmt.Fprint(p.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.scanErr != nil {
				return "", fmt.Errorf("failed to read input: %w", p.scanErr)
			}
			return "", ErrCancelled
		}
		return strings.TrimSpace(line), nil
	}
}

// RequestCoordinate prompts until the user enters 0, 1 or 2, or a quit token.
// Rejected input prints a hint and is asked for again.
func (p *Prompter) RequestCoordinate(ctx context.Context, prompt string) (int, error) {
	for {
		text, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if IsToken(text, QuitTokens...) {
			return 0, ErrCancelled
		}

		value, err := strconv.Atoi(text)
		if err != nil {
			p.Println(msgCoordinateInvalid)
			continue
		}
		if err := validator.GetValidator().Var(value, validator.CoordinateTag); err != nil {
			p.Println(msgCoordinateRange)
			continue
		}

		return value, nil
	}
}

// IsToken reports whether text equals one of tokens, ignoring case.
func IsToken(text string, tokens ...string) bool {
	text = strings.TrimSpace(text)
	for _, token := range tokens {
		if strings.EqualFold(text, token) {
			return true
		}
	}
	return false
}

// scan reads whole lines regardless of length; an unterminated final line is
// still delivered.
func (p *Prompter) scan() {
	defer close(p.lines)
	for {
		line, err := p.reader.ReadString('\n')
		if line != "" {
			p.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.scanErr = err
			}
			return
		}
	}
}
