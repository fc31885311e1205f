package checkbook

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Cents is a monetary amount in hundredths of a dollar.
type Cents int64

func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// ParseAmount converts user input such as "12.5" into Cents, rounding to the
// nearest cent.
func ParseAmount(s string) (Cents, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if math.Abs(f) > math.MaxInt64/100 {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	return Cents(math.Round(f * 100)), nil
}

// Checkbook tracks a running balance that starts at zero.
type Checkbook struct {
	balance Cents
}

func New() *Checkbook {
	return &Checkbook{}
}

func (c *Checkbook) Balance() Cents {
	return c.balance
}

func (c *Checkbook) Deposit(amount Cents) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	c.balance += amount
	return nil
}

// Withdraw leaves the balance unchanged when amount exceeds it.
func (c *Checkbook) Withdraw(amount Cents) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > c.balance {
		return ErrInsufficientFunds
	}
	c.balance -= amount
	return nil
}
