package factorial

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxN bounds the recursion depth of Of.
const MaxN = 10000

var (
	ErrNegative = errors.New("factorial is undefined for negative numbers")
	ErrTooLarge = fmt.Errorf("factorial is limited to n <= %d", MaxN)
)

// Of returns n! computed recursively, with 0! = 1.
func Of(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n > MaxN {
		return nil, ErrTooLarge
	}
	return of(int64(n)), nil
}

func of(n int64) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(n), of(n-1))
}
