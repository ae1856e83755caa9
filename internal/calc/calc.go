// Package calc implements Korean personal finance calculators. All money
// amounts are in won.
package calc

import (
	"errors"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// truncate10 drops the units digit, as payroll and tax amounts are quoted in tens of won.
func truncate10(v float64) int64 {
	return int64(math.Floor(v/10)) * 10
}

func roundWon(v float64) int64 {
	return int64(math.Round(v))
}
