package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a non-negative decimal string.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, raw)
	}

	return amount, nil
}

// ParsePositiveAmount is ParseAmount that also rejects zero.
func ParsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return amount, nil
}
