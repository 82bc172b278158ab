package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
)

var (
	oneHundred = decimal.NewFromInt(100)
	maxCents   = decimal.NewFromInt(math.MaxInt64)
)

// ParseAmountToCents parses a major-unit decimal string (e.g. "10.50") into
// minor units. The amount must be strictly positive and carry at most two
// fractional digits; anything else fails with ErrInvalidAmount.
func ParseAmountToCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, amount)
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidAmount)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("%w: at most two decimal places allowed", apperrors.ErrInvalidAmount)
	}
	cents := d.Mul(oneHundred)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: at most two decimal places allowed", apperrors.ErrInvalidAmount)
	}
	// IntPart silently truncates past int64 range
	if cents.GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: amount exceeds the supported range", apperrors.ErrInvalidAmount)
	}
	return cents.IntPart(), nil
}

// MajorUnitsToCents converts a major-unit price (as reported by the quote
// provider) into minor units, rounding half-up to the nearest cent.
func MajorUnitsToCents(major float64) int64 {
	return decimal.NewFromFloat(major).Mul(oneHundred).Round(0).IntPart()
}

// CentsToMajorString renders minor units as a major-unit string with exactly
// two decimal places. Used only at presentation boundaries.
func CentsToMajorString(cents int64) string {
	return decimal.NewFromInt(cents).Div(oneHundred).StringFixed(2)
}
