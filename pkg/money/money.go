// Package money converts between the decimal-string amounts used at the
// API boundary and the int64 minor-unit (cent) amounts used everywhere
// else. Strings never reach the ledger and cents never reach the wire.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a string is not a well-formed decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// ToCents parses a decimal string into minor units, truncating (never
// rounding) anything past two fractional digits: "10.129" -> 1012.
// The sign is preserved; callers reject non-positive amounts themselves.
func ToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return d.Truncate(2).Mul(hundred).IntPart(), nil
}

// FromCents renders a minor-unit count as a fixed two-decimal string:
// 1050 -> "10.50".
func FromCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(hundred).StringFixed(2)
}
