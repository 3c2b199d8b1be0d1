// Package money parses and formats the decimal amounts handled by the ledger.
//
// Amounts are shopspring decimals. Display is always rounded to two places and
// prefixed with a currency symbol, e.g. "R$ 150.00".
package money

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "R$"

// DisplayPlaces is the number of decimal places used for display.
const DisplayPlaces = 2

const (
	// MaxIntegerDigits bounds the digits before the decimal point.
	MaxIntegerDigits = 30
	// MaxScale bounds the digits after the decimal point.
	MaxScale = 30
)

// Parse converts user-entered text into a decimal amount.
// Surrounding spaces are ignored and a single comma is accepted as the
// decimal separator ("12,50"). Empty or non-numeric text yields
// common.ErrInvalidAmount, as does an amount with more than MaxIntegerDigits
// integer digits or MaxScale fractional digits once any exponent is applied.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount: %w", common.ErrInvalidAmount)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %q: %w", s, common.ErrInvalidAmount)
	}
	exp := int64(d.Exponent())
	if int64(d.NumDigits())+exp > MaxIntegerDigits || -exp > MaxScale {
		return decimal.Zero, fmt.Errorf("amount %q out of range: %w", s, common.ErrInvalidAmount)
	}
	return d, nil
}

// Format renders d as "<symbol> <amount>" with two decimal places.
func Format(symbol string, d decimal.Decimal) string {
	return symbol + " " + d.StringFixed(DisplayPlaces)
}
