package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// displayPrinter groups digits with commas (1,234,567) the way the reports show amounts.
var displayPrinter = message.NewPrinter(language.English)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole drops the fractional part, truncating toward zero.
func (m Money) Whole() int64 {
	return m.Decimal.Truncate(0).IntPart()
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped returns the amount with two decimals and thousands separators.
func (m Money) Grouped() string {
	return displayPrinter.Sprintf("%.2f", m.Round().InexactFloat64())
}

// GroupedWhole returns the truncated amount with thousands separators.
func (m Money) GroupedWhole() string {
	return GroupInt(m.Whole())
}

// Format prefixes the grouped amount with a currency code.
func (m Money) Format(currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return m.Grouped()
	}
	return currency + " " + m.Grouped()
}

// GroupInt formats an integer with thousands separators.
func GroupInt(v int64) string {
	return displayPrinter.Sprintf("%d", v)
}
