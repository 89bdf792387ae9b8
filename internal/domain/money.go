package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money wraps a decimal amount parsed from the legacy textual price
// columns. All comparisons and totals go through Money so statistics
// never accumulate floating-point drift.
type Money struct {
	amount decimal.Decimal
}

// ParseMoney parses a textual price. Negative amounts are rejected;
// prices in the store are always non-negative decimals.
func ParseMoney(text string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return Money{}, fmt.Errorf("parse price %q: %w", text, err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("price %q is negative", text)
	}
	return Money{amount: d}, nil
}

// Mul multiplies the amount by an integer quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

func (m Money) GreaterThan(o Money) bool { return m.amount.GreaterThan(o.amount) }

func (m Money) LessThan(o Money) bool { return m.amount.LessThan(o.amount) }

func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Storage renders the canonical two-decimal text written back to the
// legacy price column.
func (m Money) Storage() string { return m.amount.StringFixed(2) }

// EUR renders the amount for console tables.
func (m Money) EUR() string { return m.amount.StringFixed(2) + " EUR" }
