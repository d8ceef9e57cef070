package kernel

import (
	"fmt"

	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in the
// system's single settlement currency. It wraps shopspring/decimal so that
// amounts never suffer binary floating point drift, and it fixes the rounding
// policy used everywhere money is computed: two decimal places, half up.
//
// Money is immutable; arithmetic methods return new values. The zero value is
// a valid zero amount, so Money can be embedded in aggregates that start
// unpriced (a pre-alerted parcel has a zero cost until it is weighed).
//
// Example:
//
//	freight, _ := kernel.NewMoneyFromFloat(12.5)
//	base, _ := kernel.NewMoneyFromFloat(5)
//	total := base.Add(freight).Round()
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// Negative amounts are rejected. Intended for request boundaries; internal
// computation should stay in decimals.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by the given factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Round returns the amount rounded to two decimal places, half up.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(2)}
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// WithinCents reports whether the absolute difference between two amounts is
// at most the given number of cents. The invoice ledger uses this with one
// cent as the tolerance below which an amount correction is a no-op.
func (m Money) WithinCents(other Money, cents int64) bool {
	diff := m.amount.Sub(other.amount).Abs()
	tolerance := decimal.New(cents, -2)
	return diff.LessThanOrEqual(tolerance)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for presentation. Internal logic
// must not round-trip through this.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate reports whether the amount is a legal monetary value.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
