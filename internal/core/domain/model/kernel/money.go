package kernel

import (
	"fmt"
	"math"

	"storefront/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// Amounts are expressed in the store currency's major unit (e.g. 199.99).
//
// Money is immutable: arithmetic methods return new values and never mutate
// the receiver. The zero value is a valid zero amount, so Money can be
// embedded in aggregates restored from persistence without a guard flag.
//
// The single invariant is that an amount can never be negative. Operations
// that would produce a negative amount (Sub) return an error instead.
type Money struct {
	amount float64
}

// NewMoney creates a Money value from a raw amount.
// Returns an error if the amount is negative or not a finite number.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MustNewMoney creates a Money value and panics on invalid input.
// Intended for constants and tests only.
func MustNewMoney(amount float64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the raw amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("subtracting %v from %v yields a negative amount", other.amount, m.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount * float64(quantity)}
}

// Percent returns the given percentage of the amount (rate is 0..100).
func (m Money) Percent(rate float64) Money {
	return Money{amount: m.amount * rate / 100}
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if other.amount < m.amount {
		return other
	}
	return m
}

// GreaterOrEqual reports whether the amount is at least the other amount.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// Validate checks the Money invariant. A restored amount must be
// a finite, non-negative number.
func (m Money) Validate() error {
	if math.IsNaN(m.amount) || math.IsInf(m.amount, 0) || m.amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a valid monetary amount", m.amount))
	}
	return nil
}
