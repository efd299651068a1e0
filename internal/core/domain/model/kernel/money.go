package kernel

import (
	"errors"
	"fmt"

	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount. All prices are in Indian rupees.
const CurrencySymbol = "₹"

// PaisePlaces is the number of decimal places an amount is kept to.
const PaisePlaces = 2

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or NewMoneyFromInt")
	// ErrMoneyIsNegative is returned when constructing Money from a negative amount.
	ErrMoneyIsNegative = errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must not be negative"))
)

// Money is a non-negative rupee amount. Cart totals and test prices may carry
// paise, so the amount is a decimal rather than an int.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates and wraps amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromInt is a shorthand for whole-rupee amounts.
func NewMoneyFromInt(rupees int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(rupees))
}

// NewMoneyFromFloat converts a JSON number. The value is rounded to paise.
func NewMoneyFromFloat(rupees float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(rupees).Round(PaisePlaces))
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts. Sums of non-negative amounts stay valid.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul scales the amount by a non-negative quantity.
func (m Money) Mul(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically, so 150 equals 150.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders whole rupees without decimals and fractional amounts with two places.
func (m Money) String() string {
	if m.amount.IsInteger() {
		return m.amount.String()
	}
	return m.amount.StringFixed(PaisePlaces)
}

// Format renders the amount with the rupee symbol, e.g. "₹150".
func (m Money) Format() string {
	return fmt.Sprintf("%s%s", CurrencySymbol, m.String())
}
