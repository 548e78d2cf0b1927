package kernel

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNegative is the cause attached when a negative amount is supplied.
	ErrMoneyIsNegative = errors.New("amount must not be negative")
	// ErrMoneyTooPrecise is the cause attached when an amount has fractions of a cent.
	ErrMoneyTooPrecise = fmt.Errorf("amount must have at most %d decimal places", MoneyScale)
	// ErrMoneyTooLarge is the cause attached when an amount does not fit the stored numeric(19,2).
	ErrMoneyTooLarge = errors.New("amount must be below 10^17")
)

// MoneyScale is the number of decimal places an amount may carry.
const MoneyScale = 2

var moneyLimit = decimal.New(1, 17)

// Money is a non-negative decimal amount. Two amounts are equal when their decimal
// values are equal, regardless of scale: 1000 equals 1000.00.
type Money struct {
	amount decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{amount: decimal.Zero}

// NewMoney validates and wraps amount.
//
// Parameters:
//   - amount: non-negative, at most MoneyScale decimal places and below 10^17,
//     so that storage keeps it exactly.
//
// Returns:
//   - Money: the wrapped amount.
//   - error: ValueIsInvalidError with ErrMoneyIsNegative, ErrMoneyTooPrecise or
//     ErrMoneyTooLarge as cause.
func NewMoney(amount decimal.Decimal) (Money, error) {
	switch {
	case amount.IsNegative():
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", ErrMoneyIsNegative)
	case !amount.Equal(amount.Truncate(MoneyScale)):
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", ErrMoneyTooPrecise)
	case amount.GreaterThanOrEqual(moneyLimit):
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", ErrMoneyTooLarge)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal literal such as "16000" or "12.50".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(amount)
}

// MustMoney is NewMoneyFromString for literals known to be valid.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the wrapped amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual compares amounts exactly, without tolerance.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a line-item quantity. The result may be negative
// for the quantities tolerated on dine-in orders.
func (m Money) Times(quantity int64) decimal.Decimal {
	return m.amount.Mul(decimal.NewFromInt(quantity))
}

func (m Money) String() string {
	return m.amount.String()
}
