package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of decimal places an amount may carry.
	MoneyScale = 2
	// MoneyDigits is the total number of digits stored for an amount.
	MoneyDigits = 14
)

// maxMoney is the first amount that no longer fits MoneyDigits digits.
var maxMoney = decimal.New(1, MoneyDigits-MoneyScale)

// Money is a non-negative amount in the service currency, in cents precision,
// below 10^12.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney rejects negative amounts, amounts with sub-cent digits and
// amounts too large to store.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{amount: amount}
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals; it panics on bad input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies the amount by a quantity; negative quantities count as zero.
func (m Money) Times(quantity int64) Money {
	if quantity <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(quantity))}
}

// Validate checks the amount is within [0, 10^12) and has at most
// MoneyScale decimal places. Sums and products are not checked when
// computed, so aggregates validate their totals with it.
func (m Money) Validate() error {
	if m.amount.IsNegative() || m.amount.GreaterThanOrEqual(maxMoney) {
		return errs.NewValueIsOutOfRangeError("amount", m.amount.String(), 0, maxMoney.String())
	}
	if !m.amount.Equal(m.amount.Truncate(MoneyScale)) {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", m.amount.String(), MoneyScale))
	}
	return nil
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
