package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// maxMoney is the largest value that fits a numeric(20,2) column
var maxMoney = decimal.RequireFromString("999999999999999999.99")

// Money is a fixed-point amount in rupees with paise precision.
// The zero value is ₹0.00.
type Money struct {
	value decimal.Decimal
}

// Zero is ₹0.00
var Zero = Money{}

// NewMoney validates a decimal and wraps it.
// Negative values are allowed so that stored state can be represented faithfully;
// callers that need a positive amount use ValidateAmount.
func NewMoney(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return Money{}, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if d.Abs().GreaterThan(maxMoney) {
		return Money{}, fmt.Errorf("%w: %s exceeds the maximum supported amount", errs.ErrInvalidAmount, d.String())
	}
	return Money{value: d}, nil
}

// ParseMoney parses a decimal string such as "1000", "10.5" or "2300.00"
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return NewMoney(d)
}

// MustMoney is ParseMoney for constants and tests
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromDecimal wraps a value read back from the store, rounding to paise
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{value: d.Round(MaxDecimalPlaces)}
}

// ValidateAmount checks that an operation amount is strictly positive and well formed
func ValidateAmount(d decimal.Decimal) (Money, error) {
	m, err := NewMoney(d)
	if err != nil {
		return Money{}, err
	}
	if !m.IsPositive() {
		return Money{}, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	return m, nil
}

// fitsStore reports whether the value fits a numeric(20,2) column
func (m Money) fitsStore() bool { return m.value.Abs().LessThanOrEqual(maxMoney) }

// Decimal returns the underlying decimal value
func (m Money) Decimal() decimal.Decimal { return m.value }

// String renders the amount with exactly two decimal places
func (m Money) String() string { return m.value.StringFixed(MaxDecimalPlaces) }

func (m Money) Add(o Money) Money { return Money{value: m.value.Add(o.value)} }
func (m Money) Sub(o Money) Money { return Money{value: m.value.Sub(o.value)} }
func (m Money) Equal(o Money) bool { return m.value.Equal(o.value) }
func (m Money) LessThan(o Money) bool { return m.value.LessThan(o.value) }
func (m Money) GreaterThanOrEqual(o Money) bool { return m.value.GreaterThanOrEqual(o.value) }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) IsZero() bool { return m.value.IsZero() }
