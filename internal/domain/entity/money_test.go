package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

func TestParseMoney(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100.00"},
			{"0.01", "0.01"},
			{"1", "1.00"},
			{"1.5", "1.50"},
			{" 500000 ", "500000.00"},
			{"-20.25", "-20.25"},
			{"999999999999999999.99", "999999999999999999.99"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				m, err := ParseMoney(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, m.String())
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"1.234", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"₹100", "Currency symbol"},
			{"1000000000000000000", "Exceeds column precision"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseMoney(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestValidateAmount(t *testing.T) {
	m, err := ValidateAmount(decimal.RequireFromString("2000"))
	require.NoError(t, err)
	assert.Equal(t, "2000.00", m.String())

	for _, input := range []string{"0", "0.00", "-1", "10.005"} {
		t.Run(input, func(t *testing.T) {
			_, err := ValidateAmount(decimal.RequireFromString(input))
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := MustMoney("501000")
	b := MustMoney("2000")

	assert.Equal(t, "499000.00", a.Sub(b).String())
	assert.Equal(t, "503000.00", a.Add(b).String())
	assert.True(t, b.LessThan(a))
	assert.True(t, a.GreaterThanOrEqual(a))
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, Zero.IsZero())
	assert.True(t, MoneyFromDecimal(decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2))).Equal(MustMoney("0.30")))
}
