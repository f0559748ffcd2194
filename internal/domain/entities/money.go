package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount + currency pair.
//
// Invariants:
//   - Amount is rounded to 2 decimal places, half away from zero.
//   - Currency is a 3-character non-blank code, normalized to upper case.
//
// Arithmetic never mutates; every operation returns a fresh value.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if strings.TrimSpace(currency) == "" || len(currency) != 3 {
		return Money{}, fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidArgument)
	}
	return Money{
		Amount:   amount.Round(2),
		Currency: strings.ToUpper(currency),
	}, nil
}

// NewMoneyFromFloat is a convenience for boundary layers that receive
// amounts as float64 (JSON payloads).
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ZeroMoney returns 0.00 in the given currency. The currency is assumed to
// be pre-validated (it always comes from an already-constructed aggregate).
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero.Round(2), Currency: strings.ToUpper(currency)}
}

func (m Money) Add(other Money) (Money, error) {
	if !strings.EqualFold(m.Currency, other.Currency) {
		return Money{}, ErrCurrencyMismatch
	}
	return NewMoney(m.Amount.Add(other.Amount), m.Currency)
}

func (m Money) Subtract(other Money) (Money, error) {
	if !strings.EqualFold(m.Currency, other.Currency) {
		return Money{}, ErrCurrencyMismatch
	}
	return NewMoney(m.Amount.Sub(other.Amount), m.Currency)
}

// Equal is exact value equality: same amount, same currency.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}
