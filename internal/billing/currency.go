package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Converter converts amounts between supported currencies using a fixed
// USD-based rate table. Pure: same inputs, same output, no side effects.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

type converterImpl struct {
	// 1 USD buys rates[code] units of code.
	rates map[string]decimal.Decimal
}

func NewConverter() Converter {
	return &converterImpl{
		rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"GBP": decimal.RequireFromString("0.78"),
			"EUR": decimal.RequireFromString("0.90"),
		},
	}
}

// SupportedCurrencies returns the currency codes the converter accepts.
func SupportedCurrencies() []string {
	return []string{"USD", "GBP", "EUR"}
}

func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies() {
		if c == code {
			return true
		}
	}
	return false
}

func (c *converterImpl) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rateFrom, ok := c.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	rateTo, ok := c.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	if from == to {
		return amount, nil
	}

	return amount.Mul(rateTo).DivRound(rateFrom, 2), nil
}
