package helpers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OnlyDigits strips everything but digits from a CPF/phone string.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Percentage returns pct% of value, rounded to 2 decimal places.
func Percentage(pct, value float64) float64 {
	result := decimal.NewFromFloat(value).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	f, _ := result.Float64()
	return f
}
