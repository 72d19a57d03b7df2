package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RupeesToPaise parses a rupee amount ("150", "99.50") into paise. Anything
// finer than a paisa is rejected rather than rounded.
func RupeesToPaise(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	paise := d.Mul(hundred)
	if !paise.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-paisa precision", s)
	}
	return paise.IntPart(), nil
}

func PaiseToRupees(paise int64) string {
	return decimal.NewFromInt(paise).Div(hundred).StringFixed(2)
}

// ParseAmount resolves a request amount that may arrive either as raw paise
// or as a rupee string. The rupee form takes precedence when both are set.
func ParseAmount(paise int64, rupees string) (int64, error) {
	if rupees != "" {
		return RupeesToPaise(rupees)
	}
	return paise, nil
}
