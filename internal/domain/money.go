package domain

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a currency amount in cents. Amounts are stored and summed as
// integers so concurrent aggregation never loses sub-cent precision.
type Money int64

// MoneyFromFloat converts a decimal amount in currency units to Money.
// Anything finer than two decimal places is rejected.
func MoneyFromFloat(units float64) (Money, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return 0, fmt.Errorf("amount is not a finite number")
	}
	cents := units * 100
	rounded := math.Round(cents)
	if math.Abs(cents-rounded) > 1e-6 {
		return 0, fmt.Errorf("amount has more than two decimal places")
	}
	return Money(rounded), nil
}

// Float returns the amount in currency units.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String renders the amount as a plain decimal, e.g. "2500" or "99.90".
func (m Money) String() string {
	units := int64(m) / 100
	cents := int64(m) % 100
	if cents < 0 {
		cents = -cents
	}
	if cents == 0 {
		return strconv.FormatInt(units, 10)
	}
	sign := ""
	if m < 0 && units == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, units, cents)
}

var moneyPrinter = message.NewPrinter(language.English)

// Formatted renders the amount for display, e.g. "$2,500.00".
func (m Money) Formatted() string {
	return moneyPrinter.Sprintf("$%.2f", m.Float())
}

// MarshalJSON emits the amount as a JSON number in currency units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number in currency units.
func (m *Money) UnmarshalJSON(data []byte) error {
	units, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("amount must be a number")
	}
	parsed, err := MoneyFromFloat(units)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
