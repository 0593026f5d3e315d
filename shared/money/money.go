package money

import (
	"fmt"
)

// Amount is a monetary value in the currency's minor unit (e.g. cents).
// Integer arithmetic keeps totals exact; floating point is never used for
// prices anywhere in the service.
type Amount int64

func (a Amount) Int64() int64 {
	return int64(a)
}

// MulUnits multiplies a unit rate by a unit count (nights for properties).
func (a Amount) MulUnits(units int) Amount {
	return a * Amount(units)
}

// Money pairs an amount with its ISO 4217 currency code.
type Money struct {
	Amount   Amount `db:"-"        json:"amount"`
	Currency string `db:"currency" json:"currency"`
}

func New(amount int64, currency string) Money {
	return Money{
		Amount:   Amount(amount),
		Currency: currency,
	}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
