// Package money implements the register's currency arithmetic on integer
// minor units, using decimals only at the parse/format boundary.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is a non-fractional amount of currency minor units.
type Cents int64

var basisPointDivisor = decimal.NewFromInt(10000)

// Decimal returns the major-unit decimal value, e.g. 324 -> 3.24.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Shift(-2)
}

// String renders the amount with two fractional digits.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Line multiplies a unit price by a quantity.
func Line(unit Cents, qty int) Cents {
	return unit * Cents(qty)
}

// Tax computes subtotal x rate (in basis points), rounded half-up to the
// nearest cent.
func Tax(subtotal Cents, rateBps int64) Cents {
	tax := decimal.NewFromInt(int64(subtotal)).
		Mul(decimal.NewFromInt(rateBps)).
		DivRound(basisPointDivisor, 0)
	return Cents(tax.IntPart())
}

// Parse converts a user-entered amount ("5", "5.2", "5.00") into cents.
// Negative amounts and more than two fractional digits are rejected.
func Parse(value string) (Cents, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not numeric", value)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", value)
	}
	if !d.Equal(d.Round(2)) {
		return 0, fmt.Errorf("amount %q has sub-cent precision", value)
	}
	return Cents(d.Shift(2).IntPart()), nil
}
