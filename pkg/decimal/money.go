package decimal

import (
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the ISO code used when displaying amounts
const CurrencyCode = gomoney.INR

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// Money represents a rupee amount with fixed decimal precision for display and totals.
// Projection math stays in float64; Money is built from its results.
type Money struct {
	decimal.Decimal
}

// Finite reports whether value can be represented as Money
func Finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// NewMoney creates a new Money instance from a float64. Non-finite values become zero;
// check Finite first when the distinction matters.
func NewMoney(value float64) Money {
	if !Finite(value) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the money amount to paise
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

func (m Money) Add(other Money) Money { return Money{m.Decimal.Add(other.Decimal)} }
func (m Money) Sub(other Money) Money { return Money{m.Decimal.Sub(other.Decimal)} }

// Sum adds any number of amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in rupees with Indian digit grouping, e.g. ₹12,34,567.50.
// Works on the decimal digits directly, so amounts beyond the int64 paise range keep
// their value.
func (m Money) Format() string {
	c := gomoney.GetCurrency(CurrencyCode)
	rounded := m.Decimal.Round(int32(c.Fraction))
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(c.Fraction)), ".")
	out := c.Grapheme + groupIndian(whole, c.Thousand)
	if frac != "" {
		out += c.Decimal + frac
	}
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}

// groupIndian separates the last three digits, then every two: 1,23,45,678.
func groupIndian(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	lead := len(head) % 2
	if lead == 0 {
		lead = 2
	}
	var b strings.Builder
	b.WriteString(head[:lead])
	for i := lead; i < len(head); i += 2 {
		b.WriteString(sep)
		b.WriteString(head[i : i+2])
	}
	b.WriteString(sep)
	b.WriteString(tail)
	return b.String()
}

// Compact renders large amounts in lakh/crore notation, e.g. ₹6.01 Cr
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	var scaled decimal.Decimal
	var unit string
	switch {
	case abs.GreaterThanOrEqual(crore):
		scaled, unit = m.Decimal.Div(crore), " Cr"
	case abs.GreaterThanOrEqual(lakh):
		scaled, unit = m.Decimal.Div(lakh), " L"
	default:
		return m.Round().Format()
	}
	grapheme := gomoney.GetCurrency(CurrencyCode).Grapheme
	if scaled.IsNegative() {
		return "-" + grapheme + scaled.Abs().StringFixed(2) + unit
	}
	return grapheme + scaled.StringFixed(2) + unit
}
