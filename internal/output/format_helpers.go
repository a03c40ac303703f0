package output

import (
	"math"

	money "github.com/futurefunds/retirement-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

const notAvailable = "n/a"

// FormatCurrency formats an amount in rupees with grouping and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string {
	if !money.Finite(amount) {
		return formatNonFinite(amount)
	}
	return money.NewMoney(amount).Format()
}

// FormatCompact formats large amounts in lakh / crore notation.
func FormatCompact(amount float64) string {
	if !money.Finite(amount) {
		return formatNonFinite(amount)
	}
	return money.NewMoney(amount).Compact()
}

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(pct float64) string {
	if !money.Finite(pct) {
		return formatNonFinite(pct)
	}
	return decimal.NewFromFloat(pct).StringFixed(2) + "%"
}

// FormatAmount formats an amount as a plain fixed-point number for machine-readable output.
func FormatAmount(amount float64) string {
	if !money.Finite(amount) {
		return formatNonFinite(amount)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatSum formats the total of amounts after rounding each to paise, so a printed
// total agrees with the printed parts.
func FormatSum(amounts ...float64) string {
	parts := make([]money.Money, 0, len(amounts))
	total := 0.0
	for _, a := range amounts {
		total += a
		parts = append(parts, money.NewMoney(a).Round())
	}
	if !money.Finite(total) {
		return formatNonFinite(total)
	}
	return money.Sum(parts...).Format()
}

// FormatDifference formats a - b after rounding both to paise.
func FormatDifference(a, b float64) string {
	if !money.Finite(a) || !money.Finite(b) {
		return formatNonFinite(a - b)
	}
	return money.NewMoney(a).Round().Sub(money.NewMoney(b).Round()).Format()
}

func formatNonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return notAvailable
}

func intToString(i int) string {
	return decimal.NewFromInt(int64(i)).String()
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
