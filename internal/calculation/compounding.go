package calculation

import "math"

// SIPFutureValue returns the future value of a fixed monthly contribution made at the
// start of every month (annuity-due) for the given number of years.
// A zero rate degrades to simple accumulation. Years may be fractional.
func SIPFutureValue(monthlyAmount, annualRatePercent, years float64) float64 {
	monthlyRate := annualRatePercent / 12 / 100
	months := years * 12

	if monthlyRate == 0 {
		return monthlyAmount * months
	}

	return monthlyAmount * ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate) * (1 + monthlyRate)
}

// LumpsumFutureValue compounds principal annually at annualRatePercent for years
func LumpsumFutureValue(principal, annualRatePercent, years float64) float64 {
	return principal * math.Pow(1+annualRatePercent/100, years)
}
