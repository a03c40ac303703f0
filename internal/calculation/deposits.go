package calculation

import "math"

// DefaultCompoundingFrequency is quarterly, the usual convention for Indian bank deposits.
const DefaultCompoundingFrequency = 4

// FDMaturity returns the maturity value of a fixed deposit compounded
// compoundingFrequency times per year. A non-positive frequency means quarterly.
func FDMaturity(principal, annualRate, years float64, compoundingFrequency int) float64 {
	if compoundingFrequency <= 0 {
		compoundingFrequency = DefaultCompoundingFrequency
	}
	freq := float64(compoundingFrequency)
	rate := annualRate / 100
	return principal * math.Pow(1+rate/freq, freq*years)
}

// RDMaturity returns the maturity value of a recurring deposit. Deposits are grouped
// into quarters of three and each quarter's deposits compound quarterly until maturity.
// The tenor in quarters may be fractional, in which case every exponent carries the
// fractional remainder and the trailing partial quarter adds no deposit.
func RDMaturity(monthlyDeposit, annualRate float64, months int) float64 {
	quarterlyRate := annualRate / 4 / 100
	quarters := float64(months) / 3

	maturity := 0.0
	for i := 1; float64(i) <= quarters; i++ {
		maturity += monthlyDeposit * 3 * math.Pow(1+quarterlyRate, quarters-float64(i)+1)
	}
	return maturity
}

// RDDeposited returns the amount paid into a recurring deposit that RDMaturity credits:
// three deposits for every whole quarter of the tenor.
func RDDeposited(monthlyDeposit float64, months int) float64 {
	return monthlyDeposit * 3 * float64(months/3)
}
