package calculation

import "github.com/futurefunds/retirement-planner/internal/domain"

// BuildYearlyProjection returns one row per elapsed year from 0 to the years to
// retirement inclusive. baseYear is the calendar year of row 0.
func BuildYearlyProjection(input domain.RetirementInput, baseYear int) []domain.YearlyProjection {
	yearsToRetirement := input.YearsToRetirement()
	if yearsToRetirement < 0 {
		return []domain.YearlyProjection{}
	}

	projection := make([]domain.YearlyProjection, 0, yearsToRetirement+1)
	for i := 0; i <= yearsToRetirement; i++ {
		elapsed := float64(i)

		mfValue := SIPFutureValue(input.MonthlySIP, input.ExpectedReturn.MutualFunds, elapsed)
		fdValue := SIPFutureValue(input.MonthlyFD, input.ExpectedReturn.FD, elapsed)
		rdValue := SIPFutureValue(input.MonthlyRD, input.ExpectedReturn.RD, elapsed)
		savingsValue := LumpsumFutureValue(input.CurrentSavings, input.ExpectedReturn.MutualFunds, elapsed)

		projection = append(projection, domain.YearlyProjection{
			Year:           baseYear + i,
			Age:            input.CurrentAge + i,
			MutualFunds:    mfValue,
			FD:             fdValue,
			RD:             rdValue,
			CurrentSavings: savingsValue,
			Total:          mfValue + fdValue + rdValue + savingsValue,
		})
	}
	return projection
}
