package output

import (
	"fmt"

	"github.com/futurefunds/retirement-planner/internal/domain"
)

// ModelNotes lists the fixed modelling conventions rendered in detailed outputs.
var ModelNotes = []string{
	"SIP, FD and RD contributions are made monthly at the start of each month (annuity-due)",
	"Returns compound monthly at one twelfth of the annual rate",
	"Retirement expenses are inflated to the midpoint of the retirement period",
	"Required corpus = annual expense at that midpoint x years in retirement (no post-retirement growth)",
}

// GenerateAssumptions creates the assumptions list from the actual input values
func GenerateAssumptions(in domain.RetirementInput) []string {
	list := []string{
		fmt.Sprintf("Mutual fund (SIP) return: %s annually", FormatPercentage(in.ExpectedReturn.MutualFunds)),
		fmt.Sprintf("Fixed deposit return: %s annually", FormatPercentage(in.ExpectedReturn.FD)),
		fmt.Sprintf("Recurring deposit return: %s annually", FormatPercentage(in.ExpectedReturn.RD)),
		fmt.Sprintf("Current savings grow at the mutual fund rate for %d years", max(in.YearsToRetirement(), 0)),
		fmt.Sprintf("Inflation: %s annually", FormatPercentage(in.InflationRate)),
		fmt.Sprintf("Retirement lasts %d years (age %d to %d)", in.YearsInRetirement(), in.RetirementAge, in.LifeExpectancy),
	}
	for _, s := range in.Schemes {
		list = append(list, fmt.Sprintf("Scheme %s (%s): %s per month at %s", s.Name, s.Type, FormatCurrency(s.Amount), FormatPercentage(s.Rate)))
	}
	return append(list, ModelNotes...)
}
