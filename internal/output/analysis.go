package output

import (
	"math"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/domain"
	money "github.com/futurefunds/retirement-planner/pkg/decimal"
)

// GoalAnalysis summarises how far a projection is from its required corpus.
type GoalAnalysis struct {
	// FundedRatio is achieved / required, in percent. Zero when nothing is required.
	FundedRatio float64 `json:"fundedRatio"`
	// ExtraMonthlySIP is the additional monthly mutual-fund contribution that closes the
	// shortfall at the configured mutual-fund return. Zero when the goal is met or
	// when no accumulation years remain.
	ExtraMonthlySIP float64 `json:"extraMonthlySIP"`
	// GoalMetYear is the first projection year whose total reaches the required corpus,
	// or zero when no row does.
	GoalMetYear int `json:"goalMetYear,omitempty"`
	GoalMetAge  int `json:"goalMetAge,omitempty"`
	// MonthlyContribution is the recurring SIP, FD and RD outlay; AnnualContribution is
	// twelve times it.
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualContribution  float64 `json:"annualContribution"`
}

// AnalyzeGoal derives the goal analysis shown alongside every report.
// Extracted from the formatters so it can be unit tested in isolation.
func AnalyzeGoal(in domain.RetirementInput, out *domain.RetirementOutput) GoalAnalysis {
	var ga GoalAnalysis
	ga.MonthlyContribution = in.TotalMonthlyContribution()
	ga.AnnualContribution = money.NewMoney(ga.MonthlyContribution).Annual().InexactFloat64()
	if out == nil {
		return ga
	}
	if out.RequiredCorpus > 0 {
		ga.FundedRatio = out.AchievedCorpus / out.RequiredCorpus * 100
	}
	if out.Shortfall > 0 {
		ga.ExtraMonthlySIP = extraSIPFor(out.Shortfall, in.ExpectedReturn.MutualFunds, in.YearsToRetirement())
	}
	for _, row := range out.YearlyProjection {
		if row.Total >= out.RequiredCorpus {
			ga.GoalMetYear, ga.GoalMetAge = row.Year, row.Age
			break
		}
	}
	return ga
}

// extraSIPFor inverts the SIP future value: a unit monthly contribution grows to
// SIPFutureValue(1, rate, years), so the shortfall scales it linearly.
func extraSIPFor(shortfall, ratePercent float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	unit := calculation.SIPFutureValue(1, ratePercent, float64(years))
	if unit <= 0 || math.IsNaN(unit) {
		return 0
	}
	return shortfall / unit
}
