package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/futurefunds/retirement-planner/internal/domain"
)

// ErrInvalidInput is returned for negative or non-finite amounts and rates.
var ErrInvalidInput = errors.New("invalid retirement input")

// RetirementCalculator orchestrates the corpus projection. It holds no per-call state
// and is safe for concurrent use.
type RetirementCalculator struct {
	Logger Logger
}

// NewRetirementCalculator creates a calculator with a no-op logger
func NewRetirementCalculator() *RetirementCalculator {
	return &RetirementCalculator{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculator. If nil is provided, a no-op logger is used.
func (rc *RetirementCalculator) SetLogger(l Logger) {
	if l == nil {
		rc.Logger = NopLogger{}
		return
	}
	rc.Logger = l
}

// Calculate projects the corpus achieved by the contribution plan in input and compares
// it to the corpus required for retirement. baseYear is the calendar year of the first
// projection row. Age ordering is the caller's responsibility.
func (rc *RetirementCalculator) Calculate(input domain.RetirementInput, baseYear int) (*domain.RetirementOutput, error) {
	if err := CheckAmounts(input); err != nil {
		return nil, err
	}

	yearsToRetirement := float64(input.YearsToRetirement())
	yearsInRetirement := float64(input.YearsInRetirement())

	mutualFundsFV := SIPFutureValue(input.MonthlySIP, input.ExpectedReturn.MutualFunds, yearsToRetirement)
	fdFV := SIPFutureValue(input.MonthlyFD, input.ExpectedReturn.FD, yearsToRetirement)
	rdFV := SIPFutureValue(input.MonthlyRD, input.ExpectedReturn.RD, yearsToRetirement)
	currentSavingsFV := LumpsumFutureValue(input.CurrentSavings, input.ExpectedReturn.MutualFunds, yearsToRetirement)

	achievedCorpus := mutualFundsFV + fdFV + rdFV + currentSavingsFV
	requiredCorpus := RequiredCorpus(input.MonthlyExpenseAfterRetirement, yearsInRetirement, input.InflationRate)

	out := &domain.RetirementOutput{
		RequiredCorpus: requiredCorpus,
		AchievedCorpus: achievedCorpus,
		Breakdown: domain.Breakdown{
			MutualFunds:    mutualFundsFV,
			FD:             fdFV,
			RD:             rdFV,
			CurrentSavings: currentSavingsFV,
		},
		YearlyProjection: BuildYearlyProjection(input, baseYear),
		IsGoalAchievable: achievedCorpus >= requiredCorpus,
		Shortfall:        math.Max(0, requiredCorpus-achievedCorpus),
	}

	rc.logger().Debugf("retirement projection: years_to_retirement=%d years_in_retirement=%d required=%.2f achieved=%.2f achievable=%t",
		input.YearsToRetirement(), input.YearsInRetirement(), requiredCorpus, achievedCorpus, out.IsGoalAchievable)

	return out, nil
}

func (rc *RetirementCalculator) logger() Logger {
	if rc == nil || rc.Logger == nil {
		return NopLogger{}
	}
	return rc.Logger
}

// CheckAmounts rejects negative or non-finite monetary amounts and rates
func CheckAmounts(input domain.RetirementInput) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"currentSavings", input.CurrentSavings},
		{"monthlySIP", input.MonthlySIP},
		{"monthlyFD", input.MonthlyFD},
		{"monthlyRD", input.MonthlyRD},
		{"expectedReturn.mutualFunds", input.ExpectedReturn.MutualFunds},
		{"expectedReturn.fd", input.ExpectedReturn.FD},
		{"expectedReturn.rd", input.ExpectedReturn.RD},
		{"inflationRate", input.InflationRate},
		{"monthlyExpenseAfterRetirement", input.MonthlyExpenseAfterRetirement},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative, got %g", ErrInvalidInput, f.name, f.value)
		}
	}
	return nil
}
