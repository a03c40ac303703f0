package domain

// ExpectedReturn holds the annual rate of return, in percent, for each contribution bucket
type ExpectedReturn struct {
	MutualFunds float64 `json:"mutualFunds" yaml:"mutual_funds"`
	FD          float64 `json:"fd" yaml:"fd"`
	RD          float64 `json:"rd" yaml:"rd"`
}

// SchemeAllocation records a government scheme contribution that has already been
// merged into one of the three monthly buckets
type SchemeAllocation struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Type   string  `json:"type" yaml:"type"`
	Amount float64 `json:"amount" yaml:"amount"`
	Rate   float64 `json:"rate" yaml:"rate"`
}

// RetirementInput is the full set of assumptions for a single retirement projection.
// Monetary amounts are in today's currency, rates are annual percentages.
type RetirementInput struct {
	CurrentAge     int `json:"currentAge" yaml:"current_age"`
	RetirementAge  int `json:"retirementAge" yaml:"retirement_age"`
	LifeExpectancy int `json:"lifeExpectancy" yaml:"life_expectancy"`

	CurrentSavings float64 `json:"currentSavings" yaml:"current_savings"`
	MonthlySIP     float64 `json:"monthlySIP" yaml:"monthly_sip"`
	MonthlyFD      float64 `json:"monthlyFD" yaml:"monthly_fd"`
	MonthlyRD      float64 `json:"monthlyRD" yaml:"monthly_rd"`

	ExpectedReturn ExpectedReturn `json:"expectedReturn" yaml:"expected_return"`
	InflationRate  float64        `json:"inflationRate" yaml:"inflation_rate"`

	MonthlyExpenseAfterRetirement float64 `json:"monthlyExpenseAfterRetirement" yaml:"monthly_expense_after_retirement"`

	// Schemes is informational only; the amounts are already part of the monthly buckets.
	Schemes []SchemeAllocation `json:"schemes,omitempty" yaml:"schemes,omitempty"`
}

// YearsToRetirement returns the accumulation horizon in whole years
func (in RetirementInput) YearsToRetirement() int {
	return in.RetirementAge - in.CurrentAge
}

// YearsInRetirement returns the drawdown horizon in whole years
func (in RetirementInput) YearsInRetirement() int {
	return in.LifeExpectancy - in.RetirementAge
}

// TotalMonthlyContribution sums the three recurring buckets
func (in RetirementInput) TotalMonthlyContribution() float64 {
	return in.MonthlySIP + in.MonthlyFD + in.MonthlyRD
}

// Breakdown splits the achieved corpus into its four sources
type Breakdown struct {
	MutualFunds    float64 `json:"mutualFunds" yaml:"mutual_funds"`
	FD             float64 `json:"fd" yaml:"fd"`
	RD             float64 `json:"rd" yaml:"rd"`
	CurrentSavings float64 `json:"currentSavings" yaml:"current_savings"`
}

// Total returns the sum of all components
func (b Breakdown) Total() float64 {
	return b.MutualFunds + b.FD + b.RD + b.CurrentSavings
}

// YearlyProjection is the running value of each bucket after a number of elapsed years.
// Total includes the grown current savings, which is also exposed as CurrentSavings.
type YearlyProjection struct {
	Year           int     `json:"year" yaml:"year"`
	Age            int     `json:"age" yaml:"age"`
	MutualFunds    float64 `json:"mutualFunds" yaml:"mutual_funds"`
	FD             float64 `json:"fd" yaml:"fd"`
	RD             float64 `json:"rd" yaml:"rd"`
	CurrentSavings float64 `json:"currentSavings" yaml:"current_savings"`
	Total          float64 `json:"total" yaml:"total"`
}

// RetirementOutput is the computed report for a RetirementInput
type RetirementOutput struct {
	RequiredCorpus   float64            `json:"requiredCorpus" yaml:"required_corpus"`
	AchievedCorpus   float64            `json:"achievedCorpus" yaml:"achieved_corpus"`
	Breakdown        Breakdown          `json:"breakdown" yaml:"breakdown"`
	YearlyProjection []YearlyProjection `json:"yearlyProjection" yaml:"yearly_projection"`
	IsGoalAchievable bool               `json:"isGoalAchievable" yaml:"is_goal_achievable"`
	Shortfall        float64            `json:"shortfall" yaml:"shortfall"`
}

// FinalYear returns the last projection row, or false for an empty projection
func (out *RetirementOutput) FinalYear() (YearlyProjection, bool) {
	if out == nil || len(out.YearlyProjection) == 0 {
		return YearlyProjection{}, false
	}
	return out.YearlyProjection[len(out.YearlyProjection)-1], true
}

// Surplus returns how far the achieved corpus exceeds the requirement (zero when short)
func (out *RetirementOutput) Surplus() float64 {
	if out.AchievedCorpus > out.RequiredCorpus {
		return out.AchievedCorpus - out.RequiredCorpus
	}
	return 0
}
