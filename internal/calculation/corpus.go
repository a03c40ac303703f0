package calculation

import "math"

// RequiredCorpus estimates the corpus needed to fund monthlyExpense (today's money) for
// yearsInRetirement years. The expense is inflated over half the retirement horizon as
// a stand-in for the average inflated expense, then multiplied out without discounting.
func RequiredCorpus(monthlyExpense, yearsInRetirement, inflationRate float64) float64 {
	adjustedMonthlyExpense := monthlyExpense * math.Pow(1+inflationRate/100, yearsInRetirement/2)
	return adjustedMonthlyExpense * 12 * yearsInRetirement
}
