package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a plain-text summary followed by the yearly projection table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Output == nil {
		return nil, errNoOutput
	}
	in, out := r.Input, r.Output
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if r.Name != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", r.Name)
	}
	fmt.Fprintf(&buf, "Age %d, retiring at %d, planning to %d (%d years to retirement, %d in retirement)\n",
		in.CurrentAge, in.RetirementAge, in.LifeExpectancy, in.YearsToRetirement(), in.YearsInRetirement())
	ga := AnalyzeGoal(in, out)
	fmt.Fprintf(&buf, "Contributions: %s per month (%s per year)\n",
		FormatCurrency(ga.MonthlyContribution), FormatCurrency(ga.AnnualContribution))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Required Corpus:  %s (%s)\n", FormatCurrency(out.RequiredCorpus), FormatCompact(out.RequiredCorpus))
	fmt.Fprintf(&buf, "Achieved Corpus:  %s (%s)\n", FormatCurrency(out.AchievedCorpus), FormatCompact(out.AchievedCorpus))
	if out.IsGoalAchievable {
		fmt.Fprintf(&buf, "Status:           ON TRACK (surplus %s)\n", FormatDifference(out.AchievedCorpus, out.RequiredCorpus))
	} else {
		fmt.Fprintf(&buf, "Status:           SHORTFALL %s\n", FormatCurrency(out.Shortfall))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Breakdown at retirement:")
	fmt.Fprintf(&buf, "  Mutual Funds:    %s\n", FormatCurrency(out.Breakdown.MutualFunds))
	fmt.Fprintf(&buf, "  Fixed Deposit:   %s\n", FormatCurrency(out.Breakdown.FD))
	fmt.Fprintf(&buf, "  Recurring Dep.:  %s\n", FormatCurrency(out.Breakdown.RD))
	fmt.Fprintf(&buf, "  Current Savings: %s\n", FormatCurrency(out.Breakdown.CurrentSavings))
	fmt.Fprintf(&buf, "  Total:           %s\n", FormatSum(out.Breakdown.MutualFunds, out.Breakdown.FD,
		out.Breakdown.RD, out.Breakdown.CurrentSavings))

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Funded ratio: %s\n", FormatPercentage(ga.FundedRatio))
	if ga.ExtraMonthlySIP > 0 {
		fmt.Fprintf(&buf, "Extra monthly SIP needed: %s\n", FormatCurrency(ga.ExtraMonthlySIP))
	}
	if ga.GoalMetYear != 0 {
		fmt.Fprintf(&buf, "Goal first met in %d (age %d)\n", ga.GoalMetYear, ga.GoalMetAge)
	}

	if len(out.YearlyProjection) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%-6s %-4s %16s %16s %16s %16s %16s\n", "Year", "Age", "Mutual Funds", "FD", "RD", "Savings", "Total")
		for _, row := range out.YearlyProjection {
			fmt.Fprintf(&buf, "%-6d %-4d %16s %16s %16s %16s %16s\n", row.Year, row.Age,
				FormatCompact(row.MutualFunds), FormatCompact(row.FD), FormatCompact(row.RD),
				FormatCompact(row.CurrentSavings), FormatCompact(row.Total))
		}
	}
	return buf.Bytes(), nil
}
