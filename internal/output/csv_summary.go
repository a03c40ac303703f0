package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer implements the summary CSV output (a single row per report).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(r *Report) ([]byte, error) {
	if r == nil || r.Output == nil {
		return nil, errNoOutput
	}
	in, out := r.Input, r.Output
	ga := AnalyzeGoal(in, out)
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "CurrentAge", "RetirementAge", "LifeExpectancy", "RequiredCorpus", "AchievedCorpus", "MutualFunds", "FD", "RD", "CurrentSavings", "IsGoalAchievable", "Shortfall", "FundedRatio", "ExtraMonthlySIP"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		r.Name,
		intToString(in.CurrentAge),
		intToString(in.RetirementAge),
		intToString(in.LifeExpectancy),
		FormatAmount(out.RequiredCorpus),
		FormatAmount(out.AchievedCorpus),
		FormatAmount(out.Breakdown.MutualFunds),
		FormatAmount(out.Breakdown.FD),
		FormatAmount(out.Breakdown.RD),
		FormatAmount(out.Breakdown.CurrentSavings),
		boolToString(out.IsGoalAchievable),
		FormatAmount(out.Shortfall),
		FormatAmount(ga.FundedRatio),
		FormatAmount(ga.ExtraMonthlySIP),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
