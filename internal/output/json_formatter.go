package output

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter serializes the report and its goal analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Output == nil {
		return nil, errNoOutput
	}
	doc := struct {
		*Report
		Analysis GoalAnalysis `json:"analysis"`
	}{r, AnalyzeGoal(r.Input, r.Output)}
	return json.MarshalIndent(doc, "", "  ")
}
