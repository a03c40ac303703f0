package output

import (
	"bytes"
	"encoding/csv"
)

// CSVProjectionExporter writes one row per projection year.
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string { return "projection-csv" }

func (c CSVProjectionExporter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Output == nil {
		return nil, errNoOutput
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "Age", "MutualFunds", "FD", "RD", "CurrentSavings", "Total"}); err != nil {
		return nil, err
	}
	for _, y := range r.Output.YearlyProjection {
		row := []string{
			intToString(y.Year),
			intToString(y.Age),
			FormatAmount(y.MutualFunds),
			FormatAmount(y.FD),
			FormatAmount(y.RD),
			FormatAmount(y.CurrentSavings),
			FormatAmount(y.Total),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
