package output

import (
	"bytes"
	_ "embed"
	"text/template"
	"time"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

//go:embed templates/report.md.tmpl
var markdownTemplateSource string

var markdownTemplate = template.Must(template.New("report.md").Funcs(reportFuncs).Parse(markdownTemplateSource))

// reportFuncs is shared by the markdown and HTML templates.
var reportFuncs = map[string]any{
	"curr":    FormatCurrency,
	"compact": FormatCompact,
	"pct":     FormatPercentage,
	"sum":     FormatSum,
	"diff":    FormatDifference,
	"date":    func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

// reportView is the data handed to the document templates.
type reportView struct {
	*Report
	Analysis    GoalAnalysis
	Assumptions []string
}

func newReportView(r *Report) reportView {
	return reportView{Report: r, Analysis: AnalyzeGoal(r.Input, r.Output), Assumptions: GenerateAssumptions(r.Input)}
}

func (m MarkdownFormatter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Output == nil {
		return nil, errNoOutput
	}
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, newReportView(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
