package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"
)

// HTMLFormatter produces a standalone HTML report with an inline projection chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(reportFuncs).Funcs(template.FuncMap{
	"json": func(v any) template.JS {
		b, err := json.Marshal(v)
		if err != nil {
			return template.JS("null")
		}
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Output == nil {
		return nil, errNoOutput
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newReportView(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
