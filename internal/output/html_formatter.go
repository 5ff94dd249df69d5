package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// HTMLFormatter renders the summary, chart series and grid as a standalone page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	assets := report.Inputs.CurrentAssets
	funcs := template.FuncMap{
		"curr":    FormatCurrency,
		"amount":  FormatAmount,
		"compact": FormatCompact,
		"pct":     FormatPercentage,
		"coast":   FormatCoastAge,
		"join":    strings.Join,
		// covered marks cells current assets already satisfy.
		"covered": func(a domain.Amount) bool { return a.Valid && assets >= a.Value },
		"json": func(v interface{}) (template.JS, error) {
			b, err := json.Marshal(v)
			return template.JS(b), err
		},
	}
	tmpl, err := template.New("report").Funcs(funcs).Parse(htmlTemplateSource)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
