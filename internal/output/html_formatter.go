package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with Chart.js charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"amt":   optionalAmount,
	"whole": FormatWhole,
	"pct":   FormatPercentage,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-table payload consumed by the chart script.
type chartSeries struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Years         []int      `json:"years"`
	Contributions []*float64 `json:"contributions"`
	Interest      []*float64 `json:"interest"`
	Total         []*float64 `json:"total"`
}

func (h HTMLFormatter) Format(results *domain.Comparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	var buf bytes.Buffer

	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = GenerateAssumptions(results.Inputs)
	}

	secs := sections(results)
	charts := make([]chartSeries, 0, len(secs))
	for _, sec := range secs {
		cs := chartSeries{ID: "chart-" + sec.Key, Title: sec.Title}
		for _, row := range sec.Rows {
			cs.Years = append(cs.Years, row.Year)
			cs.Contributions = append(cs.Contributions, row.TotalContributions)
			cs.Interest = append(cs.Interest, row.AccruedInterest)
			cs.Total = append(cs.Total, row.TotalValue)
		}
		charts = append(charts, cs)
	}

	data := struct {
		*domain.Comparison
		CurrencyCode   string
		Recommendation Recommendation
		Assumptions    []string
		Sections       []section
		Charts         []chartSeries
		Conclusion     []string
		BreakEvenLine  string
	}{results, results.CurrencyOrDefault(), AnalyzeComparison(results), assumptions, secs, charts, ConclusionLines(results), BreakEvenLine(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
