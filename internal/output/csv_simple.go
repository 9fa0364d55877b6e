package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per option).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.Comparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Option", "Years", "NetReturn", "TotalContributions", "FinalValue", "WholeValue", "FinalTax", "Winner"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	s := results.Summary
	last, _ := results.Direct.Last()
	rows := [][]string{
		{
			string(domain.OptionDirect),
			intToString(s.Years),
			FormatRate(results.Rates.Direct),
			FormatPlain(last.TotalContributions),
			FormatPlain(s.DirectFinalValue),
			fmt.Sprintf("%d", s.DirectWhole),
			FormatPlain(0),
			boolToString(s.Winner == domain.OptionDirect),
		},
	}
	accountLast, _ := results.Total.Rows.Last()
	rows = append(rows, []string{
		string(domain.OptionAccount),
		intToString(s.Years),
		FormatRate(results.Rates.Account),
		FormatPlain(accountLast.TotalContributions),
		FormatPlain(s.AccountFinalValue),
		fmt.Sprintf("%d", s.AccountWhole),
		FormatPlain(s.TerminalTax),
		boolToString(s.Winner == domain.OptionAccount),
	})
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
