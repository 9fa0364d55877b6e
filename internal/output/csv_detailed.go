package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// CSVDetailedExporter writes every yearly row of every series.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.Comparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Series", "Year", "TotalContributions", "AccruedInterest", "TotalValue", "Terminal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sec := range sections(results) {
		for _, row := range sec.Rows {
			record := []string{
				sec.Key,
				intToString(row.Year),
				optionalPlain(row.TotalContributions),
				optionalPlain(row.AccruedInterest),
				optionalPlain(row.TotalValue),
				boolToString(row.Terminal),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
