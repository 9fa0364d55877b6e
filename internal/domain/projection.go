package domain

import (
	"encoding/json"
	"math"
)

// ProjectionRow represents a single year of a compounding projection
type ProjectionRow struct {
	Year               int     `json:"year"`
	TotalContributions float64 `json:"total_contributions"`
	AccruedInterest    float64 `json:"accrued_interest"`
	TotalValue         float64 `json:"total_value"`
}

// Balanced reports whether TotalValue equals TotalContributions + AccruedInterest
// within a relative tolerance.
func (r ProjectionRow) Balanced(tolerance float64) bool {
	sum := r.TotalContributions + r.AccruedInterest
	scale := math.Max(1, math.Max(math.Abs(r.TotalValue), math.Abs(sum)))
	return math.Abs(r.TotalValue-sum) <= tolerance*scale
}

// ProjectionSeries is a year-ordered projection; index i holds year i+1.
type ProjectionSeries []ProjectionRow

// Len returns the number of years in the series
func (s ProjectionSeries) Len() int { return len(s) }

// Last returns the final year of the series. ok is false for an empty series.
func (s ProjectionSeries) Last() (row ProjectionRow, ok bool) {
	if len(s) == 0 {
		return ProjectionRow{}, false
	}
	return s[len(s)-1], true
}

// FinalValue returns the total value of the last row, or zero for an empty series.
func (s ProjectionSeries) FinalValue() float64 {
	last, _ := s.Last()
	return last.TotalValue
}

// Clone returns an independent copy of the series.
func (s ProjectionSeries) Clone() ProjectionSeries {
	if s == nil {
		return nil
	}
	out := make(ProjectionSeries, len(s))
	copy(out, s)
	return out
}

// Sequential reports whether years run 1..N without gaps.
func (s ProjectionSeries) Sequential() bool {
	for i, row := range s {
		if row.Year != i+1 {
			return false
		}
	}
	return true
}

// TerminalRow is the synthetic post-tax row appended after the last projected year.
// It has no contribution/interest breakdown.
type TerminalRow struct {
	Year       int     `json:"year"`
	TotalValue float64 `json:"total_value"`
	Gain       float64 `json:"-"`
	Tax        float64 `json:"-"`
}

// TableRow is the display shape shared by projected and terminal rows.
// Nil fields render as blank cells (or null in JSON).
type TableRow struct {
	Year               int      `json:"year"`
	TotalContributions *float64 `json:"total_contributions"`
	AccruedInterest    *float64 `json:"accrued_interest"`
	TotalValue         *float64 `json:"total_value"`
	Terminal           bool     `json:"terminal,omitempty"`
}

// CompositeResult is a merged projection optionally extended with a terminal tax row.
type CompositeResult struct {
	Rows     ProjectionSeries
	Terminal *TerminalRow
}

// Len returns the number of table rows, including the terminal row.
func (c CompositeResult) Len() int {
	if c.Terminal != nil {
		return len(c.Rows) + 1
	}
	return len(c.Rows)
}

// FinalValue returns the post-tax value when a terminal row exists,
// otherwise the last projected total value.
func (c CompositeResult) FinalValue() float64 {
	if c.Terminal != nil {
		return c.Terminal.TotalValue
	}
	return c.Rows.FinalValue()
}

// Table flattens the result into display rows.
func (c CompositeResult) Table() []TableRow {
	out := make([]TableRow, 0, c.Len())
	out = append(out, SeriesTable(c.Rows)...)
	if c.Terminal != nil {
		v := c.Terminal.TotalValue
		out = append(out, TableRow{Year: c.Terminal.Year, TotalValue: &v, Terminal: true})
	}
	return out
}

// MarshalJSON encodes the result as a flat table; the terminal row has null breakdown fields.
func (c CompositeResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Table())
}

// UnmarshalJSON decodes the flat table written by MarshalJSON. A row marked
// terminal becomes the terminal row; gain and tax are not part of the table.
func (c *CompositeResult) UnmarshalJSON(data []byte) error {
	var table []TableRow
	if err := json.Unmarshal(data, &table); err != nil {
		return err
	}
	out := CompositeResult{}
	for _, row := range table {
		if row.Terminal {
			t := TerminalRow{Year: row.Year}
			if row.TotalValue != nil {
				t.TotalValue = *row.TotalValue
			}
			out.Terminal = &t
			continue
		}
		pr := ProjectionRow{Year: row.Year}
		if row.TotalContributions != nil {
			pr.TotalContributions = *row.TotalContributions
		}
		if row.AccruedInterest != nil {
			pr.AccruedInterest = *row.AccruedInterest
		}
		if row.TotalValue != nil {
			pr.TotalValue = *row.TotalValue
		}
		out.Rows = append(out.Rows, pr)
	}
	*c = out
	return nil
}

// SeriesTable converts a projection series into fully populated display rows.
func SeriesTable(s ProjectionSeries) []TableRow {
	out := make([]TableRow, len(s))
	for i := range s {
		row := s[i]
		out[i] = TableRow{
			Year:               row.Year,
			TotalContributions: &row.TotalContributions,
			AccruedInterest:    &row.AccruedInterest,
			TotalValue:         &row.TotalValue,
		}
	}
	return out
}

// NetRates are the fee-adjusted growth rates of both strategies
type NetRates struct {
	Direct  float64 `json:"direct"`
	Account float64 `json:"account"`
}

// Option identifies one of the compared strategies
type Option string

const (
	OptionDirect  Option = "direct"
	OptionAccount Option = "account"
	OptionTie     Option = "tie"
)

// Title returns the human label for the option.
func (o Option) Title() string {
	switch o {
	case OptionDirect:
		return "Option 1: investing yourself in the stock market"
	case OptionAccount:
		return "Option 2: investing in the 3a pillar"
	default:
		return "Both options are equal"
	}
}

// ComparisonSummary holds terminal metrics of both options
type ComparisonSummary struct {
	Years             int     `json:"years"`
	DirectFinalValue  float64 `json:"direct_final_value"`
	AccountFinalValue float64 `json:"account_final_value"` // after terminal tax
	DirectWhole       int64   `json:"direct_whole"`
	AccountWhole      int64   `json:"account_whole"`
	Difference        float64 `json:"difference"` // account minus direct
	TerminalGain      float64 `json:"terminal_gain"`
	TerminalTax       float64 `json:"terminal_tax"`
	Winner            Option  `json:"winner"`
}

// Comparison is the full result of composing both strategies
type Comparison struct {
	Inputs      ScenarioInputs    `json:"inputs"`
	Rates       NetRates          `json:"rates"`
	Direct      ProjectionSeries  `json:"direct"`      // Option 1
	Account     ProjectionSeries  `json:"account"`     // account alone, before tax benefit
	TaxBenefit  ProjectionSeries  `json:"tax_benefit"` // reinvested deduction at the direct rate
	Total       CompositeResult   `json:"total"`       // Option 2
	Summary     ComparisonSummary `json:"summary"`
	BreakEven   *BreakEven        `json:"break_even,omitempty"`
	Assumptions []string          `json:"assumptions"`
	Currency    string            `json:"currency,omitempty"` // display only
}

// BreakEven is the first point where the leading option changes, assuming
// Option 2 is withdrawn (and its gain taxed) at that point.
type BreakEven struct {
	Year     int     `json:"year"`     // year in which the crossing completes
	Fraction float64 `json:"fraction"` // 0..1 position inside that year
	Value    float64 `json:"value"`    // interpolated value of both options
	Leader   Option  `json:"leader"`   // option ahead after the crossing
}

// CurrencyOrDefault returns the display currency.
func (c *Comparison) CurrencyOrDefault() string {
	if c == nil || c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

// SensitivityPoint is the outcome of a comparison for one market return.
type SensitivityPoint struct {
	MarketReturn      float64 `json:"market_return"`
	DirectFinalValue  float64 `json:"direct_final_value"`
	AccountFinalValue float64 `json:"account_final_value"`
	Difference        float64 `json:"difference"`
	Winner            Option  `json:"winner"`
}
