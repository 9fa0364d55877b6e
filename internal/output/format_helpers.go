package output

import (
	"strconv"

	"github.com/rpgo/pillar-calculator/internal/domain"
	money "github.com/rpgo/pillar-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount with grouping, two decimals and a currency code.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(currency string, amount float64) string {
	return money.NewMoney(amount).Format(currency)
}

// FormatAmount formats an amount with grouping and two decimals.
func FormatAmount(amount float64) string { return money.NewMoney(amount).Grouped() }

// FormatWhole formats the truncated amount with grouping ("1,734,334").
func FormatWhole(amount float64) string { return money.NewMoney(amount).GroupedWhole() }

// FormatPercentage formats a fraction as a percentage with 2 decimals (0.08 -> "8.00%").
func FormatPercentage(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimalHundred).StringFixed(2) + "%"
}

// FormatPlain formats an amount with two decimals and no grouping, for machine-readable output.
func FormatPlain(amount float64) string { return decimal.NewFromFloat(amount).StringFixed(2) }

func optionalPlain(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatPlain(*v)
}

func optionalAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatAmount(*v)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

var decimalHundred = decimal.NewFromInt(100)

// section is one displayed series of a comparison.
type section struct {
	Key   string
	Title string
	Rows  []domain.TableRow
}

// sections lists the displayed series in page order.
func sections(results *domain.Comparison) []section {
	return []section{
		{Key: "direct", Title: "Stock Market Investment", Rows: domain.SeriesTable(results.Direct)},
		{Key: "account", Title: "3a Pillar Investment", Rows: domain.SeriesTable(results.Account)},
		{Key: "tax_benefit", Title: "Tax Benefit Investment", Rows: domain.SeriesTable(results.TaxBenefit)},
		{Key: "total", Title: "Total Investment (3a + Tax Benefit)", Rows: results.Total.Table()},
	}
}

// FormatRate formats a fraction with four decimals for machine-readable output (0.078 -> "0.0780").
func FormatRate(fraction float64) string { return decimal.NewFromFloat(fraction).StringFixed(4) }
