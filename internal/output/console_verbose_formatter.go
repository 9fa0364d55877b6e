package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report with every yearly table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.Comparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	var buf bytes.Buffer
	in := results.Inputs
	currency := results.CurrencyOrDefault()

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "PILLAR 3A VS. DIRECT STOCK MARKET INVESTMENT")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = GenerateAssumptions(in)
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	secs := sections(results)

	fmt.Fprintln(&buf, strings.ToUpper(domain.OptionDirect.Title()))
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Here we assume to invest all %s in the stock market every year with an annual return of %s\n",
		FormatCurrency(currency, in.AnnualContribution), FormatPercentage(results.Rates.Direct))
	fmt.Fprintf(&buf, "after broker and ETF fees of %s.\n", FormatPercentage(in.BrokerFee))
	fmt.Fprintln(&buf)
	writeTable(&buf, secs[0])

	fmt.Fprintln(&buf, strings.ToUpper(domain.OptionAccount.Title()))
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Here we assume to invest all %s in the 3a pillar every year with an annual return of %s\n",
		FormatCurrency(currency, in.AnnualContribution), FormatPercentage(results.Rates.Account))
	fmt.Fprintf(&buf, "after account fees of %s. The tax benefit of %s per year is invested in the stock market\n",
		FormatPercentage(in.AccountFee), FormatCurrency(currency, in.TaxBenefitContribution()))
	fmt.Fprintf(&buf, "at %s and the final gain is taxed at %s when withdrawn.\n",
		FormatPercentage(results.Rates.Direct), FormatPercentage(in.EffectiveWithdrawalTaxRate()))
	fmt.Fprintln(&buf)
	for _, sec := range secs[1:] {
		writeTable(&buf, sec)
	}

	if line := BreakEvenLine(results); line != "" {
		fmt.Fprintln(&buf, "BREAK-EVEN (Option 2 withdrawn at year end)")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintln(&buf, line)
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "CONCLUSION")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	for _, line := range ConclusionLines(results) {
		fmt.Fprintln(&buf, line)
	}
	return buf.Bytes(), nil
}

// writeTable prints one yearly table; the terminal row has blank breakdown cells.
func writeTable(w io.Writer, sec section) {
	fmt.Fprintln(w, sec.Title)
	fmt.Fprintln(w, strings.Repeat("-", len(sec.Title)))
	fmt.Fprintf(w, "%6s %22s %22s %22s\n", "Year", "Total Contributions", "Accrued Interest", "Total Value")
	for _, row := range sec.Rows {
		fmt.Fprintf(w, "%6d %22s %22s %22s\n", row.Year,
			optionalAmount(row.TotalContributions), optionalAmount(row.AccruedInterest), optionalAmount(row.TotalValue))
	}
	fmt.Fprintln(w)
}
