package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	var buf bytes.Buffer
	s := results.Summary
	currency := results.CurrencyOrDefault()
	fmt.Fprintln(&buf, "PILLAR SAVINGS COMPARISON")
	fmt.Fprintln(&buf, "=========================")
	fmt.Fprintf(&buf, "Horizon:             %d years\n", s.Years)
	fmt.Fprintf(&buf, "Yearly contribution: %s\n", FormatCurrency(currency, results.Inputs.AnnualContribution))
	fmt.Fprintf(&buf, "Net direct return:   %s\n", FormatPercentage(results.Rates.Direct))
	fmt.Fprintf(&buf, "Net account return:  %s\n", FormatPercentage(results.Rates.Account))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Option 1 (direct):   %s\n", FormatCurrency(currency, s.DirectFinalValue))
	fmt.Fprintf(&buf, "Option 2 (3a):       %s\n", FormatCurrency(currency, s.AccountFinalValue))
	fmt.Fprintf(&buf, "Final tax paid:      %s\n", FormatCurrency(currency, s.TerminalTax))
	fmt.Fprintf(&buf, "Difference (2 - 1):  %s\n", FormatCurrency(currency, s.Difference))
	fmt.Fprintf(&buf, "Better choice:       %s\n", s.Winner.Title())
	return buf.Bytes(), nil
}
