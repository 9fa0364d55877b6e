package output

import (
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
	money "github.com/rpgo/pillar-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the better option.
type Recommendation struct {
	Option           domain.Option
	Title            string
	FinalValue       money.Money
	Difference       money.Money // winner minus loser, never negative
	PercentageChange decimal.Decimal // difference relative to the loser
}

// AnalyzeComparison determines the option with the highest final value.
func AnalyzeComparison(results *domain.Comparison) Recommendation {
	if results == nil {
		return Recommendation{}
	}
	s := results.Summary
	direct := money.NewMoney(s.DirectFinalValue)
	account := money.NewMoney(s.AccountFinalValue)

	best, other := direct, account
	if account.GreaterThan(direct) {
		best, other = account, direct
	}
	delta := best.Sub(other)
	pct := decimal.Zero
	if !other.IsZero() {
		pct = delta.Decimal.Div(other.Decimal.Abs()).Mul(decimalHundred)
	}
	return Recommendation{
		Option:           s.Winner,
		Title:            s.Winner.Title(),
		FinalValue:       best,
		Difference:       delta,
		PercentageChange: pct,
	}
}

// ConclusionLines returns the closing statements of a report.
func ConclusionLines(results *domain.Comparison) []string {
	s := results.Summary
	lines := []string{
		fmt.Sprintf("Option 1 total value after %d years: %s", s.Years, FormatWhole(s.DirectFinalValue)),
		fmt.Sprintf("Option 2 total value after %d years and after final taxes: %s", s.Years, FormatWhole(s.AccountFinalValue)),
	}
	rec := AnalyzeComparison(results)
	if rec.Option == domain.OptionTie {
		return append(lines, "Both options end with the same value.")
	}
	return append(lines, fmt.Sprintf("Better choice: %s (+%s, %s%%)", rec.Title, FormatAmount(rec.Difference.InexactFloat64()), rec.PercentageChange.StringFixed(2)))
}

// BreakEvenLine describes when the leading option changes, or "" when it never does.
func BreakEvenLine(results *domain.Comparison) string {
	be := results.BreakEven
	if be == nil {
		return ""
	}
	if be.Leader == domain.OptionTie {
		return fmt.Sprintf("Both options are worth %s at the end of year %d.", FormatAmount(be.Value), be.Year)
	}
	return fmt.Sprintf("Break-even during year %d (%.0f%% into the year) at %s; afterwards %s leads.",
		be.Year, be.Fraction*100, FormatAmount(be.Value), be.Leader.Title())
}
