package calculation

import (
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
	money "github.com/rpgo/pillar-calculator/pkg/decimal"
)

// MergeSeries sums two projections year by year into a new series.
// Neither input is modified.
func MergeSeries(a, b domain.ProjectionSeries) (domain.ProjectionSeries, error) {
	const op = "calculation.merge_series"
	if len(a) != len(b) {
		return nil, domain.NewError(op, domain.KindShapeMismatch, "series lengths differ: %d vs %d", len(a), len(b))
	}

	merged := a.Clone()
	for i := range merged {
		if merged[i].Year != b[i].Year {
			return nil, domain.NewError(op, domain.KindShapeMismatch, "year mismatch at row %d: %d vs %d", i, merged[i].Year, b[i].Year)
		}
		merged[i].TotalValue += b[i].TotalValue
		merged[i].TotalContributions += b[i].TotalContributions
		merged[i].AccruedInterest += b[i].AccruedInterest
	}
	return merged, nil
}

// ApplyTerminalTax taxes the final gain once and appends the post-tax row.
// gain = last.TotalValue - last.TotalContributions; the terminal row value is
// last.TotalValue - gain*taxRate. A negative gain yields a negative tax.
func ApplyTerminalTax(series domain.ProjectionSeries, taxRate float64) (domain.CompositeResult, error) {
	const op = "calculation.apply_terminal_tax"
	last, ok := series.Last()
	if !ok {
		return domain.CompositeResult{}, domain.NewError(op, domain.KindInvalidArgument, "cannot tax an empty series")
	}
	if !finite(taxRate) {
		return domain.CompositeResult{}, domain.NewError(op, domain.KindInvalidArgument, "tax rate must be finite, got %v", taxRate)
	}

	gain := last.TotalValue - last.TotalContributions
	tax := gain * taxRate
	return domain.CompositeResult{
		Rows: series.Clone(),
		Terminal: &domain.TerminalRow{
			Year:       last.Year + 1,
			TotalValue: last.TotalValue - tax,
			Gain:       gain,
			Tax:        tax,
		},
	}, nil
}

// ComposeScenario runs both strategies and combines them into a comparison.
//
// Option 1 invests the contribution directly at market minus broker fees.
// Option 2 invests it in the account at market minus account fees, reinvests
// the yearly tax deduction at the direct rate, and pays tax on the final gain.
func ComposeScenario(in domain.ScenarioInputs) (*domain.Comparison, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rates := in.NetRates()

	direct, err := Project(rates.Direct, in.InitialInvestment, in.AnnualContribution, in.Years)
	if err != nil {
		return nil, fmt.Errorf("direct projection: %w", err)
	}
	account, err := Project(rates.Account, in.InitialInvestment, in.AnnualContribution, in.Years)
	if err != nil {
		return nil, fmt.Errorf("account projection: %w", err)
	}
	benefit, err := Project(rates.Direct, 0, in.TaxBenefitContribution(), in.Years)
	if err != nil {
		return nil, fmt.Errorf("tax benefit projection: %w", err)
	}

	merged, err := MergeSeries(account, benefit)
	if err != nil {
		return nil, fmt.Errorf("merge account and tax benefit: %w", err)
	}
	total, err := ApplyTerminalTax(merged, in.EffectiveWithdrawalTaxRate())
	if err != nil {
		return nil, fmt.Errorf("terminal tax: %w", err)
	}

	cmp := &domain.Comparison{
		Inputs:     in,
		Rates:      rates,
		Direct:     direct,
		Account:    account,
		TaxBenefit: benefit,
		Total:      total,
		Summary:    Summarize(in.Years, direct, total),
	}
	if cmp.BreakEven, err = ComparisonBreakEven(cmp); err != nil {
		return nil, fmt.Errorf("break-even: %w", err)
	}
	return cmp, nil
}

// Summarize compares the final values of both options. Whole values truncate
// toward zero.
func Summarize(years int, direct domain.ProjectionSeries, total domain.CompositeResult) domain.ComparisonSummary {
	directFinal := direct.FinalValue()
	accountFinal := total.FinalValue()
	directMoney, accountMoney := money.NewMoney(directFinal), money.NewMoney(accountFinal)
	summary := domain.ComparisonSummary{
		Years:             years,
		DirectFinalValue:  directFinal,
		AccountFinalValue: accountFinal,
		DirectWhole:       directMoney.Whole(),
		AccountWhole:      accountMoney.Whole(),
		Difference:        accountFinal - directFinal,
		Winner:            domain.OptionTie,
	}
	if total.Terminal != nil {
		summary.TerminalGain = total.Terminal.Gain
		summary.TerminalTax = total.Terminal.Tax
	}
	switch {
	case accountMoney.GreaterThan(directMoney):
		summary.Winner = domain.OptionAccount
	case directMoney.GreaterThan(accountMoney):
		summary.Winner = domain.OptionDirect
	}
	return summary
}
