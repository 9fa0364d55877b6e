package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// breakEvenTolerance treats differences below one cent as equal.
const breakEvenTolerance = 0.01

// WithdrawalValues returns what a series would be worth if it were withdrawn at
// the end of each year and its gain taxed at taxRate.
func WithdrawalValues(series domain.ProjectionSeries, taxRate float64) []float64 {
	out := make([]float64, len(series))
	for i, row := range series {
		out[i] = row.TotalValue - row.AccruedInterest*taxRate
	}
	return out
}

// TotalValues returns the yearly total values of a series.
func TotalValues(series domain.ProjectionSeries) []float64 {
	out := make([]float64, len(series))
	for i, row := range series {
		out[i] = row.TotalValue
	}
	return out
}

// CalculateBreakEven finds the first year in which the leading option changes
// between the yearly values of the direct and the account option. Both sequences
// are aligned by index, index 0 being year 1. A crossing inside a year is
// interpolated linearly. A run of equal years counts only when the other option
// leads afterwards; the break-even is then the first equal year.
// If no crossover is found, returns nil, nil.
func CalculateBreakEven(direct, account []float64) (*domain.BreakEven, error) {
	if len(direct) == 0 || len(account) == 0 {
		return nil, domain.NewError("calculation.break_even", domain.KindInvalidArgument, "one or both value sequences are empty")
	}
	if len(direct) != len(account) {
		return nil, domain.NewError("calculation.break_even", domain.KindShapeMismatch, "value sequences differ in length: %d vs %d", len(direct), len(account))
	}

	leaderAfter := func(diff float64) domain.Option {
		if diff > 0 {
			return domain.OptionDirect
		}
		return domain.OptionAccount
	}

	// leadDiff is the last difference outside the tolerance; zero until one side leads.
	var leadDiff float64
	tieAt := -1
	for i := range direct {
		currDiff := direct[i] - account[i]

		if math.Abs(currDiff) < breakEvenTolerance {
			if leadDiff != 0 && tieAt < 0 {
				tieAt = i
			}
			continue
		}

		if leadDiff != 0 && leadDiff*currDiff < 0 {
			if tieAt >= 0 {
				return &domain.BreakEven{Year: tieAt + 1, Fraction: 1, Value: direct[tieAt], Leader: leaderAfter(currDiff)}, nil
			}
			// No tie in between, so year i-1 holds leadDiff
			t := -leadDiff / (currDiff - leadDiff)
			t = math.Max(0, math.Min(1, t))
			value := direct[i-1] + (direct[i]-direct[i-1])*t
			return &domain.BreakEven{Year: i + 1, Fraction: t, Value: value, Leader: leaderAfter(currDiff)}, nil
		}
		leadDiff = currDiff
		tieAt = -1
	}

	// No crossover found
	return nil, nil
}

// ComparisonBreakEven compares Option 1 with Option 2 withdrawn at the end of each year.
func ComparisonBreakEven(cmp *domain.Comparison) (*domain.BreakEven, error) {
	if cmp == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	return CalculateBreakEven(TotalValues(cmp.Direct), WithdrawalValues(cmp.Total.Rows, cmp.Inputs.EffectiveWithdrawalTaxRate()))
}
