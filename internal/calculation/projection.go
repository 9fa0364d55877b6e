package calculation

import (
	"math"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// Project compounds a constant yearly contribution over the given horizon.
// value[0] = initial, value[i] = value[i-1]*(1+rate) + contribution; the
// returned series holds years 1..years.
func Project(rate, initial, contribution float64, years int) (domain.ProjectionSeries, error) {
	if years <= 0 {
		return nil, domain.NewError("calculation.project", domain.KindInvalidArgument, "years must be positive, got %d", years)
	}
	if years > domain.MaxYears {
		return nil, domain.NewError("calculation.project", domain.KindInvalidArgument, "years must not exceed %d, got %d", domain.MaxYears, years)
	}
	return ProjectSchedule(rate, initial, ConstantSchedule(contribution, years))
}

// ProjectSchedule compounds a per-year contribution schedule. Year i receives
// contributions[i-1] after growth, and TotalContributions is the running sum.
func ProjectSchedule(rate, initial float64, contributions []float64) (domain.ProjectionSeries, error) {
	const op = "calculation.project_schedule"
	if len(contributions) == 0 {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "contribution schedule must cover at least one year")
	}
	if len(contributions) > domain.MaxYears {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "contribution schedule must not exceed %d years, got %d", domain.MaxYears, len(contributions))
	}
	if !finite(rate) {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "rate must be finite, got %v", rate)
	}
	if !finite(initial) {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "initial amount must be finite, got %v", initial)
	}

	series := make(domain.ProjectionSeries, len(contributions))
	value := initial
	var cumulative float64
	for i, c := range contributions {
		if !finite(c) {
			return nil, domain.NewError(op, domain.KindInvalidArgument, "contribution for year %d must be finite, got %v", i+1, c)
		}
		// float64() forbids FMA fusion so results match across architectures.
		value = float64(value*(1+rate)) + c
		cumulative += c
		series[i] = domain.ProjectionRow{
			Year:               i + 1,
			TotalContributions: cumulative,
			AccruedInterest:    value - cumulative,
			TotalValue:         value,
		}
	}
	return series, nil
}

// ConstantSchedule repeats amount for the given number of years.
func ConstantSchedule(amount float64, years int) []float64 {
	if years <= 0 {
		return nil
	}
	out := make([]float64, years)
	for i := range out {
		out[i] = amount
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
