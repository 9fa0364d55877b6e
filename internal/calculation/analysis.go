package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// maxSweepPoints bounds the number of market returns a sensitivity sweep evaluates.
const maxSweepPoints = 1000

// ReturnRange lists market returns from `from` to `to` inclusive in `step` increments.
func ReturnRange(from, to, step float64) ([]float64, error) {
	const op = "calculation.return_range"
	if !finite(from) || !finite(to) || !finite(step) {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "range bounds and step must be finite")
	}
	if step <= 0 {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "step must be positive, got %v", step)
	}
	if to < from {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "range end %v is below start %v", to, from)
	}
	// Tolerate float drift on the last step
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n > maxSweepPoints {
		return nil, domain.NewError(op, domain.KindInvalidArgument, "range has %d points, at most %d allowed", n, maxSweepPoints)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out, nil
}

// RunSensitivity recomposes the scenario for each market return, keeping every other input.
func (ce *CalculationEngine) RunSensitivity(ctx context.Context, in domain.ScenarioInputs, marketReturns []float64) ([]domain.SensitivityPoint, error) {
	if len(marketReturns) == 0 {
		return nil, domain.NewError("calculation.sensitivity", domain.KindInvalidArgument, "at least one market return is required")
	}
	points := make([]domain.SensitivityPoint, 0, len(marketReturns))
	for _, r := range marketReturns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scenario := in
		scenario.MarketReturn = r
		cmp, err := ComposeScenario(scenario)
		if err != nil {
			return nil, fmt.Errorf("market return %.4f: %w", r, err)
		}
		points = append(points, domain.SensitivityPoint{
			MarketReturn:      r,
			DirectFinalValue:  cmp.Summary.DirectFinalValue,
			AccountFinalValue: cmp.Summary.AccountFinalValue,
			Difference:        cmp.Summary.Difference,
			Winner:            cmp.Summary.Winner,
		})
	}
	ce.logger().Infof("sensitivity over %d market returns", len(points))
	return points, nil
}
