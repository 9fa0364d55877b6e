package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// CalculationEngine orchestrates comparisons and stamps them with assumptions.
// It holds no mutable state besides its logger and is safe for concurrent use.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunComparison composes both strategies for the inputs.
func (ce *CalculationEngine) RunComparison(ctx context.Context, in domain.ScenarioInputs) (*domain.Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := ce.logger()

	cmp, err := ComposeScenario(in)
	if err != nil {
		log.Warnf("comparison rejected: %v", err)
		return nil, fmt.Errorf("ComposeScenario failed: %w", err)
	}
	cmp.Assumptions = in.GenerateAssumptions()

	if ce.Debug {
		log.Debugf("NET RATES: direct=%.4f account=%.4f", cmp.Rates.Direct, cmp.Rates.Account)
		log.Debugf("Tax benefit contribution: %.2f per year", in.TaxBenefitContribution())
		log.Debugf("Account final gain: %.2f, terminal tax: %.2f", cmp.Summary.TerminalGain, cmp.Summary.TerminalTax)
	}
	log.Infof("comparison over %d years: direct=%d account=%d winner=%s",
		in.Years, cmp.Summary.DirectWhole, cmp.Summary.AccountWhole, cmp.Summary.Winner)
	return cmp, nil
}

// RunProjection runs a single projection with a constant contribution.
func (ce *CalculationEngine) RunProjection(ctx context.Context, rate, initial, contribution float64, years int) (domain.ProjectionSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series, err := Project(rate, initial, contribution, years)
	if err != nil {
		ce.logger().Warnf("projection rejected: %v", err)
		return nil, err
	}
	ce.logger().Debugf("projected %d years at %.4f, final value %.2f", years, rate, series.FinalValue())
	return series, nil
}

// RunSchedule runs a single projection with per-year contributions.
func (ce *CalculationEngine) RunSchedule(ctx context.Context, rate, initial float64, contributions []float64) (domain.ProjectionSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series, err := ProjectSchedule(rate, initial, contributions)
	if err != nil {
		ce.logger().Warnf("schedule projection rejected: %v", err)
		return nil, err
	}
	ce.logger().Debugf("projected %d scheduled years at %.4f, final value %.2f", len(contributions), rate, series.FinalValue())
	return series, nil
}
