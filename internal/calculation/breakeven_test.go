package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// Test exact year crossover
func TestCalculateBreakEven_ExactYear(t *testing.T) {
	// Account leads in year 1, both equal at 300 in year 2, direct leads in year 3
	direct := []float64{100, 300, 500}
	account := []float64{150, 300, 450}

	res, err := CalculateBreakEven(direct, account)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Year)
	assert.Equal(t, 1.0, res.Fraction)
	assert.Equal(t, 300.0, res.Value)
	assert.Equal(t, domain.OptionDirect, res.Leader)
}

// Test mid-year interpolation crossover
func TestCalculateBreakEven_Interpolation(t *testing.T) {
	// After year1: diff=20, after year2: diff=-20 => t = 20/(20+20)=0.5
	direct := []float64{100, 200}
	account := []float64{80, 220}

	res, err := CalculateBreakEven(direct, account)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Year)
	assert.InDelta(t, 0.5, res.Fraction, 1e-12)
	assert.InDelta(t, 150.0, res.Value, 1e-12)
	assert.Equal(t, domain.OptionAccount, res.Leader)
}

func TestCalculateBreakEven_NoCrossover(t *testing.T) {
	res, err := CalculateBreakEven([]float64{1, 2, 3}, []float64{2, 3, 4})
	require.NoError(t, err)
	assert.Nil(t, res)

	// Identical sequences never cross
	res, err = CalculateBreakEven([]float64{5, 10}, []float64{5, 10})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateBreakEven_TouchWithoutCrossing(t *testing.T) {
	// Direct leads, the values meet in year 2, direct leads again
	res, err := CalculateBreakEven([]float64{10, 10, 10}, []float64{5, 10, 5})
	require.NoError(t, err)
	assert.Nil(t, res)

	// Ending on a tie is not a change of leader either
	res, err = CalculateBreakEven([]float64{10, 10}, []float64{5, 10})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateBreakEven_TieRunThenCrossing(t *testing.T) {
	// Account leads, two equal years, then a touch is skipped before the real crossing
	direct := []float64{100, 200, 300, 400}
	account := []float64{150, 200, 300, 350}

	res, err := CalculateBreakEven(direct, account)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Year)
	assert.Equal(t, 1.0, res.Fraction)
	assert.Equal(t, 200.0, res.Value)
	assert.Equal(t, domain.OptionDirect, res.Leader)

	res, err = CalculateBreakEven([]float64{10, 10, 10, 30}, []float64{5, 10, 5, 40})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 4, res.Year)
	assert.InDelta(t, 1.0/3.0, res.Fraction, 1e-12)
	assert.InDelta(t, 10+20.0/3.0, res.Value, 1e-12)
	assert.Equal(t, domain.OptionAccount, res.Leader)
}

func TestCalculateBreakEven_Errors(t *testing.T) {
	_, err := CalculateBreakEven(nil, []float64{1})
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))

	_, err = CalculateBreakEven([]float64{1, 2}, []float64{1})
	assert.True(t, domain.IsKind(err, domain.KindShapeMismatch))
}

func TestWithdrawalValues(t *testing.T) {
	series := domain.ProjectionSeries{
		{Year: 1, TotalContributions: 100, AccruedInterest: 0, TotalValue: 100},
		{Year: 2, TotalContributions: 200, AccruedInterest: 10, TotalValue: 210},
	}
	assert.Equal(t, []float64{100, 208}, WithdrawalValues(series, 0.2))
	assert.Equal(t, []float64{100, 210}, TotalValues(series))
}

func TestComposeScenarioBreakEvenDefaults(t *testing.T) {
	cmp, err := ComposeScenario(domain.DefaultScenarioInputs())
	require.NoError(t, err)

	// The tax benefit puts Option 2 ahead early; Option 1 ends ahead after 40 years.
	require.NotNil(t, cmp.BreakEven)
	assert.Equal(t, domain.OptionDirect, cmp.BreakEven.Leader)
	assert.Greater(t, cmp.BreakEven.Year, 1)
	assert.LessOrEqual(t, cmp.BreakEven.Year, 40)
}
