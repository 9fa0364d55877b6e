package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

func TestReturnRange(t *testing.T) {
	got, err := ReturnRange(0.02, 0.10, 0.02)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.InDelta(t, 0.02, got[0], 1e-12)
	assert.InDelta(t, 0.10, got[4], 1e-12)

	single, err := ReturnRange(0.05, 0.05, 0.01)
	require.NoError(t, err)
	assert.Len(t, single, 1)
}

func TestReturnRangeErrors(t *testing.T) {
	cases := []struct {
		name           string
		from, to, step float64
	}{
		{"zero step", 0.01, 0.05, 0},
		{"negative step", 0.01, 0.05, -0.01},
		{"reversed", 0.05, 0.01, 0.01},
		{"too many points", 0, 1, 0.0001},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReturnRange(tc.from, tc.to, tc.step)
			assert.True(t, domain.IsKind(err, domain.KindInvalidArgument), "got %v", err)
		})
	}
}

func TestRunSensitivity(t *testing.T) {
	engine := NewCalculationEngine()
	in := domain.DefaultScenarioInputs()

	points, err := engine.RunSensitivity(context.Background(), in, []float64{0.02, 0.08})
	require.NoError(t, err)
	require.Len(t, points, 2)

	// The 8% point reproduces the default comparison
	assert.InDelta(t, 1734334.811028025, points[1].DirectFinalValue, 1e-6)
	assert.InDelta(t, 1628048.7715877085, points[1].AccountFinalValue, 1e-6)
	assert.Equal(t, domain.OptionDirect, points[1].Winner)

	// Low returns make the reinvested deduction decisive
	assert.Equal(t, domain.OptionAccount, points[0].Winner)
	assert.Greater(t, points[0].Difference, 0.0)
}

func TestRunSensitivityErrors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunSensitivity(context.Background(), domain.DefaultScenarioInputs(), nil)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.RunSensitivity(ctx, domain.DefaultScenarioInputs(), []float64{0.05})
	assert.ErrorIs(t, err, context.Canceled)
}
