package calculation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rpgo/pillar-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures formatted messages per level.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.add("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("ERROR", format, args...) }

func (r *recordingLogger) joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()
	require.NotNil(t, engine)
	assert.IsType(t, NopLogger{}, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestRunComparisonAddsAssumptionsAndLogs(t *testing.T) {
	engine := NewCalculationEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)
	engine.Debug = true

	cmp, err := engine.RunComparison(context.Background(), domain.DefaultScenarioInputs())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScenarioInputs().GenerateAssumptions(), cmp.Assumptions)

	out := rec.joined()
	assert.Contains(t, out, "INFO comparison over 40 years")
	assert.Contains(t, out, "winner=direct")
	assert.Contains(t, out, "DEBUG NET RATES")
}

func TestRunComparisonInvalidInputs(t *testing.T) {
	engine := NewCalculationEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)

	in := domain.DefaultScenarioInputs()
	in.Years = -1
	_, err := engine.RunComparison(context.Background(), in)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
	assert.Contains(t, err.Error(), "ComposeScenario failed")
	assert.Contains(t, rec.joined(), "WARN comparison rejected")
}

func TestRunComparisonCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().RunComparison(ctx, domain.DefaultScenarioInputs())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewCalculationEngine().RunProjection(ctx, 0.05, 0, 100, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunProjection(t *testing.T) {
	engine := NewCalculationEngine()
	series, err := engine.RunProjection(context.Background(), 0.1, 0, 100, 2)
	require.NoError(t, err)
	assert.InDelta(t, 210, series.FinalValue(), 1e-9)

	_, err = engine.RunProjection(context.Background(), 0.1, 0, 100, 0)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
}

func TestRunComparisonConcurrent(t *testing.T) {
	engine := NewCalculationEngine()
	want, err := engine.RunComparison(context.Background(), domain.DefaultScenarioInputs())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*domain.Comparison, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.RunComparison(context.Background(), domain.DefaultScenarioInputs())
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.NotNil(t, got)
		assert.Equal(t, want.Summary, got.Summary)
	}
}

func TestRunSchedule(t *testing.T) {
	engine := NewCalculationEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)

	series, err := engine.RunSchedule(context.Background(), 0, 50, []float64{100, 200})
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.InDelta(t, 350.0, series.FinalValue(), 1e-12)
	assert.InDelta(t, 300.0, series[1].TotalContributions, 1e-12)

	_, err = engine.RunSchedule(context.Background(), 0, 0, nil)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
	assert.Contains(t, rec.joined(), "WARN schedule projection rejected")
}
