package integration

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pillar-calculator/internal/calculation"
	"github.com/rpgo/pillar-calculator/internal/config"
	"github.com/rpgo/pillar-calculator/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	results, err := calculation.NewCalculationEngine().RunComparison(context.Background(), cfg.Inputs())
	require.NoError(t, err)
	results.Currency = cfg.Currency

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		files, err := output.GenerateReport(results, format, dir)
		require.NoError(t, err, format)
		require.Len(t, files, 1)
		info, err := os.Stat(files[0])
		require.NoError(t, err)
		assert.Positive(t, info.Size(), format)
	}
}

func TestConsoleReportConclusion(t *testing.T) {
	results, err := calculation.ComposeScenario(config.DefaultConfiguration().Inputs())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, results, "console"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	tail := lines[len(lines)-3:]
	assert.Equal(t, "Option 1 total value after 40 years: 1,734,334", tail[0])
	assert.Equal(t, "Option 2 total value after 40 years and after final taxes: 1,628,048", tail[1])
}
