package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriterInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	L().Debug("hidden")
	L().Info("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, float64(1), rec["k"])
	assert.True(t, strings.HasSuffix(rec["time"].(string), "Z"), "time should be UTC")
	assert.Equal(t, "", Path())
}

func TestSetupDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	L().Debug("detail")
	assert.Contains(t, buf.String(), "detail")
	assert.Contains(t, buf.String(), `"source"`)
}

func TestSetupFileAndCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pillar.log")
	cleanup, err := Setup(Config{Path: path})
	require.NoError(t, err)

	assert.Equal(t, path, Path())
	L().Info("to file")

	require.NoError(t, cleanup())
	assert.Equal(t, "", Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestSetupUnwritablePathFallsBackToDiscard(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Setup(Config{Path: filepath.Join(blocker, "sub", "pillar.log")})
	assert.Error(t, err)
	assert.Equal(t, "", Path())
	assert.NotNil(t, L())
}
