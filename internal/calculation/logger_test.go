package calculation

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.Debugf("debug %d", 1)
	l.Infof("info %s", "x")
	l.Warnf("warn")
	l.Errorf("error %v", true)

	out := buf.String()
	assert.Contains(t, out, `level=DEBUG msg="debug 1"`)
	assert.Contains(t, out, `level=INFO msg="info x"`)
	assert.Contains(t, out, "level=WARN msg=warn")
	assert.Contains(t, out, `level=ERROR msg="error true"`)
}

func TestNewSlogLoggerNilUsesDefault(t *testing.T) {
	l := NewSlogLogger(nil)
	assert.Same(t, slog.Default(), l.L)
}

func TestNopLoggerDoesNothing(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debugf("x")
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}
