package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		" DEBUG ":  slog.LevelDebug,
		"warn":     slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"info":     slog.LevelInfo,
		"":         slog.LevelInfo,
		"verbose?": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Module: "sitenav", Version: "v1.0.0", Level: "warn", Writer: &buf})

	l.Info("dropped")
	l.Warn("kept", "path", "/posts/hertz")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "sitenav", rec["module"])
	assert.Equal(t, "v1.0.0", rec["version"])
	assert.Equal(t, "/posts/hertz", rec["path"])
	assert.NotContains(t, rec, "source")
}

func TestNewTextDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Module: "sitenav", Level: "debug", Format: FormatText, Writer: &buf})

	l.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "source=")
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "error")

	var buf bytes.Buffer
	l := New(Options{Writer: &buf})
	l.Warn("dropped")
	assert.Empty(t, buf.String())
}
