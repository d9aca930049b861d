package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	} {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{Level: "warn", Format: "JSON"}.New(&buf)

	log.Info("dropped")
	log.Warn("kept", slog.String("campaign_id", "camp1"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "camp1", rec["campaign_id"])
}

func TestLoggerFormatFallback(t *testing.T) {
	assert.Equal(t, "text", Logger{Format: "yaml"}.SlogFormat())
}
