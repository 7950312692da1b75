package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlog(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Debug("debug message", "month", "2024-06")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "role", "Audio")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "month=2024-06")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "role=Audio")

	require.NotNil(t, NewSlogDefault().logger)
}

func TestNew(t *testing.T) {
	t.Run("json at warn", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(buf, "WARN", "json")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "date", "2024-06-06")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"date":"2024-06-06"`)
	})

	t.Run("text default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(buf, "", "")
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := New(nil, "loud", "text")
		require.Error(t, err)
		_, err = New(nil, "info", "xml")
		require.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"Info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}
