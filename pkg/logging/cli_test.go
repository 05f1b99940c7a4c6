package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIHandler_Levels(t *testing.T) {
	tests := []struct {
		name      string
		log       func(*slog.Logger)
		wantColor string
	}{
		{"info is green", func(l *slog.Logger) { l.Info("msg") }, colorGreen},
		{"warn is yellow", func(l *slog.Logger) { l.Warn("msg") }, colorYellow},
		{"error is red", func(l *slog.Logger) { l.Error("msg") }, colorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewCLIHandler(&buf, slog.LevelDebug))

			tt.log(logger)

			out := buf.String()
			assert.Contains(t, out, "msg")
			assert.Contains(t, out, tt.wantColor)
			assert.Contains(t, out, colorReset)
		})
	}
}

func TestCLIHandler_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelWarn))

	logger.Info("filtered")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestCLIHandler_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("imported", "file", "grades.csv", "rows", 8)

	out := buf.String()
	assert.Contains(t, out, "imported")
	assert.Contains(t, out, "file=grades.csv")
	assert.Contains(t, out, "rows=8")
}

func TestCLIHandler_Group(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	grouped := handler.WithGroup("import")
	require.NotEqual(t, handler, grouped)

	slog.New(grouped).Info("done")
	assert.Contains(t, buf.String(), "[import] done")
}

func TestCLIHandler_EmptyGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	assert.Equal(t, handler, handler.WithGroup(""))
}

func TestNewCLILogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger := NewCLILogger(level)
		require.NotNil(t, logger)
	}
}

func TestSetDefaultCLILogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetDefaultCLILogger("debug")
	require.NotNil(t, slog.Default())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"  debug  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
