package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/surveyor/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for input, expected := range testCases {
		gt.Equal(t, logging.ParseLogLevel(input), expected)
	}
}

func TestNewLoggerWithFormat_AutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatAuto)
	logger.Info("answer recorded", "question_index", 2)
	logger.Debug("hidden")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record)).Required()
	gt.Equal[any](t, record["msg"], "answer recorded")
	gt.Equal[any](t, record["question_index"], float64(2))
	gt.False(t, logging.IsTerminal(&buf))
}

func TestNewLoggerWithFormat_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelWarn, &buf, logging.FormatConsole)
	logger.Info("suppressed")
	logger.Warn("shown")

	gt.S(t, buf.String()).Contains("shown")
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("suppressed")))
}
