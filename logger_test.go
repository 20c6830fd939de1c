package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newDefaultLogger(WARN)
	logger.SetOutput(&buf)

	logger.Debug("debug message", nil)
	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Error("error message", errors.New("boom"), nil)

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("messages below WARN should be suppressed, got: %q", output)
	}
	if !strings.Contains(output, "warn message") {
		t.Errorf("warn message missing from output: %q", output)
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("error message missing from output: %q", output)
	}
}

func TestLoggerQuietMode(t *testing.T) {
	var buf bytes.Buffer
	logger := newDefaultLogger(DEBUG)
	logger.SetOutput(&buf)
	logger.SetQuiet(true)

	logger.Warn("warn message", nil)
	logger.Error("error message", nil, nil)

	output := buf.String()
	if strings.Contains(output, "warn message") {
		t.Errorf("quiet mode should suppress warnings, got: %q", output)
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("quiet mode should still log errors, got: %q", output)
	}
}

func TestLoggerStats(t *testing.T) {
	var buf bytes.Buffer
	logger := newDefaultLogger(DEBUG)
	logger.SetOutput(&buf)

	logger.Warn("first warning", nil)
	logger.Error("first error", errors.New("boom"), nil)
	logger.Error("second error", nil, nil)

	stats := logger.GetStats()
	if stats.TotalErrors != 2 {
		t.Errorf("TotalErrors = %d, want 2", stats.TotalErrors)
	}
	if stats.TotalWarnings != 1 {
		t.Errorf("TotalWarnings = %d, want 1", stats.TotalWarnings)
	}
	if stats.LastError != "second error" {
		t.Errorf("LastError = %q, want %q", stats.LastError, "second error")
	}
	if !logger.HasErrors() {
		t.Error("HasErrors() = false after errors were logged")
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newDefaultLogger(DEBUG)
	logger.SetOutput(&buf)

	logger.Info("with fields", map[string]any{
		"file": "a.txt",
		"mode": 2,
	})

	output := buf.String()
	if !strings.Contains(output, "file=a.txt") {
		t.Errorf("field file missing from output: %q", output)
	}
	if !strings.Contains(output, "mode=2") {
		t.Errorf("field mode missing from output: %q", output)
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
