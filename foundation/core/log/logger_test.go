// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, derived loggers, level
//              filtering, error integration and the performance timer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2025-03-02 v0.2.0: Correlation id, LogError severity mapping, timer

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	sserror "github.com/msto63/smallstring/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
	})
	return logger, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.Name() != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.Name())
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug)

	if derived == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if derived.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", derived.GetLevel(), LevelDebug)
	}
	// Original logger should be unchanged
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", entries[0]["level"], entries[1]["level"])
	}
}

func TestLoggerContextFields(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger := base.
		WithName("bufpool").
		WithCorrelationID("run-42").
		WithField("class", 64).
		WithFields(Fields{"mode": "heap"})

	logger.Info("buffer acquired", Fields{"size": 40})
	base.Info("plain")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	tests := []struct {
		key  string
		want interface{}
	}{
		{"logger", "bufpool"},
		{"correlation_id", "run-42"},
		{"class", float64(64)},
		{"mode", "heap"},
		{"size", float64(40)},
		{"message", "buffer acquired"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if first[tt.key] != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, first[tt.key], tt.want)
			}
		})
	}

	if _, ok := entries[1]["class"]; ok {
		t.Error("derived fields leaked into the base logger")
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity logs at info",
			err:       sserror.New("out of range").WithCode(sserror.CodeIndexOutOfRange),
			wantLevel: "info",
			wantCode:  "INDEX_OUT_OF_RANGE",
		},
		{
			name:      "high severity logs at error",
			err:       sserror.New("released twice").WithCode(sserror.CodeDoubleRelease),
			wantLevel: "error",
			wantCode:  "DOUBLE_RELEASE",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.wantLevel)
			}
			if entries[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)

	logger.Info("hidden")
	logger.SetLevel(LevelInfo)
	logger.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("message below level was written")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("message at level was not written")
	}
	if !logger.IsLevelEnabled(LevelWarn) || logger.IsLevelEnabled(LevelDebug) {
		t.Error("IsLevelEnabled() disagrees with SetLevel()")
	}
}

func TestLoggerWithCaller(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.WithCaller(0).Info("where")

	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("caller missing from %q", buf.String())
	}
}

func TestLoggerConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			derived := logger.WithField("worker", id)
			for j := 0; j < 25; j++ {
				derived.Info("tick")
			}
		}(i)
	}
	wg.Wait()

	if entries := decodeLines(t, buf); len(entries) != 200 {
		t.Errorf("got %d entries, want 200", len(entries))
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("nop logger should not enable any level")
	}
	logger.Error("discarded")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelDebug, FormatText)
	SetDefault(logger)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("default logger wrote %d lines, want 4", got)
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("workload").WithField("count", 3)
	if !timer.IsRunning() {
		t.Fatal("timer should be running after start")
	}

	timer.Stop()
	if timer.IsRunning() {
		t.Error("timer should not be running after Stop()")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["message"] != "workload completed" {
		t.Errorf("message = %v", entries[0]["message"])
	}
	if _, ok := entries[0]["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("workload").StopWithError(errors.New("leak"))

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["level"] != "error" || entries[0]["error"] != "leak" {
		t.Errorf("unexpected entry: %v", entries[0])
	}
	if entries[0]["success"] != false {
		t.Errorf("success = %v, want false", entries[0]["success"])
	}
}
