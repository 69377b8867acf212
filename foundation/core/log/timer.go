// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with checkpoints and results
// - 2025-03-02 v0.2.0: Reduced to Stop / StopWithError

package log

import (
	"time"
)

// Timer measures one operation. It logs once, on the first Stop or
// StopWithError.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer for operation. A nil logger measures without logging.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field logged on completion
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" and returns the elapsed time.
// Calls after the first return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, "completed", nil)
}

// StopWithError logs "<operation> failed" at error level with err
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, "failed", err)
}

// IsRunning returns true until the timer is stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, outcome string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}
	fields := Fields{"duration_ms": float64(elapsed.Nanoseconds()) / 1e6}
	if err != nil {
		fields["success"] = false
	}
	t.logger.log(level, t.operation+" "+outcome, err, t.fields, fields)
	return elapsed
}
