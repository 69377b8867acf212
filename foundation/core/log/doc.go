// Package log provides structured logging for the smallstring modules.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent fields, a run correlation id,
//              JSON / text / console / logfmt output and integration with
//              the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Serialized writes, nop logger, trimmed context
//
// Usage:
//
//	import sslog "github.com/msto63/smallstring/foundation/core/log"
//
//	logger := sslog.New().
//		WithLevel(sslog.LevelDebug).
//		WithFormat(sslog.FormatText).
//		WithName("bufpool")
//
//	logger.Warn("buffer released twice", sslog.Fields{"size": 64})
//	logger.LogError(err) // level follows the error severity
//
//	timer := logger.StartTimer("workload")
//	// ...
//	timer.Stop()
//
// Loggers are immutable once shared: every With* call returns a copy. Copies
// keep writing to the same output under one lock, so lines never interleave.
package log
