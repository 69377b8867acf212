// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	sserrors "github.com/msto63/smallstring/foundation/core/errors"
	sslog "github.com/msto63/smallstring/foundation/core/log"
	"github.com/msto63/smallstring/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: json)
	Format string

	// Record the calling file and line
	Caller bool

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// FromConfig derives a LoggerConfig from the application configuration
func FromConfig(serviceName string, cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(serviceName)
	if cfg == nil {
		return lc
	}
	lc.Level = cfg.Log.Level
	lc.Format = cfg.Log.Format
	lc.Caller = cfg.Log.Caller
	return lc
}

// NewLogger creates a new foundation logger. Unknown level or format
// strings are reported and the defaults are used.
func NewLogger(cfg LoggerConfig) (*sslog.Logger, error) {
	var firstErr error

	level, err := sslog.ParseLevel(cfg.Level)
	if err != nil {
		firstErr = sserrors.InvalidInput(sserrors.ModuleLogging, "NewLogger", cfg.Level, "a log level")
	}

	format := sslog.FormatJSON
	if cfg.Format != "" {
		format, err = sslog.ParseFormat(cfg.Format)
		if err != nil && firstErr == nil {
			firstErr = sserrors.InvalidInput(sserrors.ModuleLogging, "NewLogger", cfg.Format, "a log format")
		}
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := sslog.NewWithConfig(sslog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.Caller,
	})

	return logger, firstErr
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *sslog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(serviceName))
	return logger
}
