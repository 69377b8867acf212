// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels, their names, short tags and terminal colors,
//              and parsing of level names from configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-03-02 v0.2.0: Dropped the audit level, table driven names and aliases

package log

import (
	"strings"
)

// Level represents the severity of a log entry
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelInfo describes one level in every rendering the formatters need
type levelInfo struct {
	name  string
	short string
	color string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
}

// levelAliases maps accepted spellings besides the canonical names
var levelAliases = map[string]Level{
	"trc":         LevelTrace,
	"dbg":         LevelDebug,
	"inf":         LevelInfo,
	"information": LevelInfo,
	"wrn":         LevelWarn,
	"warning":     LevelWarn,
	"err":         LevelError,
	"ftl":         LevelFatal,
}

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || l > LevelFatal {
		return levelInfo{"unknown", "???", "\033[0m"}, false
	}
	return levels[l], true
}

// String returns the lower-case level name
func (l Level) String() string {
	info, _ := l.info()
	return info.name
}

// ShortString returns the three letter tag used by the text formats
func (l Level) ShortString() string {
	info, _ := l.info()
	return info.short
}

// Color returns the ANSI color escape for console output
func (l Level) Color() string {
	info, _ := l.info()
	return info.color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name, its short tag or a common alias,
// ignoring case and surrounding space
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if info.name == name {
			return Level(l), nil
		}
	}
	if l, ok := levelAliases[name]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level new loggers start with
func DefaultLevel() Level {
	return LevelInfo
}
