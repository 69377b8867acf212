// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry passed to formatters and the Fields
//              type used to attach structured data.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of log entries
// - 2025-03-02 v0.2.0: Removed request/user context and field helpers,
//                       sorted field keys

package log

import (
	"sort"
	"time"
)

// Entry is one log record handed to a Formatter
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Caller        *CallerInfo
}

// CallerInfo locates the logging call site
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields are structured key-value pairs attached to an entry
type Fields map[string]interface{}

// With returns a new Fields holding f overlaid by each set in order.
// Later keys win.
func (f Fields) With(sets ...Fields) Fields {
	size := len(f)
	for _, set := range sets {
		size += len(set)
	}

	result := make(Fields, size)
	for k, v := range f {
		result[k] = v
	}
	for _, set := range sets {
		for k, v := range set {
			result[k] = v
		}
	}
	return result
}

// Clone returns a shallow copy, or nil for nil
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	return f.With()
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithCaller records the call site
func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{Function: function, File: file, Line: line}
	return e
}
