// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors used by
//              every smallstring module, so that module, operation and
//              details are filled in the same way everywhere.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-03-02 v0.2.0: Index, buffer release and configuration constructors,
//                       sentinel errors for errors.Is

package errors

import (
	"fmt"

	sserror "github.com/msto63/smallstring/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleSmallstr = "smallstr"
	ModuleBufpool  = "bufpool"
	ModuleConfig   = "config"
	ModuleLogging  = "logging"
)

// Sentinel errors. Errors built by the constructors below wrap these, so
// callers can test with errors.Is.
var (
	ErrIndexOutOfRange = sserror.New("index out of range").WithCode(sserror.CodeIndexOutOfRange)
	ErrInvalidInput    = sserror.New("invalid input").WithCode(sserror.CodeInvalidInput)
	ErrDoubleRelease   = sserror.New("buffer released twice").WithCode(sserror.CodeDoubleRelease)
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  sserror.Severity
	code      sserror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: sserror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity sserror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code sserror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error. Message defaults to "<module>.<operation>
// failed", code defaults to the cause's code or CodeInternal.
func (eb *ErrorBuilder) Build() *sserror.Error {
	qualified := eb.module
	if eb.operation != "" {
		qualified = eb.module + "." + eb.operation
	}

	message := eb.message
	if message == "" {
		message = qualified + " failed"
	} else {
		message = qualified + ": " + message
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *sserror.Error
	if eb.cause != nil {
		err = sserror.Wrap(eb.cause, message)
	} else {
		err = sserror.New(message)
	}

	code := eb.code
	if code == "" {
		code = sserror.GetCode(eb.cause)
		if code == sserror.CodeUnknown {
			code = sserror.CodeInternal
		}
	}

	return err.
		WithCode(code).
		WithOperation(qualified).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CONSTRUCTORS
// =============================================================================

// IndexOutOfRange reports an access at pos into a sequence of length bytes
func IndexOutOfRange(module, operation string, pos, length int) *sserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("position %d out of range [0,%d)", pos, length).
		Cause(ErrIndexOutOfRange).
		Code(sserror.CodeIndexOutOfRange).
		Detail("position", pos).
		Detail("length", length).
		Severity(sserror.SeverityLow).
		Build()
}

// InvalidInput reports input that violates the documented contract
func InvalidInput(module, operation string, input interface{}, expected string) *sserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("expected %s", expected).
		Cause(ErrInvalidInput).
		Code(sserror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(sserror.SeverityLow).
		Build()
}

// DoubleRelease reports a second release of a resource that has a single owner
func DoubleRelease(module, operation string, size int) *sserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("buffer of %d bytes already released", size).
		Cause(ErrDoubleRelease).
		Code(sserror.CodeDoubleRelease).
		Detail("size", size).
		Severity(sserror.SeverityHigh).
		Build()
}

// OutOfRange reports a value outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *sserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v,%v]", value, min, max).
		Code(sserror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(sserror.SeverityLow).
		Build()
}

// NotFound reports a missing item
func NotFound(module, operation string, identifier interface{}) *sserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(sserror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(sserror.SeverityMedium).
		Build()
}

// OperationFailed wraps cause with module and operation context
func OperationFailed(module, operation string, cause error) *sserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Severity(sserror.SeverityHigh).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*sserror.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
