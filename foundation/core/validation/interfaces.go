// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the Validator interface, the structured result types
//              and their conversion into foundation errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces and types
// - 2025-03-02 v0.2.0: Dropped context variants, ToError wraps all messages

package validation

import (
	"fmt"
	"strings"

	sserror "github.com/msto63/smallstring/foundation/core/error"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Value is required but missing
	CodeType     = "VALIDATION_TYPE"     // Value has the wrong Go type
	CodeRange    = "VALIDATION_RANGE"    // Value is below a lower bound
	CodeOneOf    = "VALIDATION_ONE_OF"   // Value is not in the allowed set
	CodeCustom   = "VALIDATION_CUSTOM"   // Custom validation rules
)

// Validator defines the interface for all validation functions
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single failed rule
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationErrorWithField creates a failed result for one field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	result := NewValidationResult()
	result.AddFieldError(code, field, message, value)
	return result
}

// AddFieldError records a failed rule and marks the result invalid
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// FirstError returns the first validation error or nil
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns one "field: message" line per error
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Error()
	}
	return messages
}

// HasError reports whether any error carries code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result into a CodeValidationFailed error.
// Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return sserror.New("validation failed").
			WithCode(sserror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := sserror.New(strings.Join(r.ErrorMessages(), "; ")).
		WithCode(sserror.CodeValidationFailed).
		WithDetail("validation_code", first.Code)

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("total_errors", len(r.Errors))
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	if len(r.Errors) == 0 {
		return "ValidationResult{valid: false}"
	}
	return fmt.Sprintf("ValidationResult{valid: false, errors: %d, first: %s}", len(r.Errors), r.Errors[0].Error())
}

// Error renders the error as "field: message"
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
