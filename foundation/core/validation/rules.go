// File: rules.go
// Title: Typed Validation Rules
// Description: Generic field rules used by configuration validation: lower
//              bounds, allowed sets and case-insensitive keyword sets.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial rule set

package validation

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Min accepts values of type T that are at least lower
func Min[T cmp.Ordered](field string, lower T) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		v, ok := value.(T)
		if !ok {
			return typeMismatch[T](field, value)
		}
		if v < lower {
			result := NewValidationErrorWithField(CodeRange, field,
				fmt.Sprintf("expected at least %v, got %v", lower, v), v)
			result.Errors[0].Expected = lower
			return result
		}
		return NewValidationResult()
	}
}

// In accepts values of type T contained in allowed
func In[T comparable](field string, allowed ...T) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		v, ok := value.(T)
		if !ok {
			return typeMismatch[T](field, value)
		}
		if !slices.Contains(allowed, v) {
			return oneOfMismatch(field, v, allowed)
		}
		return NewValidationResult()
	}
}

// OneOf accepts strings matching one of allowed, ignoring case
func OneOf(field string, allowed ...string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		v, ok := value.(string)
		if !ok {
			return typeMismatch[string](field, value)
		}
		for _, a := range allowed {
			if strings.EqualFold(a, v) {
				return NewValidationResult()
			}
		}
		return oneOfMismatch(field, v, allowed)
	}
}

// Required rejects the zero value of T
func Required[T comparable](field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		var zero T
		v, ok := value.(T)
		if !ok {
			return typeMismatch[T](field, value)
		}
		if v == zero {
			return NewValidationErrorWithField(CodeRequired, field, "value is required", nil)
		}
		return NewValidationResult()
	}
}

func oneOfMismatch[T any](field string, v T, allowed []T) ValidationResult {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprint(a)
	}
	expected := strings.Join(parts, ", ")
	result := NewValidationErrorWithField(CodeOneOf, field,
		fmt.Sprintf("expected one of %s, got %v", expected, v), v)
	result.Errors[0].Expected = expected
	return result
}

func typeMismatch[T any](field string, value interface{}) ValidationResult {
	var zero T
	return NewValidationErrorWithField(CodeType, field,
		fmt.Sprintf("expected %T, got %T", zero, value), value)
}
