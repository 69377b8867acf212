// Package errors provides the standard error constructors for all smallstring
// modules.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Module-aware error builder plus constructors for the failures
//              the modules can report: out-of-range access, invalid input,
//              double release of a buffer, missing items and wrapped
//              operation failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-03-02 v0.2.0: Sentinel errors and constructors for string and buffer modules
//
// Every constructor returns a *error.Error whose message is prefixed with
// "<module>.<operation>: " and whose details contain "module" and
// "operation". Constructors for the access, input and release failures wrap
// a sentinel, so callers do not need to inspect codes:
//
//	b, err := s.At(7)
//	if errors.Is(err, sserrors.ErrIndexOutOfRange) {
//		// handle the bad position
//	}
//
// The builder is available for anything the constructors do not cover:
//
//	return sserrors.NewErrorBuilder(sserrors.ModuleConfig).
//		Operation("Load").
//		Cause(err).
//		Code(sserror.CodeConfigError).
//		Detail("path", path).
//		Build()
package errors
