// Package error provides structured error values for the smallstring modules.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a Code, a Severity, key/value details, the failing
//              operation and a captured stack. They wrap causes and work with
//              errors.Is and errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Reduced code set for string and buffer handling
//
// Usage:
//
//	import sserror "github.com/msto63/smallstring/foundation/core/error"
//
//	err := sserror.New("index out of range").
//		WithCode(sserror.CodeIndexOutOfRange).
//		WithOperation("smallstr.At").
//		WithDetail("position", 7)
//
//	if sserror.HasCode(err, sserror.CodeIndexOutOfRange) {
//		// caller handles the bad index
//	}
//
// Most code should not build errors directly but go through the module
// constructors in package errors (NewErrorBuilder, IndexOutOfRange,
// InvalidInput ...), which fill module and operation details uniformly.
package error
