// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Structured validation results, composable validator chains and
//              typed rules for checking configuration values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2025-03-02 v0.2.0: Typed generic rules, context variants removed

/*
Package validation collects field-level validation failures instead of
stopping at the first one.

A Validator returns a ValidationResult listing every failed rule. Results
from independent fields are merged with Combine, several rules for one value
are run by a ValidatorChain, and ToError converts a failed result into a
foundation error with CodeValidationFailed:

	result := validation.Combine(
		validation.OneOf("log.level", "debug", "info").Validate(cfg.Level),
		validation.Min("pool.min_class", 1).Validate(cfg.MinClass),
	)
	if err := result.ToError(); err != nil {
		return err
	}

Rules are typed: Min[int] rejects an int64 with CodeType rather than
converting it.
*/
package validation
