// File: chain.go
// Title: Validator Chain Implementation
// Description: Runs several rules against one value and merges their
//              results, optionally stopping at the first failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2025-03-02 v0.2.0: Chain name fills missing fields, context removed

package validation

// ValidatorChain applies validators to one value in order. By default every
// validator runs and all errors are collected.
type ValidatorChain struct {
	name       string
	validators []Validator
	stopEarly  bool
}

// NewValidatorChain creates a chain. The optional name becomes the Field of
// errors that carry none.
func NewValidatorChain(name ...string) *ValidatorChain {
	c := &ValidatorChain{}
	if len(name) > 0 {
		c.name = name[0]
	}
	return c
}

// Add appends a validator
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc appends a validator function
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	return c.Add(fn)
}

// StopOnFirstError makes the chain return after the first failing validator
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopEarly = stop
	return c
}

// Validate implements Validator
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	combined := NewValidationResult()
	for _, validator := range c.validators {
		result := validator.Validate(value)
		if result.Valid {
			continue
		}

		combined.Valid = false
		for _, err := range result.Errors {
			if err.Field == "" {
				err.Field = c.name
			}
			combined.Errors = append(combined.Errors, err)
		}
		if c.stopEarly {
			break
		}
	}
	return combined
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// Length returns the number of validators
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}
