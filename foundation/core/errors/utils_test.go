// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package errors

import (
	"errors"
	"strings"
	"testing"

	sserror "github.com/msto63/smallstring/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(sserror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Error() != "testmodule.test_op: test error" {
			t.Errorf("Error() = %q", err.Error())
		}
		if err.Severity() != sserror.SeverityHigh {
			t.Errorf("Severity() = %v", err.Severity())
		}
		if err.Code() != sserror.CodeInternal {
			t.Errorf("Code() = %v, want %v", err.Code(), sserror.CodeInternal)
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
		if err.Error() != "testmodule.test_op failed: underlying error" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("code inherited from cause", func(t *testing.T) {
		err := NewErrorBuilder("outer").
			Cause(ErrDoubleRelease).
			Build()

		if err.Code() != sserror.CodeDoubleRelease {
			t.Errorf("Code() = %v, want %v", err.Code(), sserror.CodeDoubleRelease)
		}
	})
}

func TestIndexOutOfRange(t *testing.T) {
	err := IndexOutOfRange(ModuleSmallstr, "At", 6, 6)

	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("expected errors.Is(err, ErrIndexOutOfRange)")
	}
	if !sserror.HasCode(err, sserror.CodeIndexOutOfRange) {
		t.Error("expected CodeIndexOutOfRange")
	}
	if !strings.Contains(err.Error(), "position 6 out of range [0,6)") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsModuleOperation(err, ModuleSmallstr, "At") {
		t.Errorf("module/operation = %q/%q", ExtractModule(err), ExtractOperation(err))
	}
	details := ExtractDetails(err)
	if details["position"] != 6 || details["length"] != 6 {
		t.Errorf("details = %v", details)
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModuleSmallstr, "New", "a\x00b", "text without NUL bytes")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput)")
	}
	if errors.Is(err, ErrIndexOutOfRange) {
		t.Error("unexpected match with ErrIndexOutOfRange")
	}
	if err.Code() != sserror.CodeInvalidInput {
		t.Errorf("Code() = %v", err.Code())
	}
}

func TestDoubleRelease(t *testing.T) {
	err := DoubleRelease(ModuleBufpool, "Release", 64)

	if !errors.Is(err, ErrDoubleRelease) {
		t.Error("expected errors.Is(err, ErrDoubleRelease)")
	}
	if err.Severity() != sserror.SeverityHigh {
		t.Errorf("Severity() = %v", err.Severity())
	}
}

func TestOutOfRangeAndNotFound(t *testing.T) {
	oor := OutOfRange(ModuleConfig, "Validate", 300, 1, 256)
	if oor.Code() != sserror.CodeValueOutOfRange {
		t.Errorf("Code() = %v", oor.Code())
	}

	nf := NotFound(ModuleConfig, "Load", "/etc/sso.toml")
	if nf.Code() != sserror.CodeNotFound {
		t.Errorf("Code() = %v", nf.Code())
	}
	if !strings.Contains(nf.Error(), "/etc/sso.toml not found") {
		t.Errorf("Error() = %q", nf.Error())
	}
}

func TestOperationFailed(t *testing.T) {
	cause := errors.New("disk full")
	err := OperationFailed(ModuleConfig, "Save", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
	if err.Severity() != sserror.SeverityHigh {
		t.Errorf("Severity() = %v", err.Severity())
	}
}

func TestExtractFromPlainError(t *testing.T) {
	plain := errors.New("plain")
	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails(plain) should be nil")
	}
	if ExtractModule(plain) != "" || ExtractOperation(plain) != "" {
		t.Error("expected empty module and operation")
	}
}
