// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     smallstr
// Description: Construction from text, C-style bytes, copy and move
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package smallstr

import (
	"bytes"
	"strings"

	sserror "github.com/msto63/smallstring/foundation/core/error"
	sserrors "github.com/msto63/smallstring/foundation/core/errors"
)

// ErrIndexOutOfRange is wrapped by every failed indexed access
var ErrIndexOutOfRange = sserrors.ErrIndexOutOfRange

// ErrInvalidInput is wrapped by every rejected construction or assignment input
var ErrInvalidInput = sserrors.ErrInvalidInput

// New builds a String from text. Text holding a NUL byte has no terminated
// form and is rejected.
func New[B Array](text string) (*String[B], error) {
	if err := validateText("New", text); err != nil {
		return nil, err
	}
	s := new(String[B])
	fill(s, text)
	return s, nil
}

// MustNew is like New but panics on invalid text
func MustNew[B Array](text string) *String[B] {
	s, err := New[B](text)
	if err != nil {
		panic(err)
	}
	return s
}

// FromCString builds a String from the bytes before the first NUL in raw.
// raw is not retained.
func FromCString[B Array](raw []byte) (*String[B], error) {
	n, err := terminated("FromCString", raw)
	if err != nil {
		return nil, err
	}
	s := new(String[B])
	fill(s, raw[:n])
	return s, nil
}

// Clone returns an independent copy of src. A nil src yields the empty string.
func Clone[B Array](src *String[B]) *String[B] {
	s := new(String[B])
	if src == nil {
		return s
	}
	src.copyCheck()
	fill(s, src.bytes())
	return s
}

// Take moves the contents of src into a new String without copying heap
// bytes. src is left empty. A nil src yields the empty string.
func Take[B Array](src *String[B]) *String[B] {
	s := new(String[B])
	if src == nil {
		return s
	}
	src.copyCheck()
	s.take(src)
	return s
}

func validateText(operation, text string) error {
	if pos := strings.IndexByte(text, 0); pos >= 0 {
		return sserrors.NewErrorBuilder(sserrors.ModuleSmallstr).
			Operation(operation).
			Messagef("text holds a NUL byte at position %d", pos).
			Cause(ErrInvalidInput).
			Detail("position", pos).
			Detail("length", len(text)).
			Severity(sserror.SeverityLow).
			Build()
	}
	return nil
}

// terminated returns the length of raw up to its first NUL
func terminated(operation string, raw []byte) (int, error) {
	if raw == nil {
		return 0, sserrors.InvalidInput(sserrors.ModuleSmallstr, operation, nil, "NUL-terminated bytes")
	}
	n := bytes.IndexByte(raw, 0)
	if n < 0 {
		return 0, sserrors.InvalidInput(sserrors.ModuleSmallstr, operation, len(raw), "NUL-terminated bytes")
	}
	return n, nil
}
