// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     smallstr
// Description: Size, bounds-checked indexed access and terminated view
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package smallstr

import (
	sserrors "github.com/msto63/smallstring/foundation/core/errors"
)

// Size returns the number of bytes, terminator excluded
func (s *String[B]) Size() int {
	return s.length
}

// At returns the byte at pos. pos outside [0, Size()) fails with an error
// wrapping ErrIndexOutOfRange.
func (s *String[B]) At(pos int) (byte, error) {
	s.copyCheck()
	if pos < 0 || pos >= s.length {
		return 0, sserrors.IndexOutOfRange(sserrors.ModuleSmallstr, "At", pos, s.length)
	}
	return s.storage()[pos], nil
}

// Ref returns a pointer to the byte at pos in the active storage. It is
// invalidated by the next assignment or Release.
func (s *String[B]) Ref(pos int) (*byte, error) {
	s.copyCheck()
	if pos < 0 || pos >= s.length {
		return nil, sserrors.IndexOutOfRange(sserrors.ModuleSmallstr, "Ref", pos, s.length)
	}
	return &s.storage()[pos], nil
}

// CString returns a read-only view of the contents followed by a NUL byte,
// or nil for the empty string. The view aliases s and is invalidated by the
// next assignment or Release.
func (s *String[B]) CString() []byte {
	s.copyCheck()
	if s.length == 0 {
		return nil
	}
	return s.storage()[: s.length+1 : s.length+1]
}
