// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     smallstr
// Description: Copy, move and raw-text assignment, destruction
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package smallstr

import (
	"bytes"
	"unsafe"
)

// CopyFrom replaces the contents of s with a copy of src.
// s.CopyFrom(s) is a no-op, a nil src empties s.
func (s *String[B]) CopyFrom(src *String[B]) {
	s.copyCheck()
	if s == src {
		return
	}
	if src == nil {
		s.release()
		return
	}
	src.copyCheck()

	s.release()
	fill(s, src.bytes())
}

// MoveFrom replaces the contents of s with those of src and leaves src
// empty. Heap bytes change owner without copying. s.MoveFrom(s) is a no-op,
// a nil src empties s.
func (s *String[B]) MoveFrom(src *String[B]) {
	s.copyCheck()
	if s == src {
		return
	}
	if src != nil {
		src.copyCheck()
	}

	s.release()
	if src != nil {
		s.take(src)
	}
}

// Assign replaces the contents of s with text. On error s is unchanged.
func (s *String[B]) Assign(text string) error {
	s.copyCheck()
	if err := validateText("Assign", text); err != nil {
		return err
	}

	s.release()
	fill(s, text)
	return nil
}

// AssignCString replaces the contents of s with the bytes before the first
// NUL in raw. raw may alias the contents of s. On error s is unchanged.
func (s *String[B]) AssignCString(raw []byte) error {
	s.copyCheck()
	n, err := terminated("AssignCString", raw)
	if err != nil {
		return err
	}

	text := raw[:n]
	if overlaps(text, s.storage()) {
		text = bytes.Clone(text)
	}

	s.release()
	fill(s, text)
	return nil
}

// Release returns the heap buffer to its pool and leaves the empty string.
// Calling it again is a no-op.
func (s *String[B]) Release() {
	s.copyCheck()
	s.release()
}

func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}
