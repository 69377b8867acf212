// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     smallstr
// Description: Representation model: storage modes, inline layouts, views
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package smallstr

import (
	"unsafe"

	"github.com/msto63/smallstring/pkg/bufpool"
)

// Mode identifies the active storage of a String
type Mode uint8

const (
	// ModeInline stores the bytes inside the value
	ModeInline Mode = iota

	// ModeHeap stores the bytes in an owned pool buffer
	ModeHeap
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Array lists the supported inline layouts. len(B) is the threshold N.
type Array interface {
	~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte | ~[6]byte | ~[7]byte | ~[8]byte |
		~[9]byte | ~[10]byte | ~[11]byte | ~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte |
		~[17]byte | ~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte | ~[24]byte |
		~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte | ~[30]byte | ~[31]byte | ~[32]byte |
		~[40]byte | ~[48]byte | ~[56]byte | ~[64]byte | ~[128]byte | ~[256]byte
}

// String is a byte string with inline storage below len(B) bytes.
// The zero value is the empty string.
type String[B Array] struct {
	addr   *String[B] // self pointer while heap-backed, detects copies by value
	heap   *bufpool.Buffer
	length int
	mode   Mode
	inline B
}

// Common inline layouts
type (
	String16 = String[[16]byte]
	String24 = String[[24]byte]
	String32 = String[[32]byte]
	String64 = String[[64]byte]
)

// Threshold returns N: contents of N bytes or more are heap-backed
func (s *String[B]) Threshold() int {
	return len(s.inline)
}

// Mode returns the active storage mode
func (s *String[B]) Mode() Mode {
	return s.mode
}

// Cap returns how many bytes the active storage holds, terminator excluded
func (s *String[B]) Cap() int {
	s.copyCheck()
	if s.mode == ModeHeap {
		return s.heap.Len() - 1
	}
	return len(s.inline) - 1
}

// inlineBytes views the inline array as a slice
func (s *String[B]) inlineBytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.inline)), len(s.inline))
}

// storage returns the active storage including the terminator
func (s *String[B]) storage() []byte {
	if s.mode == ModeHeap {
		return s.heap.Bytes()[:s.length+1]
	}
	return s.inlineBytes()[:s.length+1]
}

// bytes returns the logical contents
func (s *String[B]) bytes() []byte {
	return s.storage()[:s.length]
}

// fill stores text into a receiver that owns no heap buffer
func fill[B Array, T string | []byte](s *String[B], text T) {
	n := len(text)
	if n < len(s.inline) {
		buf := s.inlineBytes()
		copy(buf, text)
		buf[n] = 0
		s.length = n
		s.mode = ModeInline
		return
	}

	buf := bufpool.Default().Get(n + 1)
	data := buf.Bytes()
	copy(data, text)
	data[n] = 0
	s.heap = buf
	s.length = n
	s.mode = ModeHeap
	s.pin()
}

// take moves the contents of src into a receiver that owns no heap buffer,
// leaving src empty
func (s *String[B]) take(src *String[B]) {
	if src.mode == ModeHeap {
		s.heap = src.heap
		s.length = src.length
		s.mode = ModeHeap
		s.pin()
	} else {
		s.inline = src.inline
		s.length = src.length
		s.mode = ModeInline
	}
	src.heap = nil
	src.reset()
}

// release returns the heap buffer, if any, and resets to the empty string
func (s *String[B]) release() {
	if s.mode == ModeHeap && s.heap != nil {
		// the handle has a single owner, so a double release cannot occur here
		_ = s.heap.Release()
	}
	s.reset()
}

func (s *String[B]) reset() {
	s.heap = nil
	s.addr = nil
	s.length = 0
	s.mode = ModeInline
	s.inlineBytes()[0] = 0
}

// pin records the receiver address for copyCheck
func (s *String[B]) pin() {
	s.addr = (*String[B])(noescape(unsafe.Pointer(s)))
}

func (s *String[B]) copyCheck() {
	if s.mode == ModeHeap && s.addr != s {
		panic("smallstr: illegal use of heap-backed String copied by value")
	}
}

// noescape hides a pointer from escape analysis, as strings.Builder does.
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
