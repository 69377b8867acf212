// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     smallstr
// Description: Byte string with inline storage for short contents
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

// Package smallstr implements a byte string that keeps short contents inside
// the value and moves longer contents to an exclusively owned pool buffer.
//
// The inline threshold N is a compile-time parameter: the byte array type B.
// A String[B] holds up to N-1 bytes inline (plus a NUL terminator). Contents
// of N bytes or more live in a *bufpool.Buffer of length+1 bytes.
//
//	s, err := smallstr.New[[25]byte]("abcdef") // inline, Size() == 6
//	t := smallstr.Take(s)                        // t holds "abcdef", s is empty
//	c := smallstr.Clone(t)                       // independent copy
//	defer c.Release()
//
// Ownership rules:
//
//   - A heap buffer has exactly one owner. Take and MoveFrom transfer it,
//     Clone and CopyFrom acquire a fresh one.
//   - Every assignment releases the buffer the receiver held before.
//   - Release returns the buffer to the pool and leaves the empty string.
//     It is idempotent.
//   - The zero value is the empty inline string, ready to use.
//   - A heap-backed String must not be copied by value. Methods panic when
//     called on such a copy. Inline values may be copied freely.
//
// A String is not safe for concurrent mutation.
package smallstr
