// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     bufpool
// Description: Size-class byte buffer pool with exclusive buffer handles
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

// Package bufpool hands out exclusively owned byte buffers and takes them back.
//
// A Buffer is the only handle to its bytes. Release is the single point of
// deallocation: the first call returns the bytes to the pool, every later call
// is reported as a double release and changes nothing.
//
//	pool := bufpool.New(bufpool.DefaultConfig())
//	buf := pool.Get(40)          // len(buf.Bytes()) == 40, cap 64
//	copy(buf.Bytes(), payload)
//	_ = buf.Release()
//
//	st := pool.Stats()            // st.Live == 0
//
// Requests are rounded up to power-of-two classes between MinClass and
// MaxClass. Larger requests are allocated exactly and never pooled.
package bufpool
