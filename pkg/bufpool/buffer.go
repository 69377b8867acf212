// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     bufpool
// Description: Exclusive buffer handle with single-release semantics
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bufpool

import (
	"sync/atomic"

	sserrors "github.com/msto63/smallstring/foundation/core/errors"
	sslog "github.com/msto63/smallstring/foundation/core/log"
)

// Buffer is the owning handle of a pooled byte buffer
type Buffer struct {
	data     []byte
	slot     *[]byte
	n        int
	class    int
	pool     *Pool
	released atomic.Bool
}

// Bytes returns the usable bytes, nil after Release
func (b *Buffer) Bytes() []byte {
	if b.released.Load() {
		return nil
	}
	return b.data[:b.n]
}

// Len returns the requested size
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the capacity of the underlying class
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Released reports whether the buffer went back to its pool
func (b *Buffer) Released() bool {
	return b.released.Load()
}

// Release returns the buffer to its pool. A second call is reported with
// CodeDoubleRelease and has no effect.
func (b *Buffer) Release() error {
	if b == nil {
		return nil
	}

	p := b.pool
	if !b.released.CompareAndSwap(false, true) {
		p.doubleReleases.Add(1)
		err := sserrors.DoubleRelease(sserrors.ModuleBufpool, "Release", b.n)
		p.logger.Warn("buffer released twice", sslog.Fields{
			"size":  b.n,
			"class": b.Cap(),
		})
		return err
	}

	p.releases.Add(1)
	p.live.Add(-1)
	p.liveBytes.Add(-int64(b.n))
	p.put(b)

	return nil
}
