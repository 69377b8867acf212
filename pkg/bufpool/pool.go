// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     bufpool
// Description: Pool configuration, size classes and the default pool
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bufpool

import (
	"math/bits"
	"sync"
	"sync/atomic"

	sslog "github.com/msto63/smallstring/foundation/core/log"
)

// Config holds pool configuration
type Config struct {
	MinClass int // smallest pooled capacity in bytes (rounded up to a power of two)
	MaxClass int // largest pooled capacity in bytes
	Logger   *sslog.Logger
}

// DefaultConfig returns default pool configuration
func DefaultConfig() Config {
	return Config{
		MinClass: 32,
		MaxClass: 64 << 10,
	}
}

type sizeClass struct {
	size int
	pool sync.Pool
}

// Pool is a set of size classes, each backed by a sync.Pool
type Pool struct {
	classes  []*sizeClass
	minClass int
	maxClass int
	logger   *sslog.Logger

	// Metrics
	gets           atomic.Int64
	misses         atomic.Int64
	releases       atomic.Int64
	doubleReleases atomic.Int64
	live           atomic.Int64
	liveBytes      atomic.Int64
	oversize       atomic.Int64
}

// New creates a new pool
func New(cfg Config) *Pool {
	if cfg.MinClass <= 0 {
		cfg.MinClass = DefaultConfig().MinClass
	}
	cfg.MinClass = roundUpPow2(cfg.MinClass)
	if cfg.MaxClass < cfg.MinClass {
		cfg.MaxClass = cfg.MinClass
	}
	if cfg.Logger == nil {
		cfg.Logger = sslog.GetDefault().WithName("bufpool")
	}

	p := &Pool{
		minClass: cfg.MinClass,
		maxClass: cfg.MaxClass,
		logger:   cfg.Logger,
	}

	for size := cfg.MinClass; size <= cfg.MaxClass; size <<= 1 {
		c := &sizeClass{size: size}
		c.pool.New = func() interface{} {
			p.misses.Add(1)
			data := make([]byte, c.size)
			return &data
		}
		p.classes = append(p.classes, c)
	}

	return p
}

// Get returns an exclusive buffer whose Bytes() has length n.
// The bytes are zeroed.
func (p *Pool) Get(n int) *Buffer {
	if n < 0 {
		panic("bufpool: negative buffer size")
	}

	p.gets.Add(1)
	p.live.Add(1)
	p.liveBytes.Add(int64(n))

	idx := p.classIndex(n)
	if idx < 0 {
		p.oversize.Add(1)
		p.logger.Debug("oversize buffer allocated", sslog.Fields{
			"size":      n,
			"max_class": p.maxClass,
		})
		return &Buffer{data: make([]byte, n), n: n, class: -1, pool: p}
	}

	slot := p.classes[idx].pool.Get().(*[]byte)
	return &Buffer{data: *slot, slot: slot, n: n, class: idx, pool: p}
}

// ClassSize returns the capacity Get(n) would hand out
func (p *Pool) ClassSize(n int) int {
	if idx := p.classIndex(n); idx >= 0 {
		return p.classes[idx].size
	}
	return n
}

// MinClass returns the smallest pooled capacity
func (p *Pool) MinClass() int {
	return p.minClass
}

// MaxClass returns the largest pooled capacity
func (p *Pool) MaxClass() int {
	return p.maxClass
}

// classIndex returns the class serving n bytes, or -1 if n is above MaxClass
func (p *Pool) classIndex(n int) int {
	if n <= p.minClass {
		return 0
	}
	idx := bits.Len(uint(n-1)) - bits.Len(uint(p.minClass-1))
	if idx >= len(p.classes) {
		return -1
	}
	return idx
}

func (p *Pool) put(b *Buffer) {
	if b.class < 0 {
		return
	}
	clear(b.data)
	*b.slot = b.data
	p.classes[b.class].pool.Put(b.slot)
}

func roundUpPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

var defaultPool atomic.Pointer[Pool]

func init() {
	defaultPool.Store(New(DefaultConfig()))
}

// Default returns the package default pool
func Default() *Pool {
	return defaultPool.Load()
}

// SetDefault replaces the package default pool. Buffers acquired from the
// previous pool are still released into it. A nil pool installs a fresh
// default one.
func SetDefault(p *Pool) {
	if p == nil {
		p = New(DefaultConfig())
	}
	defaultPool.Store(p)
}
