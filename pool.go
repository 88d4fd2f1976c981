package bnctx

import "sync"

// ContextPool is a mutex-protected free list of contexts. A Context itself
// must only be used by one goroutine at a time; the pool lets goroutines
// check one out each and hand it back warm.
type ContextPool[T any] struct {
	mu     sync.Mutex
	newFn  func() *Context[T]
	idle   []*Context[T]
	closed bool

	created   int
	reused    int
	discarded int
}

// NewPool creates a pool that builds contexts with newFn when none is idle.
func NewPool[T any](newFn func() *Context[T]) *ContextPool[T] {
	return &ContextPool[T]{newFn: newFn}
}

// Get checks out an idle context, or creates one.
func (p *ContextPool[T]) Get() *Context[T] {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("bnctx: Get on closed ContextPool")
	}
	if n := len(p.idle); n > 0 {
		c := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		p.reused++
		p.mu.Unlock()
		return c
	}
	p.created++
	p.mu.Unlock()
	return p.newFn()
}

// Put hands c back. A failed context is released and dropped since it can
// never hand out temporaries again. Putting back a live context that still
// holds temporaries or open scopes, a released context, or one that is
// already idle panics.
func (p *ContextPool[T]) Put(c *Context[T]) {
	if c == nil {
		return
	}
	if c.released {
		panic("bnctx: Put of released context")
	}
	if c.Failed() {
		c.Release()
		p.mu.Lock()
		p.discarded++
		p.mu.Unlock()
		return
	}
	if c.Depth() != 0 {
		panic("bnctx: Put of context with open scopes")
	}
	if c.Used() != 0 {
		panic("bnctx: Put of context holding temporaries")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, idle := range p.idle {
		if idle == c {
			panic("bnctx: Put of context already in the pool")
		}
	}
	if p.closed {
		c.Release()
		p.discarded++
		return
	}
	p.idle = append(p.idle, c)
}

// Close releases every idle context. Later Puts release their context
// immediately and later Gets panic.
func (p *ContextPool[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, c := range p.idle {
		c.Release()
		p.idle[i] = nil
	}
	p.idle = nil
	p.closed = true
}

// Metrics returns a snapshot of pool statistics.
func (p *ContextPool[T]) Metrics() PoolMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolMetrics{
		Idle:      len(p.idle),
		Created:   p.created,
		Reused:    p.reused,
		Discarded: p.discarded,
	}
}

// PoolMetrics contains statistical information about a ContextPool.
type PoolMetrics struct {
	Idle      int // Contexts waiting in the free list
	Created   int // Contexts built by the pool
	Reused    int // Gets served from the free list
	Discarded int // Contexts released by Put because they failed or the pool was closed
}
