package bnctx

import (
	"fmt"
	"math/big"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/apd/v3"
)

// Context hands out temporaries of type T bound to nested scopes.
// Buffers are recycled, never freed, until Release. Not goroutine-safe;
// use a ContextPool to share contexts between goroutines.
type Context[T any] struct {
	buffers Buffers[T]
	alloc   Allocator
	queue   ErrorQueue
	logger  *log.Logger
	maxTemp int

	pool    []*T
	used    int // pool[:used] is bound to open scopes
	peak    int
	markers markerStack

	failed     bool // sticky
	errPending bool // a Begin failed and nobody has been told yet
	released   bool
}

// New creates an empty Context pooling buffers made by b.
// It panics if the configured Config is invalid.
func New[T any](b Buffers[T], opts ...Option) *Context[T] {
	o := buildOptions(opts)
	return &Context[T]{
		buffers: b,
		alloc:   o.alloc,
		queue:   o.queue,
		logger:  o.logger,
		maxTemp: o.cfg.MaxTemporaries,
		markers: markerStack{initial: o.cfg.MarkerInitialCap, alloc: o.alloc},
	}
}

// NewBig creates a Context of math/big integers.
func NewBig(opts ...Option) *Context[big.Int] {
	return New[big.Int](BigBuffers{}, opts...)
}

// NewDecimal creates a Context of apd decimals.
func NewDecimal(opts ...Option) *Context[apd.Decimal] {
	return New[apd.Decimal](DecimalBuffers{}, opts...)
}

// Begin opens a nested scope. It has no failure result: if the scope
// cannot be recorded the context fails and the next Get reports it.
// After a failure Begin does nothing.
func (c *Context[T]) Begin() {
	c.panicIfReleased()
	if c.failed {
		return
	}
	if !c.markers.push(uint(c.used)) {
		c.failed = true
		c.errPending = true
		c.logger.Warn("scope open failed, context is now inert", "depth", c.markers.depth, "used", c.used)
	}
}

// Get returns a temporary set to zero and bound to the innermost scope.
// The buffer belongs to the context: do not keep it past the matching End
// and do not release it. Once the context has failed every call returns an
// error wrapping ErrTooManyTemporaries.
func (c *Context[T]) Get() (*T, error) {
	c.panicIfReleased()
	if c.failed {
		if c.errPending {
			c.errPending = false
			c.queue.Report(ModuleBN, CodeTooManyTemporaries)
		}
		return nil, ErrTooManyTemporaries
	}

	if c.used == len(c.pool) {
		if err := c.grow(); err != nil {
			c.queue.Report(ModuleBN, CodeTooManyTemporaries)
			c.failed = true
			c.logger.Warn("temporary pool exhausted", "pool", len(c.pool), "depth", c.markers.depth, "err", err)
			return nil, fmt.Errorf("%w: %w", ErrTooManyTemporaries, err)
		}
	}

	t := c.pool[c.used]
	c.buffers.Zero(t)
	c.used++
	if c.used > c.peak {
		c.peak = c.used
	}
	return t, nil
}

// End closes the innermost scope, returning every temporary taken since the
// matching Begin to the pool. After a failure End does nothing.
func (c *Context[T]) End() {
	c.panicIfReleased()
	if c.failed {
		return
	}
	c.used = int(c.markers.pop())
}

// Scoped runs fn between Begin and End.
func (c *Context[T]) Scoped(fn func() error) error {
	c.Begin()
	defer c.End()
	return fn()
}

// Release frees every pooled buffer and the marker storage, making the
// context unusable. Every Begin must have been matched by End unless the
// context failed.
func (c *Context[T]) Release() {
	if c.released {
		return
	}
	if !c.failed && c.markers.depth != 0 {
		panic(fmt.Sprintf("bnctx: Release with %d open scopes", c.markers.depth))
	}
	for i, t := range c.pool {
		c.buffers.Release(t)
		c.pool[i] = nil
	}
	freeSlice(c.alloc, c.pool)
	c.pool = nil
	c.markers.release()
	c.used = 0
	c.released = true
}

// grow appends one new buffer to the pool. On error the pool is unchanged.
func (c *Context[T]) grow() error {
	if c.maxTemp > 0 && len(c.pool) >= c.maxTemp {
		return fmt.Errorf("pool already holds %d temporaries: %w", len(c.pool), ErrOutOfMemory)
	}
	t, err := c.buffers.New()
	if err != nil {
		return err
	}
	if len(c.pool) == cap(c.pool) {
		newCap := 2 * cap(c.pool)
		if newCap == 0 {
			newCap = 4
		}
		if c.maxTemp > 0 && newCap > c.maxTemp {
			newCap = c.maxTemp
		}
		grown, err := regrow(c.alloc, c.pool, newCap)
		if err != nil {
			c.buffers.Release(t)
			return err
		}
		c.pool = grown
	}
	c.pool = append(c.pool, t)
	return nil
}

func (c *Context[T]) panicIfReleased() {
	if c.released {
		panic("bnctx: use after Release()")
	}
}
