package bnctx

// Used returns the number of temporaries bound to open scopes.
func (c *Context[T]) Used() int {
	return c.used
}

// PoolSize returns the number of buffers the context owns.
func (c *Context[T]) PoolSize() int {
	return len(c.pool)
}

// Depth returns the number of open scopes.
func (c *Context[T]) Depth() int {
	return c.markers.depth
}

// Failed reports whether the context has run out of memory. A failed
// context stays failed.
func (c *Context[T]) Failed() bool {
	return c.failed
}

// Utilization returns the ratio of used temporaries to pool size (0.0 to 1.0).
// Returns 0.0 if the pool is empty.
func (c *Context[T]) Utilization() float64 {
	if len(c.pool) == 0 {
		return 0
	}
	return float64(c.used) / float64(len(c.pool))
}

// Metrics returns a snapshot of context statistics.
func (c *Context[T]) Metrics() ContextMetrics {
	return ContextMetrics{
		Used:           c.used,
		PeakUsed:       c.peak,
		PoolSize:       len(c.pool),
		Depth:          c.markers.depth,
		MarkerCapacity: len(c.markers.entries),
		Failed:         c.failed,
		Utilization:    c.Utilization(),
	}
}

// ContextMetrics contains statistical information about a context.
type ContextMetrics struct {
	Used           int     // Temporaries bound to open scopes
	PeakUsed       int     // High-water mark of Used, never reset
	PoolSize       int     // Buffers owned by the context
	Depth          int     // Open scopes
	MarkerCapacity int     // Scopes the marker stack holds before growing
	Failed         bool    // Sticky failure flag
	Utilization    float64 // Ratio of used to pooled buffers (0.0-1.0)
}
