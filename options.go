package bnctx

import "github.com/charmbracelet/log"

// Option configures a Context.
type Option func(*options)

type options struct {
	cfg    Config
	alloc  Allocator
	queue  ErrorQueue
	logger *log.Logger
}

// WithConfig replaces the default configuration. An invalid config panics
// in New.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithAllocator sets the allocator backing marker and pool storage.
// Each context gets its own HeapAllocator by default.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithErrorQueue sets where failures are reported. Defaults to DefaultQueue().
func WithErrorQueue(q ErrorQueue) Option {
	return func(o *options) {
		o.queue = q
	}
}

// WithLogger sets the logger. Without it the context logs through
// log.Default() with prefix bnctx at the configured level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		panic(err.Error())
	}
	if o.alloc == nil {
		o.alloc = &HeapAllocator{}
	}
	if o.queue == nil {
		o.queue = DefaultQueue()
	}
	if o.logger == nil {
		lvl, _ := o.cfg.level()
		o.logger = log.Default().WithPrefix("bnctx")
		o.logger.SetLevel(lvl)
	}
	return o
}
