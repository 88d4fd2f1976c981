// Package bnctx implements a scoped pool of temporary numeric buffers for
// big-number arithmetic.
//
// # Overview
//
// Arithmetic routines such as modular exponentiation need a handful of
// scratch integers per step, and they call sub-routines that need their
// own. Allocating and freeing each of them dominates the cost of the
// arithmetic. A Context keeps one growing pool of buffers and a stack of
// scope markers instead:
//
//   - Begin records how many temporaries are in use
//   - Get hands out the next pooled buffer, reset to zero
//   - End rewinds to the recorded count, making the buffers reusable
//
// Storage is recycled, never freed, until the context is released.
//
// # Basic Usage
//
//	ctx := bnctx.NewBig()
//	defer ctx.Release()
//
//	ctx.Begin()
//	t, err := ctx.Get()
//	if err != nil {
//		ctx.End()
//		return err
//	}
//	t.Mul(a, b)
//	ctx.End() // t must not be used after this
//
// Scopes nest freely; a sub-routine simply opens its own.
//
// # Failure
//
// Once any allocation fails the context is failed for good. Begin and End
// become no-ops and every Get returns an error wrapping
// ErrTooManyTemporaries. The failure is reported to the ErrorQueue exactly
// once, even when it happened inside Begin, which has no way to return it:
// the report is then made by the next Get.
//
// A failed context may be released with scopes still open.
//
// # Thread Safety
//
// A Context is not goroutine-safe. Use a ContextPool to give each
// goroutine its own:
//
//	pool := bnctx.NewPool(func() *bnctx.Context[big.Int] { return bnctx.NewBig() })
//	ctx := pool.Get()
//	defer pool.Put(ctx)
//
// # Configuration
//
// Config can be loaded from TOML:
//
//	marker_initial_capacity = 32
//	max_temporaries = 1024
//	log_level = "warn"
package bnctx
