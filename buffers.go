package bnctx

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Buffers creates, resets and releases the numeric buffers a Context pools.
type Buffers[T any] interface {
	// New creates a buffer. It may fail.
	New() (*T, error)
	// Zero resets x to its zero value.
	Zero(x *T)
	// Release drops x's storage. It must accept nil.
	Release(x *T)
}

// BigBuffers pools math/big integers.
type BigBuffers struct{}

// New returns a fresh big.Int.
func (BigBuffers) New() (*big.Int, error) {
	return new(big.Int), nil
}

// Zero sets x to 0, keeping its storage.
func (BigBuffers) Zero(x *big.Int) {
	x.SetInt64(0)
}

// Release drops x's storage.
func (BigBuffers) Release(x *big.Int) {
	if x != nil {
		x.SetBits(nil)
	}
}

// DecimalBuffers pools apd decimals.
type DecimalBuffers struct{}

// New returns a fresh decimal.
func (DecimalBuffers) New() (*apd.Decimal, error) {
	return new(apd.Decimal), nil
}

// Zero sets d to 0 with exponent 0.
func (DecimalBuffers) Zero(d *apd.Decimal) {
	d.SetInt64(0)
}

// Release drops d's storage.
func (DecimalBuffers) Release(d *apd.Decimal) {
	if d != nil {
		*d = apd.Decimal{}
	}
}

// BuffersFunc adapts three functions to the Buffers interface.
// A nil ReleaseFunc is allowed.
type BuffersFunc[T any] struct {
	NewFunc     func() (*T, error)
	ZeroFunc    func(*T)
	ReleaseFunc func(*T)
}

// New calls NewFunc.
func (f BuffersFunc[T]) New() (*T, error) {
	return f.NewFunc()
}

// Zero calls ZeroFunc.
func (f BuffersFunc[T]) Zero(x *T) {
	f.ZeroFunc(x)
}

// Release calls ReleaseFunc unless it or x is nil.
func (f BuffersFunc[T]) Release(x *T) {
	if f.ReleaseFunc != nil && x != nil {
		f.ReleaseFunc(x)
	}
}
