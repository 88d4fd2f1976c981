package bnctx

import (
	"fmt"
	"math"
	"unsafe"
)

// Allocator supplies the backing storage behind marker stacks and pool slots.
// A Context never frees that storage while it is alive; it only grows it.
type Allocator interface {
	// Alloc reserves size bytes. On failure it returns an error wrapping
	// ErrOutOfMemory and reserves nothing.
	Alloc(size int) error
	// Free returns size bytes previously reserved with Alloc.
	Free(size int)
}

// HeapAllocator always succeeds and only counts live bytes.
// The Go heap does the real work.
type HeapAllocator struct {
	live int
}

// Alloc reserves size bytes.
func (h *HeapAllocator) Alloc(size int) error {
	if size < 0 {
		return fmt.Errorf("reserve %d bytes: %w", size, ErrOutOfMemory)
	}
	h.live += size
	return nil
}

// Free returns size bytes.
func (h *HeapAllocator) Free(size int) {
	h.live -= size
}

// Live returns the number of bytes currently reserved.
func (h *HeapAllocator) Live() int {
	return h.live
}

// LimitAllocator refuses any reservation that would take the live byte
// count past its limit. It is the way to make a Context run out of memory
// deterministically.
type LimitAllocator struct {
	limit int
	live  int
}

// NewLimitAllocator creates a LimitAllocator with a budget of limit bytes.
func NewLimitAllocator(limit int) *LimitAllocator {
	return &LimitAllocator{limit: limit}
}

// Alloc reserves size bytes if the budget allows it.
func (l *LimitAllocator) Alloc(size int) error {
	if size < 0 || size > l.limit-l.live {
		return fmt.Errorf("reserve %d bytes with %d of %d live: %w", size, l.live, l.limit, ErrOutOfMemory)
	}
	l.live += size
	return nil
}

// Free returns size bytes to the budget.
func (l *LimitAllocator) Free(size int) {
	l.live -= size
}

// Live returns the number of bytes currently reserved.
func (l *LimitAllocator) Live() int {
	return l.live
}

// Limit returns the byte budget.
func (l *LimitAllocator) Limit() int {
	return l.limit
}

// sizeOf returns the byte size of n elements of E, or false on overflow.
func sizeOf[E any](n int) (int, bool) {
	var zero E
	elem := int(unsafe.Sizeof(zero))
	if n < 0 || (elem > 0 && n > math.MaxInt/elem) {
		return 0, false
	}
	return n * elem, true
}

// regrow moves s into new backing storage of newCap elements reserved from a.
// The old storage is freed only after the copy. On failure s is returned
// untouched together with the error.
func regrow[E any](a Allocator, s []E, newCap int) ([]E, error) {
	newSize, ok := sizeOf[E](newCap)
	if !ok || newCap < len(s) {
		return s, fmt.Errorf("grow to %d elements: %w", newCap, ErrOutOfMemory)
	}
	if err := a.Alloc(newSize); err != nil {
		return s, err
	}
	grown := make([]E, len(s), newCap)
	copy(grown, s)
	freeSlice(a, s)
	return grown, nil
}

// freeSlice returns the backing storage of s to a.
func freeSlice[E any](a Allocator, s []E) {
	if cap(s) == 0 {
		return
	}
	size, _ := sizeOf[E](cap(s))
	a.Free(size)
}
