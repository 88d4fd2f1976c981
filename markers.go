package bnctx

import "math"

// DefaultMarkerCap is the capacity of a marker stack's first backing array.
const DefaultMarkerCap = 32

// markerStack records, for every open scope, how many temporaries were in
// use when the scope opened. Storage grows by half its size when full and
// is never shrunk.
type markerStack struct {
	entries []uint // len(entries) is the capacity
	depth   int
	initial int
	alloc   Allocator
}

// push appends v as the new top entry. It reports false if the storage
// could not grow; the stack is unchanged then. Failures are never reported
// anywhere else, the caller decides what to do with them.
func (m *markerStack) push(v uint) bool {
	if m.depth == len(m.entries) {
		newCap, ok := m.nextCap()
		if !ok {
			return false
		}
		grown, err := regrow(m.alloc, m.entries, newCap)
		if err != nil {
			return false
		}
		m.entries = grown[:cap(grown)]
	}
	m.entries[m.depth] = v
	m.depth++
	return true
}

// nextCap returns the capacity the next growth should reach.
func (m *markerStack) nextCap() (int, bool) {
	n := len(m.entries)
	if n == 0 {
		if m.initial <= 0 {
			return DefaultMarkerCap, true
		}
		return m.initial, true
	}
	step := n / 2
	if step == 0 {
		step = 1
	}
	if n > math.MaxInt-step {
		return 0, false
	}
	return n + step, true
}

// pop removes and returns the top entry. Popping an empty stack is a
// programming error.
func (m *markerStack) pop() uint {
	if m.depth == 0 {
		panic("bnctx: pop from empty marker stack")
	}
	m.depth--
	return m.entries[m.depth]
}

// release frees the backing storage. Safe on a stack that never grew.
func (m *markerStack) release() {
	if m.entries != nil {
		freeSlice(m.alloc, m.entries)
	}
	m.entries = nil
	m.depth = 0
}
