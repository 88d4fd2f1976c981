package bnctx

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

func TestHeapAllocator(t *testing.T) {
	h := &HeapAllocator{}
	if err := h.Alloc(100); err != nil {
		t.Fatalf("Alloc(100) error = %v", err)
	}
	if err := h.Alloc(50); err != nil {
		t.Fatalf("Alloc(50) error = %v", err)
	}
	if h.Live() != 150 {
		t.Errorf("Live() = %d, want 150", h.Live())
	}
	h.Free(100)
	if h.Live() != 50 {
		t.Errorf("Live() after Free = %d, want 50", h.Live())
	}
	if err := h.Alloc(-1); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Alloc(-1) error = %v, want ErrOutOfMemory", err)
	}
}

func TestLimitAllocator(t *testing.T) {
	l := NewLimitAllocator(100)

	tests := []struct {
		name    string
		size    int
		wantErr bool
		live    int
	}{
		{"fits", 60, false, 60},
		{"exact remainder", 40, false, 100},
		{"over budget", 1, true, 100},
		{"negative", -5, true, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Alloc(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Alloc(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutOfMemory) {
				t.Errorf("Alloc(%d) error = %v, want ErrOutOfMemory", tt.size, err)
			}
			if l.Live() != tt.live {
				t.Errorf("Live() = %d, want %d", l.Live(), tt.live)
			}
		})
	}

	l.Free(60)
	if err := l.Alloc(50); err != nil {
		t.Errorf("Alloc(50) after Free error = %v", err)
	}
	if l.Limit() != 100 {
		t.Errorf("Limit() = %d, want 100", l.Limit())
	}
}

func TestSizeOf(t *testing.T) {
	word := int(unsafe.Sizeof(uint(0)))

	tests := []struct {
		n      int
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{1, word, true},
		{32, 32 * word, true},
		{-1, 0, false},
		{math.MaxInt, 0, false},
	}

	for _, tt := range tests {
		got, ok := sizeOf[uint](tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("sizeOf[uint](%d) = %d, %v, want %d, %v", tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRegrow(t *testing.T) {
	h := &HeapAllocator{}
	word := int(unsafe.Sizeof(uint(0)))

	s, err := regrow(h, []uint(nil), 4)
	if err != nil {
		t.Fatalf("regrow(nil, 4) error = %v", err)
	}
	if len(s) != 0 || cap(s) != 4 {
		t.Errorf("regrow(nil, 4) len/cap = %d/%d, want 0/4", len(s), cap(s))
	}
	s = append(s, 1, 2, 3)

	s, err = regrow(h, s, 8)
	if err != nil {
		t.Fatalf("regrow(s, 8) error = %v", err)
	}
	if len(s) != 3 || s[2] != 3 {
		t.Errorf("regrow lost contents: %v", s)
	}
	if h.Live() != 8*word {
		t.Errorf("Live() = %d, want %d (old storage freed)", h.Live(), 8*word)
	}

	freeSlice(h, s)
	if h.Live() != 0 {
		t.Errorf("Live() after freeSlice = %d, want 0", h.Live())
	}
}

func TestRegrowFailureLeavesSliceUntouched(t *testing.T) {
	l := NewLimitAllocator(0)
	orig := []uint{7, 8}

	s, err := regrow(l, orig, 16)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("regrow error = %v, want ErrOutOfMemory", err)
	}
	if &s[0] != &orig[0] || len(s) != 2 {
		t.Error("regrow should return the original slice on failure")
	}

	if _, err := regrow(&HeapAllocator{}, orig, math.MaxInt); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("regrow to MaxInt error = %v, want ErrOutOfMemory", err)
	}
	if _, err := regrow(&HeapAllocator{}, orig, 1); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("regrow below length error = %v, want ErrOutOfMemory", err)
	}
}
