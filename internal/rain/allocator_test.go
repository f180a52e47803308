package rain

import (
	"testing"

	"collatz-rain/internal/core"
)

func TestPickStaysInRange(t *testing.T) {
	rng := core.NewRNG(1)
	alloc := NewAllocator(8, 500, rng)
	now := int64(0)
	for i := 0; i < 500; i++ {
		col := alloc.Pick(now, -1)
		if col < 0 || col >= 8 {
			t.Fatalf("pick %d returned column %d", i, col)
		}
		now += 37
	}
}

func TestPickAvoidsParentColumn(t *testing.T) {
	rng := core.NewRNG(2)
	alloc := NewAllocator(4, 1000, rng)
	now := int64(0)
	for i := 0; i < 500; i++ {
		avoid := i % 4
		if col := alloc.Pick(now, avoid); col == avoid {
			t.Fatalf("pick %d returned avoided column %d", i, avoid)
		}
		// Advance barely, keeping the allocator mostly saturated so the
		// fallback path is exercised too.
		now += 3
	}
}

func TestSingleColumnFallback(t *testing.T) {
	rng := core.NewRNG(3)
	alloc := NewAllocator(1, 1000, rng)
	if col := alloc.Pick(0, -1); col != 0 {
		t.Fatalf("first pick returned %d, want 0", col)
	}
	// Cooldown has not elapsed; the only column must still be returned.
	if col := alloc.Pick(500, -1); col != 0 {
		t.Fatalf("saturated pick returned %d, want 0", col)
	}
}

func TestSaturatedFallbackPrefersLeastRecentlyUsed(t *testing.T) {
	rng := core.NewRNG(4)
	alloc := NewAllocator(3, 10_000, rng)
	// Use the columns at staggered times so their ages differ.
	alloc.Claim(0, 300)
	alloc.Claim(1, 100)
	alloc.Claim(2, 200)
	// All columns are cooling down at t=400; the oldest use wins.
	if col := alloc.Pick(400, -1); col != 1 {
		t.Fatalf("fallback returned %d, want least-recently-used 1", col)
	}
}

func TestSaturatedFallbackTieBreaksLowestIndex(t *testing.T) {
	rng := core.NewRNG(5)
	alloc := NewAllocator(3, 10_000, rng)
	alloc.Claim(0, 100)
	alloc.Claim(1, 100)
	alloc.Claim(2, 100)
	if col := alloc.Pick(200, -1); col != 0 {
		t.Fatalf("tie fallback returned %d, want 0", col)
	}
	// Column 0 was just refreshed; with 0 avoided the tie is between 1 and 2.
	if col := alloc.Pick(200, 1); col != 2 {
		t.Fatalf("tie fallback with avoid returned %d, want 2", col)
	}
}
