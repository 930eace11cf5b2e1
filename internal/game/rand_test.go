package game

import "testing"

func TestLCGDeterminism(t *testing.T) {
	// Two generators with the same seed must produce identical sequences
	r1 := NewLCG(987654)
	r2 := NewLCG(987654)

	for i := 0; i < 1000; i++ {
		a := r1.Intn(1 << 20)
		b := r2.Intn(1 << 20)
		if a != b {
			t.Fatalf("Draw %d diverged: %d vs %d", i, a, b)
		}
	}
}

func TestLCGKnownSequence(t *testing.T) {
	// The recurrence is seed = (seed*1103515245 + 12345) mod 2^31,
	// draw = seed mod n. Verify against a manual computation.
	r := NewLCG(1)

	seed := int64(1)
	for i := 0; i < 10; i++ {
		seed = (seed*1103515245 + 12345) % (1 << 31)
		want := int(seed % 100)
		got := r.Intn(100)
		if got != want {
			t.Fatalf("Draw %d: got %d, want %d", i, got, want)
		}
	}
}

func TestLCGIntnRange(t *testing.T) {
	r := NewLCG(42)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) returned %d, out of [0, 7)", v)
		}
	}
}

func TestLCGIntRangeInclusive(t *testing.T) {
	r := NewLCG(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("IntRange(3, 5) returned %d", v)
		}
		seen[v] = true
	}
	for want := 3; want <= 5; want++ {
		if !seen[want] {
			t.Errorf("IntRange(3, 5) never produced %d in 1000 draws", want)
		}
	}
}

func TestLCGSeedReduced(t *testing.T) {
	// Seeds outside the 31-bit state range must be reduced, not rejected.
	r := NewLCG(-1234567890123)
	if s := r.Seed(); s < 0 || s >= 1<<31 {
		t.Errorf("Seed() = %d, outside the 31-bit state range", s)
	}
	// Must still draw without panicking
	_ = r.Intn(10)
}

func TestLCGMutatesStateEveryDraw(t *testing.T) {
	r := NewLCG(5)
	prev := r.Seed()
	for i := 0; i < 50; i++ {
		_ = r.Intn(1000)
		if r.Seed() == prev {
			t.Fatalf("Seed unchanged after draw %d", i)
		}
		prev = r.Seed()
	}
}
