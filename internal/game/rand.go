// Package game implements the snake mechanics: deterministic RNG, direction
// arbitration, movement and collision, food placement, and the session state
// machine. It depends only on internal/core and internal/config so the
// mechanics stay pure and testable.
package game

// Linear congruential generator parameters (31-bit state).
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// LCG is a linear congruential pseudo-random generator. Given the same seed,
// two generators produce identical draw sequences, which makes full game
// sessions replayable. Not suitable for anything cryptographic.
type LCG struct {
	seed int64
}

// NewLCG creates a generator from the given seed. The seed is reduced to the
// 31-bit state range.
func NewLCG(seed int64) *LCG {
	if seed < 0 {
		seed = -seed
	}
	return &LCG{seed: seed % lcgModulus}
}

// Seed returns the current generator state.
func (r *LCG) Seed() int64 {
	return r.seed
}

// next mutates the state and returns the raw draw.
func (r *LCG) next() int64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return r.seed
}

// Intn returns a draw in [0, n). Panics if n <= 0, matching math/rand.
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		panic("game: Intn with non-positive bound")
	}
	return int(r.next() % int64(n))
}

// IntRange returns a draw in the inclusive range [lo, hi].
func (r *LCG) IntRange(lo, hi int) int {
	if hi < lo {
		panic("game: IntRange with inverted bounds")
	}
	return lo + int(r.next()%int64(hi-lo+1))
}
