package barrage

import "math/rand/v2"

// Source is the entropy consumed by the formulator and the emitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// NewSource returns a PCG-backed Source. Equal seeds give equal sequences.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandInt returns a uniform integer in [lo, hi], both inclusive.
func RandInt(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
