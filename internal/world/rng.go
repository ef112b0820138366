// Package world holds the deterministic pieces of world generation: the
// seeded RNG and the per-segment space reservation table.
package world

import "math"

// LCG parameters. The generator must produce the same sequence on every
// platform, so it deliberately avoids math/rand.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// RNG is a seeded linear-congruential generator.
type RNG struct {
	state int64
}

// NewRNG creates a generator for the given seed. Segment builders seed it
// with the segment start X.
func NewRNG(seed int64) *RNG {
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &RNG{state: state}
}

// NextInt returns an integer in [lo, hi] inclusive.
// Bounds given in the wrong order are swapped.
func (r *RNG) NextInt(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	rnd := float64(r.state) / lcgModulus
	return int(math.Floor(float64(lo) + rnd*float64(hi-lo+1)))
}

// Chance returns true with the given probability in percent.
func (r *RNG) Chance(percent int) bool {
	return r.NextInt(1, 100) <= percent
}
