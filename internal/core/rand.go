package core

import (
	"math/rand/v2"
	"time"
)

// Rand is a uniform integer source.
type Rand interface {
	// IntRange returns a uniformly distributed integer in [low, high].
	IntRange(low, high int) int
}

// SeededRand is the default Rand backed by a PCG generator.
type SeededRand struct {
	rng *rand.Rand
}

// NewRand creates a Rand from seed. A zero seed uses the current time.
func NewRand(seed int64) *SeededRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededRand{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
	}
}

// IntRange returns a value in [low, high]. Bounds are swapped if inverted.
func (r *SeededRand) IntRange(low, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + r.rng.IntN(high-low+1)
}
