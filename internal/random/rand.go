package random

import (
	"math/rand"
	"sync"
)

// Source produces uniform samples in [0, 1).
// *rand.Rand and *Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Rand is a seeded generator that is safe for concurrent use.
// The zero value draws a fresh seed on first use.
type Rand struct {
	mu   sync.Mutex
	seed int64
	rng  *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed int64) *Rand {
	return &Rand{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// NewSeeded returns a generator seeded with seed.
// If seed is 0 a fresh seed is drawn; SeedValue reports the one in use.
func NewSeeded(seed int64) *Rand {
	if seed == 0 {
		seed = freshSeed()
	}
	return New(seed)
}

// Float64 returns a uniform sample in [0, 1).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	return r.rng.Float64()
}

// init seeds a zero-value Rand. The caller must hold r.mu.
func (r *Rand) init() {
	if r.rng == nil {
		r.seed = freshSeed()
		r.rng = rand.New(rand.NewSource(r.seed))
	}
}

// Seed restarts the sequence from seed.
func (r *Rand) Seed(seed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed = seed
	r.rng = rand.New(rand.NewSource(seed))
}

// SeedValue returns the seed the current sequence started from.
func (r *Rand) SeedValue() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	return r.seed
}

var defaultRand = NewSeeded(0)

// Default returns the process-wide generator.
func Default() *Rand { return defaultRand }

// Seed restarts the process-wide generator from seed.
func Seed(seed int64) { defaultRand.Seed(seed) }

// CurrentSeed returns the seed the process-wide generator started from.
func CurrentSeed() int64 { return defaultRand.SeedValue() }

// Float64 draws from the process-wide generator.
func Float64() float64 { return defaultRand.Float64() }

// OrDefault returns rng, or the process-wide generator when rng is nil.
// A nil *rand.Rand or *Rand held in the interface counts as nil.
func OrDefault(rng Source) Source {
	switch r := rng.(type) {
	case nil:
		return defaultRand
	case *rand.Rand:
		if r == nil {
			return defaultRand
		}
	case *Rand:
		if r == nil {
			return defaultRand
		}
	}
	return rng
}
