// Package random provides the seedable generator shared by the life-event
// samplers.
//
// It uses crypto/rand to pick high-entropy seeds and math/rand for the
// reproducible sequences the samplers draw from. A fixed seed always yields
// the same sequence of draws, which is what makes simulation batches
// repeatable.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// freshSeed returns a non-zero seed, preferring crypto/rand and falling back
// to the clock.
func freshSeed() int64 {
	seed, err := NewSeed()
	if err != nil || seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}
