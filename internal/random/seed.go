// Package random provides seeded pseudo-random sources for request handlers.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewRand returns a PCG-backed generator seeded from crypto/rand. The result
// is not safe for concurrent use.
func NewRand() (*rand.Rand, error) {
	hi, err := NewSeed()
	if err != nil {
		return nil, err
	}
	lo, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(hi, lo)), nil
}

// NewSeededRand returns a deterministic generator for a fixed seed pair.
func NewSeededRand(hi, lo uint64) *rand.Rand {
	return rand.New(rand.NewPCG(hi, lo))
}
