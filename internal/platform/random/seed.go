// Package random hands out one seed per game operation.
//
// A fixed master seed makes a whole session replayable; seed 0 draws the
// master from crypto/rand.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seeds derives per-operation seeds from a master seed.
type Seeds struct {
	mu     sync.Mutex
	master *rand.Rand
}

func NewSeeds(master int64) (*Seeds, error) {
	if master == 0 {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		master = seed
	}
	return &Seeds{master: rand.New(rand.NewSource(master))}, nil
}

func (s *Seeds) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master.Int63()
}

// NewSeededRNG returns the generator an operation draws from.
func NewSeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
