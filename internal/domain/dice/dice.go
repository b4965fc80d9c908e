// Package dice holds the random source every resolution draws from.
//
// One Rand is handed to each operation so that a mission or a tick can be
// replayed exactly from its seed.
package dice

import (
	"github.com/google/uuid"
)

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Percent draws uniformly from [0,100).
func Percent(r Rand) float64 {
	return r.Float64() * 100
}

// Between draws an integer from the half-open range [lo, hi).
func Between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Chance reports whether an event with probability p (0..1) fires.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

func Pick[T any](r Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}

// UUID builds a v4 UUID from r, so generated ids replay with the seed.
func UUID(r Rand) string {
	id, err := uuid.NewRandomFromReader(byteReader{r: r})
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type byteReader struct {
	r Rand
}

func (b byteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b.r.Intn(256))
	}
	return len(p), nil
}
