// Package entropy provides the random source behind every stochastic draw
// in the simulation. The engine never touches math/rand directly: it takes
// a Source, so tests can swap in a scripted stream and force specific outcomes.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"sync"
)

// Source yields uniform floats in [0, 1). Everything else is derived from it.
type Source interface {
	Float() float64
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeeded creates a Source that reproduces the same stream for the same seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mathrand.New(mathrand.NewSource(seed))}
}

// Float returns the next uniform float64 in [0, 1).
func (s *Seeded) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Crypto is a non-deterministic Source backed by crypto/rand, used when no
// seed is configured.
type Crypto struct{}

// Float returns a uniform float64 in [0, 1) from the OS entropy pool.
func (Crypto) Float() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Should never happen; 0.5 keeps the simulation moving.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Between returns a uniform float64 in [min, max).
func Between(src Source, min, max float64) float64 {
	return src.Float()*(max-min) + min
}

// IntBetween returns a uniform int in [min, max] inclusive.
func IntBetween(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + int(src.Float()*float64(max-min+1))
}

// Pick returns a uniformly chosen element of items. Callers guard against
// empty slices where empty is a legal state.
func Pick[T any](src Source, items []T) T {
	return items[int(src.Float()*float64(len(items)))]
}

// Clamp bounds v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
