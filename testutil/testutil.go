package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// ID returns a pseudo-random lowercase identifier of the given length.
func (r *RNG) ID(length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id(length)
}

func (r *RNG) id(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = idAlphabet[r.rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// UniqueIDs returns num distinct pseudo-random identifiers of the given
// length. Collisions are resolved by suffixing a counter, so num may exceed
// the alphabet space without looping forever.
func (r *RNG) UniqueIDs(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	ids := make([]string, 0, num)
	for len(ids) < num {
		id := r.id(length)
		if _, dup := seen[id]; dup {
			id = fmt.Sprintf("%s-%d", id, len(ids))
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Shuffle pseudo-randomly permutes ids in place.
func (r *RNG) Shuffle(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// IsAscending reports whether ids is sorted lexicographically A to Z.
func IsAscending(ids []string) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			return false
		}
	}
	return true
}

// IsDescending reports whether ids is sorted lexicographically Z to A.
func IsDescending(ids []string) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] < ids[i] {
			return false
		}
	}
	return true
}
