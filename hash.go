package pairtable

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

const (
	hashSeed = 31415
	hashBase = 31
)

// HashFunc maps a key to a slot index in [0, capacity).
// Table capacity is a parameter, so every growth invalidates
// all previously computed hashes.
type HashFunc func(key string, capacity int) int

// RollingHash is the default hash function.
//
// Every rune is folded into the accumulator with a multiplier that evolves
// modulo capacity-1, so the result depends on the current capacity.
func RollingHash(key string, capacity int) int {
	if capacity <= 1 {
		return 0
	}

	var (
		c     = uint64(capacity)
		value = uint64(0)
		a     = uint64(hashSeed)
	)

	for _, r := range key {
		value = (uint64(r) + a*value) % c
		a = a * hashBase % (c - 1)
	}

	return int(value)
}

// XXHash64 hashes keys with xxHash64, reduced modulo capacity.
func XXHash64(key string, capacity int) int {
	return int(xxhash.Sum64String(key) % uint64(capacity))
}

// XXH3 hashes keys with XXH3-64, reduced modulo capacity.
func XXH3(key string, capacity int) int {
	return int(xxh3.HashString(key) % uint64(capacity))
}
