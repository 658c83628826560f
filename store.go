package pairtable

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog"
)

// Store is a single key hash table with linear probing.
// It grows along its capacity schedule once more than half
// of its slots are occupied.
//
// Store is not safe for concurrent use.
type Store[K Key, V any] struct {
	table[K, V]
}

// Returns a new, empty store.
func NewStore[K Key, V any](opts ...Option) (*Store[K, V], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newStore[K, V](c.sizes, c.hashFunc, c.logger.With().Str("table", "store").Logger()), nil
}

func newStore[K Key, V any](sizes []int, hashFunc HashFunc, logger zerolog.Logger) *Store[K, V] {
	var s Store[K, V]
	s.init(sizes, hashFunc, logger)

	return &s
}

// Returns the value stored under the key.
func (s *Store[K, V]) Get(key K) (V, error) {
	pos, _, err := s.probe(key, false)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("%w: %q", err, string(key))
	}

	return s.slots[pos].payload, nil
}

// Inserts or overwrites a value.
func (s *Store[K, V]) Set(key K, value V) error {
	pos, found, err := s.probe(key, true)
	if err != nil {
		return fmt.Errorf("%w: %q", err, string(key))
	}

	if found {
		s.slots[pos].payload = value
		return nil
	}

	s.claim(pos, key, value)
	if s.overloaded() {
		s.grow()
	}

	return nil
}

// Deletes a key.
func (s *Store[K, V]) Delete(key K) error {
	pos, _, err := s.probe(key, false)
	if err != nil {
		return fmt.Errorf("%w: %q", err, string(key))
	}

	s.remove(pos)

	return nil
}

// Checks whether a key is in the store.
func (s *Store[K, V]) Contains(key K) bool {
	_, err := s.Get(key)
	return err == nil
}

// Returns the number of stored keys.
func (s *Store[K, V]) Len() int {
	return s.size
}

// Returns the current number of slots.
func (s *Store[K, V]) Capacity() int {
	return s.capacity()
}

// Returns all keys in slot order.
func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, s.size)
	for k := range s.all() {
		keys = append(keys, k)
	}

	return keys
}

// Returns all values in slot order.
func (s *Store[K, V]) Values() []V {
	values := make([]V, 0, s.size)
	for _, v := range s.all() {
		values = append(values, v)
	}

	return values
}

func (s *Store[K, V]) IterKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.all() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *Store[K, V]) IterValues() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.all() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterates over key-value pairs in slot order.
// The store must not be modified during the iteration.
func (s *Store[K, V]) All() iter.Seq2[K, V] {
	return s.all()
}

func (s *Store[K, V]) Stats() Stats {
	return s.stats()
}
