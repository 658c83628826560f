package pairtable

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog"
)

// Pair is a compound key of a Table.
type Pair[K1, K2 Key] struct {
	K1 K1
	K2 K2
}

// Table maps a pair of keys (k1, k2) to a value.
//
// Every primary key k1 owns a secondary Store keyed by k2. Secondary stores
// are created on the first insert under k1, grow on their own schedule,
// and are dropped together with their slot once their last pair is deleted.
// Both levels use linear probing over the same kind of slot array.
//
// Table is not safe for concurrent use.
type Table[K1, K2 Key, V any] struct {
	table[K1, *Store[K2, V]]

	innerSizes    []int
	innerHashFunc HashFunc
	innerLogger   zerolog.Logger
}

// Returns a new, empty table.
func New[K1, K2 Key, V any](opts ...Option) (*Table[K1, K2, V], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	t := &Table[K1, K2, V]{
		innerSizes:    c.innerSizes,
		innerHashFunc: c.innerHashFunc,
		innerLogger:   c.logger.With().Str("table", "inner").Logger(),
	}
	t.init(c.sizes, c.hashFunc, c.logger.With().Str("table", "outer").Logger())

	return t, nil
}

// probePair locates the primary slot of k1 and the secondary slot of k2.
// On insert, a missing k1 gets a new empty secondary store.
// The returned flag reports whether the k2 slot holds k2.
func (t *Table[K1, K2, V]) probePair(k1 K1, k2 K2, insert bool) (int, int, bool, error) {
	outer, found, err := t.probe(k1, insert)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: (%q, %q)", err, string(k1), string(k2))
	}

	if !found {
		t.claim(outer, k1, newStore[K2, V](t.innerSizes, t.innerHashFunc, t.innerLogger))
	}

	inner, found, err := t.slots[outer].payload.probe(k2, insert)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: (%q, %q)", err, string(k1), string(k2))
	}

	return outer, inner, found, nil
}

// lookup returns the secondary store of k1.
func (t *Table[K1, K2, V]) lookup(k1 K1) (*Store[K2, V], error) {
	pos, _, err := t.probe(k1, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, string(k1))
	}

	return t.slots[pos].payload, nil
}

// Returns the value stored under (k1, k2).
func (t *Table[K1, K2, V]) Get(k1 K1, k2 K2) (V, error) {
	outer, inner, _, err := t.probePair(k1, k2, false)
	if err != nil {
		var zero V
		return zero, err
	}

	return t.slots[outer].payload.slots[inner].payload, nil
}

// Inserts or overwrites the value under (k1, k2).
// Either level may grow as a side effect.
func (t *Table[K1, K2, V]) Set(k1 K1, k2 K2, value V) error {
	outer, inner, found, err := t.probePair(k1, k2, true)
	if err != nil {
		return err
	}

	sub := t.slots[outer].payload
	if found {
		sub.slots[inner].payload = value
	} else {
		sub.claim(inner, k2, value)
		if sub.overloaded() {
			sub.grow()
		}
	}

	if t.overloaded() {
		t.grow()
	}

	return nil
}

// Deletes the pair (k1, k2). When it was the last pair under k1,
// k1 is removed as well.
func (t *Table[K1, K2, V]) Delete(k1 K1, k2 K2) error {
	outer, inner, _, err := t.probePair(k1, k2, false)
	if err != nil {
		return err
	}

	sub := t.slots[outer].payload
	sub.remove(inner)

	if sub.size == 0 {
		t.remove(outer)
	}

	return nil
}

// Checks whether (k1, k2) is in the table.
func (t *Table[K1, K2, V]) Contains(k1 K1, k2 K2) bool {
	_, err := t.Get(k1, k2)
	return err == nil
}

// Returns the number of (k1, k2) pairs. It's O(n) in the number of primary keys.
func (t *Table[K1, K2, V]) Len() int {
	n := 0
	for _, sub := range t.all() {
		n += sub.size
	}

	return n
}

// Returns the number of distinct primary keys.
func (t *Table[K1, K2, V]) KeyCount() int {
	return t.size
}

// Returns the current number of primary slots.
func (t *Table[K1, K2, V]) Capacity() int {
	return t.capacity()
}

// Returns all primary keys in slot order.
func (t *Table[K1, K2, V]) Keys() []K1 {
	keys := make([]K1, 0, t.size)
	for k1 := range t.all() {
		keys = append(keys, k1)
	}

	return keys
}

// Returns the secondary keys stored under k1.
func (t *Table[K1, K2, V]) KeysOf(k1 K1) ([]K2, error) {
	sub, err := t.lookup(k1)
	if err != nil {
		return nil, err
	}

	return sub.Keys(), nil
}

// Returns all values, primary slot order first, then secondary slot order.
func (t *Table[K1, K2, V]) Values() []V {
	var values []V
	for _, sub := range t.all() {
		values = append(values, sub.Values()...)
	}

	return values
}

// Returns the values stored under k1.
func (t *Table[K1, K2, V]) ValuesOf(k1 K1) ([]V, error) {
	sub, err := t.lookup(k1)
	if err != nil {
		return nil, err
	}

	return sub.Values(), nil
}

func (t *Table[K1, K2, V]) IterKeys() iter.Seq[K1] {
	return func(yield func(K1) bool) {
		for k1 := range t.all() {
			if !yield(k1) {
				return
			}
		}
	}
}

func (t *Table[K1, K2, V]) IterKeysOf(k1 K1) (iter.Seq[K2], error) {
	sub, err := t.lookup(k1)
	if err != nil {
		return nil, err
	}

	return sub.IterKeys(), nil
}

func (t *Table[K1, K2, V]) IterValues() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, sub := range t.all() {
			for _, v := range sub.all() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (t *Table[K1, K2, V]) IterValuesOf(k1 K1) (iter.Seq[V], error) {
	sub, err := t.lookup(k1)
	if err != nil {
		return nil, err
	}

	return sub.IterValues(), nil
}

// Iterates over every pair and its value.
// The table must not be modified during the iteration.
func (t *Table[K1, K2, V]) All() iter.Seq2[Pair[K1, K2], V] {
	return func(yield func(Pair[K1, K2], V) bool) {
		for k1, sub := range t.all() {
			for k2, v := range sub.all() {
				if !yield(Pair[K1, K2]{K1: k1, K2: k2}, v) {
					return
				}
			}
		}
	}
}

// Returns the stats of the primary level, plus the number of pairs.
func (t *Table[K1, K2, V]) Stats() Stats {
	s := t.stats()
	s.Pairs = t.Len()

	return s
}
