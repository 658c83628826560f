package pairtable

import (
	"iter"

	"github.com/rs/zerolog"
)

// Key is the key constraint of both table levels.
// Keys are hashed as sequences of runes.
type Key interface {
	~string
}

type slot[K Key, P any] struct {
	key     K
	payload P
	used    bool
}

// table is an open addressing array with linear probing.
// It backs both the Store and the primary level of the Table,
// the payload being a value or a secondary Store respectively.
type table[K Key, P any] struct {
	slots []slot[K, P]

	// Number of occupied slots.
	size int

	sizes     []int
	sizeIndex int
	grows     int
	exhausted bool

	hashFunc HashFunc
	logger   zerolog.Logger
}

func (t *table[K, P]) init(sizes []int, hashFunc HashFunc, logger zerolog.Logger) {
	t.sizes = sizes
	t.sizeIndex = 0
	t.hashFunc = hashFunc
	t.logger = logger
	t.slots = make([]slot[K, P], sizes[0])
	t.size = 0
}

func (t *table[K, P]) capacity() int {
	return len(t.slots)
}

func (t *table[K, P]) hash(key K) int {
	c := t.capacity()

	h := t.hashFunc(string(key), c) % c
	if h < 0 {
		h += c
	}

	return h
}

// probe walks at most capacity slots starting at the key's hash.
// It returns the slot holding the key and true, or, for inserts only,
// the first empty slot on the way and false.
func (t *table[K, P]) probe(key K, insert bool) (int, bool, error) {
	c := t.capacity()
	pos := t.hash(key)

	for range c {
		s := &t.slots[pos]
		if !s.used {
			if insert {
				return pos, false, nil
			}

			return 0, false, ErrNotFound
		}

		if s.key == key {
			return pos, true, nil
		}

		pos = (pos + 1) % c
	}

	if insert {
		return 0, false, ErrCapacityExhausted
	}

	return 0, false, ErrNotFound
}

func (t *table[K, P]) claim(pos int, key K, payload P) {
	t.slots[pos] = slot[K, P]{key: key, payload: payload, used: true}
	t.size++
}

// place puts a key known to be absent into the first empty slot
// of its probe sequence. The caller guarantees there is one.
func (t *table[K, P]) place(key K, payload P) {
	c := t.capacity()
	pos := t.hash(key)

	for t.slots[pos].used {
		pos = (pos + 1) % c
	}

	t.claim(pos, key, payload)
}

// remove clears the slot and re-places the rest of its cluster.
// Without tombstones, a hole would otherwise cut the probe sequence
// of every later key that collided before it.
func (t *table[K, P]) remove(pos int) {
	c := t.capacity()

	t.slots[pos] = slot[K, P]{}
	t.size--

	for next := (pos + 1) % c; t.slots[next].used; next = (next + 1) % c {
		s := t.slots[next]

		t.slots[next] = slot[K, P]{}
		t.size--

		t.place(s.key, s.payload)
	}
}

// overloaded reports whether more than half of the slots are occupied.
func (t *table[K, P]) overloaded() bool {
	return t.size*2 > t.capacity()
}

// grow moves to the next capacity of the schedule and re-inserts every entry,
// since the hash of every key depends on the capacity.
// Once the schedule is exhausted, the table keeps its last capacity.
func (t *table[K, P]) grow() {
	if t.sizeIndex+1 >= len(t.sizes) {
		if !t.exhausted {
			t.exhausted = true
			t.logger.Warn().
				Int("capacity", t.capacity()).
				Int("size", t.size).
				Msg("capacity schedule exhausted, growth abandoned")
		}

		return
	}

	old := t.slots

	t.sizeIndex++
	t.slots = make([]slot[K, P], t.sizes[t.sizeIndex])
	t.size = 0

	for i := range old {
		if old[i].used {
			t.place(old[i].key, old[i].payload)
		}
	}

	t.grows++
	t.logger.Debug().
		Int("from", len(old)).
		Int("to", t.capacity()).
		Int("size", t.size).
		Msg("table grown")
}

// all yields occupied slots in array order.
func (t *table[K, P]) all() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if !s.used {
				continue
			}

			if !yield(s.key, s.payload) {
				return
			}
		}
	}
}

func (t *table[K, P]) stats() Stats {
	return Stats{
		Size:       t.size,
		Capacity:   t.capacity(),
		LoadFactor: float32(t.size) / float32(t.capacity()),
		Grows:      t.grows,
		Exhausted:  t.exhausted,
	}
}
