// Package hashindex implements a fixed-capacity open-addressed hash
// table with linear probing, keyed by string.
//
// The table never rehashes and never deletes. Insert-and-query is the
// whole workload, which keeps the probing invariant simple: an empty
// slot definitively terminates any probe sequence. A full table is a
// configuration error (capacity sized too small for the input
// cardinality) and is reported as a fatal ErrTableFull, not retried.
package hashindex

import "errors"

// ErrTableFull is returned by FindOrCreate when every slot has been
// probed without finding the key or a free slot.
var ErrTableFull = errors.New("hashindex: table full")

// HashFunc maps a key to an initial slot index in [0, capacity).
type HashFunc func(key string, capacity uint32) uint32

// PolyHash is a polynomial string hash with multiplier 131, reduced
// modulo the capacity at the end.
func PolyHash(key string, capacity uint32) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h*131 + uint32(key[i])
	}
	return h % capacity
}

// TwoPrimeHash accumulates with prime 31 and mixes in prime 37 after
// every character, reducing modulo the capacity at each step. The
// two-prime mix spreads short numeric keys (like "145.25") better than
// a single multiplier at small table sizes.
func TwoPrimeHash(key string, capacity uint32) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = (h*31 + uint32(key[i])) % capacity
		h = (h + 37) % capacity
	}
	return h % capacity
}

type slot[V any] struct {
	key      string
	occupied bool
	value    V
}

// Table is a fixed-capacity open-addressed table mapping a string key
// to one value record. The table exclusively owns all records; callers
// must re-fetch record pointers rather than cache them across runs.
type Table[V any] struct {
	slots    []slot[V]
	capacity uint32
	count    int
	hash     HashFunc
}

// New creates a table with the given capacity and hash function.
func New[V any](capacity int, hash HashFunc) *Table[V] {
	if capacity <= 0 {
		panic("hashindex: capacity must be positive")
	}
	return &Table[V]{
		slots:    make([]slot[V], capacity),
		capacity: uint32(capacity),
		hash:     hash,
	}
}

// Len returns the number of occupied slots.
func (t *Table[V]) Len() int {
	return t.count
}

// Capacity returns the fixed slot count chosen at construction.
func (t *Table[V]) Capacity() int {
	return int(t.capacity)
}

// FindOrCreate returns the record for key, creating it in the first
// empty slot of the probe sequence when absent. created reports
// whether a new record was allocated. Probing is bounded by the
// capacity; exhausting it returns ErrTableFull.
func (t *Table[V]) FindOrCreate(key string) (v *V, created bool, err error) {
	index := t.hash(key, t.capacity)
	for probes := uint32(0); probes < t.capacity; probes++ {
		s := &t.slots[index]
		if !s.occupied {
			s.occupied = true
			s.key = key
			t.count++
			return &s.value, true, nil
		}
		if s.key == key {
			return &s.value, false, nil
		}
		index = (index + 1) % t.capacity
	}
	return nil, false, ErrTableFull
}

// Find returns the record for key, or ok=false if it was never
// inserted. The probe stops at the first empty slot: with no deletions
// a key can never live beyond an empty slot in its probe sequence.
func (t *Table[V]) Find(key string) (*V, bool) {
	index := t.hash(key, t.capacity)
	for probes := uint32(0); probes < t.capacity; probes++ {
		s := &t.slots[index]
		if !s.occupied {
			return nil, false
		}
		if s.key == key {
			return &s.value, true
		}
		index = (index + 1) % t.capacity
	}
	return nil, false
}

// Range calls fn for every occupied slot in slot order until fn
// returns false. Slot order carries no cross-key ordering guarantee,
// but it is deterministic for a fixed capacity and hash function.
func (t *Table[V]) Range(fn func(key string, v *V) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(s.key, &s.value) {
			return
		}
	}
}
