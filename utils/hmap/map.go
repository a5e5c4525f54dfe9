// Package hmap provides a mutable hash map over keys indexed through a
// structural hasher, for key types Go's built-in maps cannot handle
// directly. Hash collisions chain through a bucket list, so lookups
// degrade gracefully when the hasher is coarse.
package hmap

import "github.com/benbjohnson/immutable"

type bucket[K, V any] struct {
	key   K
	value V
	next  *bucket[K, V]
}

// Map is a mutable hash map keyed through an immutable.Hasher. The zero
// value is not usable; create maps with NewMap.
type Map[K, V any] struct {
	hasher  immutable.Hasher[K]
	buckets map[uint32]*bucket[K, V]
	size    int
}

// NewMap creates an empty map over the given hasher. The value type
// parameter comes first so the key type can be inferred from the hasher.
func NewMap[V, K any](hasher immutable.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		hasher:  hasher,
		buckets: make(map[uint32]*bucket[K, V]),
	}
}

// Set inserts or updates the value stored under key.
func (m *Map[K, V]) Set(key K, value V) {
	h := m.hasher.Hash(key)
	for b := m.buckets[h]; b != nil; b = b.next {
		if m.hasher.Equal(key, b.key) {
			b.value = value
			return
		}
	}
	m.buckets[h] = &bucket[K, V]{key: key, value: value, next: m.buckets[h]}
	m.size++
}

// GetOk looks up the value stored under key.
func (m *Map[K, V]) GetOk(key K) (res V, ok bool) {
	for b := m.buckets[m.hasher.Hash(key)]; b != nil; b = b.next {
		if m.hasher.Equal(key, b.key) {
			return b.value, true
		}
	}
	return
}

// Get looks up key, returning the zero value when absent.
func (m *Map[K, V]) Get(key K) V {
	v, _ := m.GetOk(key)
	return v
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int {
	return m.size
}
