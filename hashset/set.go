package hashset

import (
	"fmt"
	"iter"
	"slices"
)

// Set is a hash set with separate chaining. Keys are visited in bucket order and,
// within a bucket, in the order they were chained. Inserting or removing keys
// invalidates outstanding iterators.
type Set[K comparable] struct {
	config[K]
	table [][]K
	size  int
}

// New creates a new empty set
func New[K comparable](opts ...Option[K]) *Set[K] {
	cfg := newConfig(opts)
	return &Set[K]{
		config: cfg,
		table:  make([][]K, cfg.buckets),
	}
}

// bucketOf returns the bucket a key hashes to
func (s *Set[K]) bucketOf(key K) int {
	return int(s.hasher(key) % uint64(len(s.table)))
}

// grow doubles the number of buckets and rehashes every key
func (s *Set[K]) grow() {
	table := s.table
	s.table = make([][]K, len(table)*2)
	for _, chain := range table {
		for _, key := range chain {
			b := s.bucketOf(key)
			s.table[b] = append(s.table[b], key)
		}
	}
}

// Insert adds the key to the set and returns true if it was not already present
func (s *Set[K]) Insert(key K) bool {
	if s.shouldGrow(s.size, len(s.table)) {
		s.grow()
	}

	b := s.bucketOf(key)
	if slices.Contains(s.table[b], key) {
		return false
	}

	s.table[b] = append(s.table[b], key)
	s.size++
	return true
}

// Remove removes the key and returns true if it was present
func (s *Set[K]) Remove(key K) bool {
	b := s.bucketOf(key)
	i := slices.Index(s.table[b], key)
	if i < 0 {
		return false
	}

	s.table[b] = slices.Delete(s.table[b], i, i+1)
	s.size--
	return true
}

// RemoveAt removes the key under the iterator and returns true if one was removed.
// On success the iterator moves to the following key.
func (s *Set[K]) RemoveAt(it *Iterator[K]) bool {
	if it.set != s || !it.Valid() {
		return false
	}

	s.table[it.bucket] = slices.Delete(s.table[it.bucket], it.slot, it.slot+1)
	s.size--

	// The following key slid into this slot, unless the chain ran out
	if it.slot >= len(s.table[it.bucket]) {
		it.slot--
		it.Next()
	}
	return true
}

// Contains checks whether the key is in the set
func (s *Set[K]) Contains(key K) bool {
	return slices.Contains(s.table[s.bucketOf(key)], key)
}

// Find returns an iterator at the key, or the end sentinel if the key is missing
func (s *Set[K]) Find(key K) Iterator[K] {
	b := s.bucketOf(key)
	if i := slices.Index(s.table[b], key); i >= 0 {
		return Iterator[K]{set: s, bucket: b, slot: i}
	}
	return s.End()
}

// EraseIf removes every key for which the predicate returns true and returns how many
// keys were removed
func (s *Set[K]) EraseIf(pred func(K) bool) int {
	removed := 0
	for b, chain := range s.table {
		n := len(chain)
		s.table[b] = slices.DeleteFunc(chain, pred)
		removed += n - len(s.table[b])
	}

	s.size -= removed
	return removed
}

// Clear removes every key and restores the initial number of buckets
func (s *Set[K]) Clear() {
	s.table = make([][]K, s.buckets)
	s.size = 0
}

// Len returns the number of keys
func (s *Set[K]) Len() int {
	return s.size
}

// Empty returns true if the set has no keys
func (s *Set[K]) Empty() bool {
	return s.size == 0
}

// Buckets returns the current number of buckets
func (s *Set[K]) Buckets() int {
	return len(s.table)
}

// LoadFactor returns the ratio of keys to buckets
func (s *Set[K]) LoadFactor() float64 {
	return float64(s.size) / float64(len(s.table))
}

// All returns a sequence of the keys in bucket order
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, chain := range s.table {
			for _, key := range chain {
				if !yield(key) {
					return
				}
			}
		}
	}
}

// String renders the keys in iteration order
func (s *Set[K]) String() string {
	return fmt.Sprint(slices.Collect(s.All()))
}

// ---------------------------------------- Iterator ----------------------------------------

// Iterator walks a Set forward in bucket order
type Iterator[K comparable] struct {
	set    *Set[K]
	bucket int
	slot   int
}

// Begin returns an iterator at the first key, or the end sentinel if the set is empty
func (s *Set[K]) Begin() Iterator[K] {
	it := Iterator[K]{set: s, bucket: 0, slot: -1}
	it.Next()
	return it
}

// End returns the end sentinel
func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{set: s, bucket: len(s.table)}
}

// Valid returns true if the iterator points at a key
func (it Iterator[K]) Valid() bool {
	return it.set != nil &&
		it.bucket >= 0 && it.bucket < len(it.set.table) &&
		it.slot >= 0 && it.slot < len(it.set.table[it.bucket])
}

// Key returns the key under the iterator. It panics on the end sentinel.
func (it Iterator[K]) Key() K {
	return it.set.table[it.bucket][it.slot]
}

// Next advances to the next key and returns false once the end is reached
func (it *Iterator[K]) Next() bool {
	table := it.set.table
	if it.bucket >= len(table) {
		return false
	}

	it.slot++
	for it.bucket < len(table) && it.slot >= len(table[it.bucket]) {
		it.bucket++
		it.slot = 0
	}

	if it.bucket >= len(table) {
		it.slot = 0
		return false
	}
	return true
}

// Equal returns true if both iterators point at the same slot of the same set
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.set == other.set && it.bucket == other.bucket && it.slot == other.slot
}
