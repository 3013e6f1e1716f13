package hashset

import (
	"container/list"
	"fmt"
	"iter"
	"slices"
)

// OrderedSet is a hash set that remembers the order in which keys were inserted. Keys
// live in a doubly linked list and the buckets chain the list elements, so removal
// does not disturb the order of the remaining keys.
type OrderedSet[K comparable] struct {
	config[K]
	data  *list.List
	table [][]*list.Element
}

// NewOrdered creates a new empty insertion-ordered set
func NewOrdered[K comparable](opts ...Option[K]) *OrderedSet[K] {
	cfg := newConfig(opts)
	return &OrderedSet[K]{
		config: cfg,
		data:   list.New(),
		table:  make([][]*list.Element, cfg.buckets),
	}
}

func (s *OrderedSet[K]) bucketOf(key K) int {
	return int(s.hasher(key) % uint64(len(s.table)))
}

// lookup returns the bucket of the key and its slot in that bucket, or -1
func (s *OrderedSet[K]) lookup(key K) (int, int) {
	b := s.bucketOf(key)
	return b, slices.IndexFunc(s.table[b], func(e *list.Element) bool {
		return e.Value.(K) == key
	})
}

// grow doubles the number of buckets, rehashing in insertion order
func (s *OrderedSet[K]) grow() {
	s.table = make([][]*list.Element, len(s.table)*2)
	for e := s.data.Front(); e != nil; e = e.Next() {
		b := s.bucketOf(e.Value.(K))
		s.table[b] = append(s.table[b], e)
	}
}

// Insert appends the key and returns true if it was not already present. Inserting
// an existing key keeps its original position.
func (s *OrderedSet[K]) Insert(key K) bool {
	if s.shouldGrow(s.data.Len(), len(s.table)) {
		s.grow()
	}

	b, i := s.lookup(key)
	if i >= 0 {
		return false
	}

	s.table[b] = append(s.table[b], s.data.PushBack(key))
	return true
}

// Remove removes the key and returns true if it was present
func (s *OrderedSet[K]) Remove(key K) bool {
	b, i := s.lookup(key)
	if i < 0 {
		return false
	}

	s.data.Remove(s.table[b][i])
	s.table[b] = slices.Delete(s.table[b], i, i+1)
	return true
}

// RemoveAt removes the key under the iterator and returns true if one was removed.
// On success the iterator moves to the following key.
func (s *OrderedSet[K]) RemoveAt(it *OrderedIterator[K]) bool {
	if it.set != s || !it.Valid() {
		return false
	}

	key := it.Key()
	it.Next()
	return s.Remove(key)
}

// Contains checks whether the key is in the set
func (s *OrderedSet[K]) Contains(key K) bool {
	_, i := s.lookup(key)
	return i >= 0
}

// Find returns an iterator at the key, or the end sentinel if the key is missing
func (s *OrderedSet[K]) Find(key K) OrderedIterator[K] {
	if b, i := s.lookup(key); i >= 0 {
		return OrderedIterator[K]{set: s, elem: s.table[b][i]}
	}
	return s.End()
}

// EraseIf removes every key for which the predicate returns true and returns how many
// keys were removed
func (s *OrderedSet[K]) EraseIf(pred func(K) bool) int {
	removed := 0
	for e := s.data.Front(); e != nil; {
		next := e.Next()
		if key := e.Value.(K); pred(key) && s.Remove(key) {
			removed++
		}
		e = next
	}
	return removed
}

// Clear removes every key and restores the initial number of buckets
func (s *OrderedSet[K]) Clear() {
	s.data.Init()
	s.table = make([][]*list.Element, s.buckets)
}

// Len returns the number of keys
func (s *OrderedSet[K]) Len() int {
	return s.data.Len()
}

// Empty returns true if the set has no keys
func (s *OrderedSet[K]) Empty() bool {
	return s.data.Len() == 0
}

// Buckets returns the current number of buckets
func (s *OrderedSet[K]) Buckets() int {
	return len(s.table)
}

// LoadFactor returns the ratio of keys to buckets
func (s *OrderedSet[K]) LoadFactor() float64 {
	return float64(s.data.Len()) / float64(len(s.table))
}

// All returns a sequence of the keys in insertion order
func (s *OrderedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := s.data.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(K)) {
				return
			}
		}
	}
}

// String renders the keys in insertion order
func (s *OrderedSet[K]) String() string {
	return fmt.Sprint(slices.Collect(s.All()))
}

// ---------------------------------------- Iterator ----------------------------------------

// OrderedIterator walks an OrderedSet in insertion order. A nil element is the end
// sentinel.
type OrderedIterator[K comparable] struct {
	set  *OrderedSet[K]
	elem *list.Element
}

// Begin returns an iterator at the oldest key, or the end sentinel if the set is empty
func (s *OrderedSet[K]) Begin() OrderedIterator[K] {
	return OrderedIterator[K]{set: s, elem: s.data.Front()}
}

// End returns the end sentinel
func (s *OrderedSet[K]) End() OrderedIterator[K] {
	return OrderedIterator[K]{set: s}
}

// Valid returns true if the iterator points at a key
func (it OrderedIterator[K]) Valid() bool {
	return it.elem != nil
}

// Key returns the key under the iterator. It panics on the end sentinel.
func (it OrderedIterator[K]) Key() K {
	return it.elem.Value.(K)
}

// Next advances to the next key and returns false once the end is reached
func (it *OrderedIterator[K]) Next() bool {
	if it.elem != nil {
		it.elem = it.elem.Next()
	}
	return it.elem != nil
}

// Prev moves back to the previous key and returns false if there is none. From the
// end sentinel it moves to the newest key.
func (it *OrderedIterator[K]) Prev() bool {
	switch {
	case it.elem == nil:
		it.elem = it.set.data.Back()
		return it.elem != nil
	case it.elem.Prev() == nil:
		return false
	default:
		it.elem = it.elem.Prev()
		return true
	}
}

// Equal returns true if both iterators point at the same key of the same set
func (it OrderedIterator[K]) Equal(other OrderedIterator[K]) bool {
	return it.set == other.set && it.elem == other.elem
}
