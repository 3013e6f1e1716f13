package bitvec

import "fmt"

const (
	forward = 1
	reverse = -1
)

// cursor is the position shared by every iterator kind. It caches the bucket and the
// bit of its logical index along with the value found there.
type cursor struct {
	vec    *Vector
	bucket int
	bit    uint8
	value  bool
	step   int // +1 for forward iterators, -1 for reverse ones
}

func newCursor(v *Vector, index, step int) cursor {
	c := cursor{vec: v, step: step}
	c.seek(index)
	return c
}

// Index returns the logical index the iterator points at
func (c *cursor) Index() int {
	return c.bucket*8 + int(c.bit)
}

// Value returns the cached bit under the iterator, or false on a sentinel
func (c *cursor) Value() bool {
	return c.value
}

// Valid returns true if the iterator points at a bit rather than at a sentinel
func (c *cursor) Valid() bool {
	i := c.Index()
	return i >= 0 && i < c.vec.size
}

// Next moves the iterator one step in its direction
func (c *cursor) Next() error {
	return c.move(c.step)
}

// Prev moves the iterator one step against its direction
func (c *cursor) Prev() error {
	return c.move(-c.step)
}

// bounds returns the inclusive range of positions, sentinel included
func (c *cursor) bounds() (lo, hi int) {
	if c.step == reverse {
		return -1, c.vec.size - 1
	}
	return 0, c.vec.size
}

func (c *cursor) move(delta int) error {
	next := c.Index() + delta
	if lo, hi := c.bounds(); next < lo || next > hi {
		return fmt.Errorf("iterator: %w", errIndex(next, c.vec.size))
	}

	c.seek(next)
	return nil
}

// seek positions the cursor and refreshes the cached value
func (c *cursor) seek(index int) {
	c.bucket, c.bit = bucketIndex(index), bitIndex(index)
	c.load()
}

func (c *cursor) load() {
	c.value = c.Valid() && c.vec.get(c.Index())
}

func (c *cursor) equal(other *cursor) bool {
	return c.vec == other.vec && c.bucket == other.bucket && c.bit == other.bit
}

// ---------------------------------------- Iterator ----------------------------------------

// Iterator is a read-write iterator, walking the vector either forward or in reverse.
type Iterator struct {
	cursor
}

// Set writes the bit under the iterator. It panics on a sentinel.
func (it *Iterator) Set(value bool) {
	it.vec.Set(it.Index(), value)
	it.value = value
}

// Equal returns true if both iterators point at the same bit of the same vector
func (it *Iterator) Equal(other *Iterator) bool {
	return it.equal(&other.cursor)
}

// Begin returns a forward iterator at the first bit
func (v *Vector) Begin() *Iterator {
	return &Iterator{newCursor(v, 0, forward)}
}

// End returns a forward iterator one past the last bit
func (v *Vector) End() *Iterator {
	return &Iterator{newCursor(v, v.size, forward)}
}

// RBegin returns a reverse iterator at the last bit
func (v *Vector) RBegin() *Iterator {
	return &Iterator{newCursor(v, v.size-1, reverse)}
}

// REnd returns a reverse iterator one before the first bit
func (v *Vector) REnd() *Iterator {
	return &Iterator{newCursor(v, -1, reverse)}
}

// InsertAt inserts a bit before the iterator position. On success the iterator is
// refreshed and points at the inserted bit.
func (v *Vector) InsertAt(it *Iterator, value bool) error {
	if it.vec != v {
		return fmt.Errorf("insert: %w: iterator belongs to another vector", ErrOutOfRange)
	}

	if err := v.Insert(it.Index(), value); err != nil {
		return err
	}

	it.load()
	return nil
}

// RemoveAt removes the bit under the iterator. On success the iterator is refreshed
// and points at the bit that followed the removed one in its direction, or at the
// sentinel.
func (v *Vector) RemoveAt(it *Iterator) error {
	if it.vec != v {
		return fmt.Errorf("remove: %w: iterator belongs to another vector", ErrOutOfRange)
	}

	index := it.Index()
	if err := v.Remove(index); err != nil {
		return err
	}

	if it.step == reverse {
		index--
	}

	it.seek(index)
	return nil
}

// ---------------------------------------- ConstIterator ----------------------------------------

// ConstIterator is a read-only forward iterator
type ConstIterator struct {
	cursor
}

// Equal returns true if both iterators point at the same bit of the same vector
func (it *ConstIterator) Equal(other *ConstIterator) bool {
	return it.equal(&other.cursor)
}

// CBegin returns a read-only iterator at the first bit
func (v *Vector) CBegin() *ConstIterator {
	return &ConstIterator{newCursor(v, 0, forward)}
}

// CEnd returns a read-only iterator one past the last bit
func (v *Vector) CEnd() *ConstIterator {
	return &ConstIterator{newCursor(v, v.size, forward)}
}
