package bitvec

import "fmt"

// PushBack appends a bit at the end of the vector, growing it if necessary.
func (v *Vector) PushBack(value bool) {
	if v.size == v.capacity {
		target := growthTarget(v.capacity)
		v.grow(target, bucketsFor(target))
	}

	// Buckets past the size are always zero, so only a true bit needs writing
	if value {
		v.put(v.size, true)
	}
	v.size++
}

// PopBack removes the last bit of the vector.
func (v *Vector) PopBack() error {
	if v.size == 0 {
		return fmt.Errorf("pop back: %w", ErrEmpty)
	}

	v.put(v.size-1, false)
	v.size--
	return nil
}

// PopFront removes the first bit of the vector, shifting every remaining bit down by one.
func (v *Vector) PopFront() error {
	if v.size == 0 {
		return fmt.Errorf("pop front: %w", ErrEmpty)
	}

	v.shiftDown(0)
	return nil
}

// Insert inserts a bit before the position, shifting the bits at and after it up by one.
// Inserting at Size() appends.
func (v *Vector) Insert(position int, value bool) error {
	if position < 0 || position > v.size {
		return fmt.Errorf("insert: %w", errIndex(position, v.size))
	}

	// Empty vector, only position 0 is possible here
	if v.size == 0 {
		v.PushBack(value)
		return nil
	}

	if v.size == v.capacity {
		target := growthTarget(v.capacity)
		v.grow(target, bucketsFor(target))
	}

	// Walk from the highest bit so nothing is overwritten before it is moved
	for i := v.size - 1; i >= position; i-- {
		v.put(i+1, v.get(i))
	}

	v.put(position, value)
	v.size++
	return nil
}

// Remove removes the bit at the position, shifting the bits after it down by one.
func (v *Vector) Remove(position int) error {
	switch {
	case v.size == 0:
		return fmt.Errorf("remove: %w", ErrEmpty)
	case position < 0 || position >= v.size:
		return fmt.Errorf("remove: %w", errIndex(position, v.size))
	}

	v.shiftDown(position)
	return nil
}

// shiftDown moves every bit in (position, size) one slot down, clears the vacated last
// bit and shrinks the size by one.
func (v *Vector) shiftDown(position int) {
	last := v.size - 1
	for i := position; i < last; i++ {
		v.put(i, v.get(i+1))
	}

	v.put(last, false)
	v.size--
}

// Resize changes the size of the vector to n bits. Shrinking clears the truncated bits but
// keeps the buckets. Growing past the capacity reallocates to exactly fit n bits. In either
// direction the size becomes n, and any newly exposed bits are false.
func (v *Vector) Resize(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("resize: %w", errIndex(n, v.size))
	case n < v.size:
		v.clearRange(n, v.size)
		v.size = n
	case n > v.size:
		if n > v.capacity {
			v.grow(n, (n+7)/8)
		}

		v.clearRange(v.size, n)
		v.size = n
	}
	return nil
}
