// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package bitvec

import (
	"math/bits"
	"strings"
)

const growthFactor = 2

// Vector represents a dynamically sized sequence of booleans packed 8 per byte.
// Bit n lives in bucket n/8 under the mask 1<<(n%8). A vector is a single-threaded
// value and must not be used concurrently.
//
// Iterators obtained from a vector keep a reference to it. Any call that changes
// the size or reallocates the buckets invalidates every outstanding iterator,
// except the one handed to InsertAt or RemoveAt, which is refreshed in place.
type Vector struct {
	buckets  []byte // Owned storage, every bit at or past size is kept zero
	size     int    // Number of valid bits
	capacity int    // Addressable bits, never more than len(buckets)*8
}

// New creates a new empty vector
func New(opts ...Option) *Vector {
	cfg := config{capacity: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Vector{}
	if cfg.capacity >= 0 {
		count := bucketsFor(cfg.capacity)
		v.buckets = allocate(count)
		v.capacity = count * 8
	}
	return v
}

// ---------------------------------------- Addressing ----------------------------------------

// bucketIndex returns the byte holding the bit n. Negative positions map to negative
// buckets, so the reverse sentinel -1 lands on bucket -1.
func bucketIndex(n int) int {
	return n >> 3
}

// bitIndex returns the offset of the bit n within its bucket
func bitIndex(n int) uint8 {
	return uint8(n & 7)
}

// get reads the bit n without bounds checking
func (v *Vector) get(n int) bool {
	return v.buckets[bucketIndex(n)]&(1<<bitIndex(n)) != 0
}

// put writes the bit n without bounds checking
func (v *Vector) put(n int, value bool) {
	mask := byte(1) << bitIndex(n)
	switch value {
	case true:
		v.buckets[bucketIndex(n)] |= mask
	default:
		v.buckets[bucketIndex(n)] &^= mask
	}
}

// ---------------------------------------- Storage ----------------------------------------

// allocate returns count zeroed buckets
func allocate(count int) []byte {
	return make([]byte, count)
}

// bucketsFor returns the number of buckets backing a capacity of n bits. This always
// leaves one spare bucket, which keeps the byte count in lockstep with the bit capacity.
func bucketsFor(n int) int {
	return n/8 + 1
}

// growthTarget returns the next bit capacity when the vector is full
func growthTarget(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * growthFactor
}

// grow reallocates the buckets so the vector can hold capacity bits
func (v *Vector) grow(capacity int, count int) {
	if count > len(v.buckets) {
		buckets := allocate(count)
		copy(buckets, v.buckets)
		v.buckets = buckets
	}
	v.capacity = capacity
}

// Clone clones the vector into the destination, or into a new vector if into is nil.
// The buckets of the clone never alias the ones of the source.
func (v *Vector) Clone(into *Vector) *Vector {
	if into == nil {
		into = new(Vector)
	}
	if into == v {
		return into
	}

	into.Free()
	into.buckets = allocate(len(v.buckets))
	into.capacity = v.capacity
	for i := 0; i < v.size; i++ {
		into.put(i, v.At(i))
	}
	into.size = v.size
	return into
}

// Move transfers the buckets of src into the vector, releasing whatever the vector
// held before. The source is left empty and can be reused.
func (v *Vector) Move(src *Vector) {
	if src == nil || src == v {
		return
	}

	v.Free()
	v.buckets, v.size, v.capacity = src.buckets, src.size, src.capacity
	src.buckets, src.size, src.capacity = nil, 0, 0
}

// Free releases the buckets and resets the vector to zero. It is safe to call it
// more than once.
func (v *Vector) Free() {
	v.buckets = nil
	v.size = 0
	v.capacity = 0
}

// ---------------------------------------- Accessors ----------------------------------------

// At returns the bit at index i. It panics if i is outside of [0, Size()).
func (v *Vector) At(i int) bool {
	if i < 0 || i >= v.size {
		panic(errIndex(i, v.size))
	}
	return v.get(i)
}

// Set sets the bit at index i. It panics if i is outside of [0, Size()).
func (v *Vector) Set(i int, value bool) {
	if i < 0 || i >= v.size {
		panic(errIndex(i, v.size))
	}
	v.put(i, value)
}

// Size returns the number of bits in the vector
func (v *Vector) Size() int {
	return v.size
}

// Capacity returns the number of bits the vector can hold without growing
func (v *Vector) Capacity() int {
	return v.capacity
}

// Empty returns true if the vector holds no bits
func (v *Vector) Empty() bool {
	return v.size == 0
}

// Count returns the number of bits set to true
func (v *Vector) Count() int {
	count := 0
	for _, b := range v.buckets {
		count += bits.OnesCount8(b)
	}
	return count
}

// Equal returns true if both vectors have the same size and the same bits
func (v *Vector) Equal(other *Vector) bool {
	switch {
	case v == other:
		return true
	case other == nil || v.size != other.size:
		return false
	}

	full := bucketIndex(v.size)
	for i := 0; i < full; i++ {
		if v.buckets[i] != other.buckets[i] {
			return false
		}
	}

	for i := full * 8; i < v.size; i++ {
		if v.get(i) != other.get(i) {
			return false
		}
	}
	return true
}

// String renders the vector as space-separated true/false tokens. It is meant for
// debugging and the format is not stable.
func (v *Vector) String() string {
	var sb strings.Builder
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}

		switch v.get(i) {
		case true:
			sb.WriteString("true")
		default:
			sb.WriteString("false")
		}
	}
	return sb.String()
}

// clearRange zeroes the bits in [from, to)
func (v *Vector) clearRange(from, to int) {
	for i := from; i < to; i++ {
		v.put(i, false)
	}
}

// trim zeroes every bit at or past the size
func (v *Vector) trim() {
	if len(v.buckets) == 0 {
		return
	}

	hi, lo := bucketIndex(v.size), bitIndex(v.size)
	if hi >= len(v.buckets) {
		return
	}

	v.buckets[hi] &= byte(1)<<lo - 1
	clear(v.buckets[hi+1:])
}
