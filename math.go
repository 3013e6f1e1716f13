// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package bitvec

// And performs bitwise AND operation with other vector(s). The vector keeps its size,
// positions past the size of an operand are treated as false.
func (v *Vector) And(other *Vector, extra ...*Vector) {
	v.and(other)
	for _, vx := range extra {
		v.and(vx)
	}
}

// AndNot performs bitwise AND NOT operation with other vector(s)
func (v *Vector) AndNot(other *Vector, extra ...*Vector) {
	v.andNot(other)
	for _, vx := range extra {
		v.andNot(vx)
	}
}

// Or performs bitwise OR operation with other vector(s)
func (v *Vector) Or(other *Vector, extra ...*Vector) {
	v.or(other)
	for _, vx := range extra {
		v.or(vx)
	}
}

// Xor performs bitwise XOR operation with other vector(s)
func (v *Vector) Xor(other *Vector, extra ...*Vector) {
	v.xor(other)
	for _, vx := range extra {
		v.xor(vx)
	}
}

// and performs AND with a single vector
func (v *Vector) and(other *Vector) {
	if other == nil {
		clear(v.buckets)
		return
	}

	n := min(len(v.buckets), len(other.buckets))
	for i := 0; i < n; i++ {
		v.buckets[i] &= other.buckets[i]
	}

	// Nothing to intersect with past the end of the other vector
	clear(v.buckets[n:])
}

// andNot performs AND NOT with a single vector
func (v *Vector) andNot(other *Vector) {
	if other == nil {
		return
	}

	n := min(len(v.buckets), len(other.buckets))
	for i := 0; i < n; i++ {
		v.buckets[i] &^= other.buckets[i]
	}
}

// or performs OR with a single vector
func (v *Vector) or(other *Vector) {
	if other == nil {
		return
	}

	n := min(len(v.buckets), len(other.buckets))
	for i := 0; i < n; i++ {
		v.buckets[i] |= other.buckets[i]
	}
	v.trim()
}

// xor performs XOR with a single vector
func (v *Vector) xor(other *Vector) {
	if other == nil {
		return
	}

	n := min(len(v.buckets), len(other.buckets))
	for i := 0; i < n; i++ {
		v.buckets[i] ^= other.buckets[i]
	}
	v.trim()
}
