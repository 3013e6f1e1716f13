package bitvec

import "iter"

// Range calls the given function for each bit in the vector, in order
func (v *Vector) Range(fn func(i int, value bool)) {
	for i := 0; i < v.size; i++ {
		fn(i, v.get(i))
	}
}

// All returns a sequence of (index, bit) pairs from the first bit to the last
func (v *Vector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.get(i)) {
				return
			}
		}
	}
}

// Backward returns a sequence of (index, bit) pairs from the last bit to the first
func (v *Vector) Backward() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.get(i)) {
				return
			}
		}
	}
}

// Filter iterates over the vector and calls a predicate provided for each bit. If the
// predicate returns false, the bit is removed and the bits after it move down, keeping
// their order.
func (v *Vector) Filter(f func(i int, value bool) bool) {
	out := 0
	for i := 0; i < v.size; i++ {
		value := v.get(i)
		if !f(i, value) {
			continue
		}

		if out != i {
			v.put(out, value)
		}
		out++
	}

	v.size = out
	v.trim()
}
