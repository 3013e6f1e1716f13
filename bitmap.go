package bitvec

import (
	"github.com/kelindar/bitmap"
)

// Bitmap clears the destination and sets in it the index of every true bit of the
// vector, returning the destination.
func (v *Vector) Bitmap(dst bitmap.Bitmap) bitmap.Bitmap {
	dst.Clear()
	for i := 0; i < v.size; i++ {
		if v.get(i) {
			dst.Set(uint32(i))
		}
	}
	return dst
}

// FromBitmap creates a vector of the given size where bit i is true if the source
// bitmap contains i.
func FromBitmap(src bitmap.Bitmap, size int) *Vector {
	size = max(size, 0)
	v := New(WithCapacity(size))
	if err := v.Resize(size); err != nil {
		panic(err)
	}

	src.Range(func(x uint32) {
		if int(x) < size {
			v.put(int(x), true)
		}
	})
	return v
}
