package bitvec

import (
	"math/rand/v2"
	"testing"

	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/assert"
)

func TestToBitmap(t *testing.T) {
	data, _ := genRand(500)()
	v := fromBools(data...)

	var ref bitmap.Bitmap
	for i, b := range data {
		if b {
			ref.Set(uint32(i))
		}
	}

	// Reuse a dirty destination
	dst := bitmap.Bitmap{}
	dst.Set(10000)
	out := v.Bitmap(dst)

	assert.Equal(t, ref.Count(), out.Count())
	assert.Equal(t, v.Count(), out.Count())
	assert.False(t, out.Contains(10000))
	for i, b := range data {
		assert.Equal(t, b, out.Contains(uint32(i)), "bit %d", i)
	}
}

func TestFromBitmap(t *testing.T) {
	var src bitmap.Bitmap
	expect := make([]bool, 200)
	for i := 0; i < 80; i++ {
		x := rand.IntN(len(expect))
		src.Set(uint32(x))
		expect[x] = true
	}

	// Values past the size are dropped
	src.Set(500)

	v := FromBitmap(src, len(expect))
	assertVector(t, expect, v)
}

func TestFromBitmapEmpty(t *testing.T) {
	v := FromBitmap(nil, 0)
	assertVector(t, []bool{}, v)

	v = FromBitmap(nil, -3)
	assertVector(t, []bool{}, v)

	v = FromBitmap(nil, 10)
	assertVector(t, make([]bool, 10), v)
}

func TestBitmapRoundTrip(t *testing.T) {
	data, _ := genAlternating(75)()
	v := fromBools(data...)
	assert.True(t, v.Equal(FromBitmap(v.Bitmap(nil), v.Size())))
}
