package bitvec

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

// ---------------------------------------- Test Helpers ----------------------------------------

// fromBools creates a vector by pushing every value in order
func fromBools(values ...bool) *Vector {
	v := New()
	for _, b := range values {
		v.PushBack(b)
	}
	return v
}

// toBools collects the bits of the vector through the public read path
func toBools(v *Vector) []bool {
	out := make([]bool, 0, v.Size())
	for i := 0; i < v.Size(); i++ {
		out = append(out, v.At(i))
	}
	return out
}

// testPair creates both our vector and a reference bitset with the same data
func testPair(data []bool) (*Vector, *bitset.BitSet) {
	our := New()
	ref := bitset.New(uint(len(data)))
	for i, b := range data {
		our.PushBack(b)
		ref.SetTo(uint(i), b)
	}
	return our, ref
}

// assertVector checks the vector against the expected bits, including the invariants
// on the storage that are not visible through the public API.
func assertVector(t *testing.T, expect []bool, v *Vector) {
	t.Helper()
	assert.Equal(t, len(expect), v.Size(), "Size mismatch")
	assert.Equal(t, len(expect) == 0, v.Empty(), "Empty mismatch")
	assert.Equal(t, expect, toBools(v), "Bits mismatch")
	assertStorage(t, v)

	count := 0
	for _, b := range expect {
		if b {
			count++
		}
	}
	assert.Equal(t, count, v.Count(), "Count mismatch")
}

// assertStorage checks the size, capacity and zero tail invariants
func assertStorage(t *testing.T, v *Vector) {
	t.Helper()
	assert.LessOrEqual(t, v.size, v.capacity, "size past capacity")
	assert.LessOrEqual(t, v.capacity, len(v.buckets)*8, "capacity past buckets")

	tail := 0
	for i := v.size; i < len(v.buckets)*8; i++ {
		if v.get(i) {
			tail++
		}
	}
	assert.Zero(t, tail, "bits set past the size")
}

// assertEqualBitset compares our vector with the reference bitset
func assertEqualBitset(t *testing.T, ref *bitset.BitSet, our *Vector) {
	t.Helper()
	assert.Equal(t, int(ref.Count()), our.Count(), "Count mismatch")
	for i := 0; i < our.Size(); i++ {
		assert.Equal(t, ref.Test(uint(i)), our.At(i), "bit %d mismatch", i)
	}
	assertStorage(t, our)
}

// ---------------------------------------- Data Generators ----------------------------------------

type dataGen = func() ([]bool, string)

// genRand creates random bits
func genRand(size int) dataGen {
	return func() ([]bool, string) {
		data := make([]bool, size)
		for i := range data {
			data[i] = rand.IntN(2) == 1
		}
		return data, "rnd"
	}
}

// genAlternating creates true, false, true, ...
func genAlternating(size int) dataGen {
	return func() ([]bool, string) {
		data := make([]bool, size)
		for i := range data {
			data[i] = i%2 == 0
		}
		return data, "alt"
	}
}

// genFill creates bits all set to the same value
func genFill(size int, value bool) dataGen {
	return func() ([]bool, string) {
		data := make([]bool, size)
		for i := range data {
			data[i] = value
		}
		return data, "fil"
	}
}

// genPattern creates bits from the binary representation of a byte pattern
func genPattern(size int, pattern uint8) dataGen {
	return func() ([]bool, string) {
		data := make([]bool, size)
		for i := range data {
			data[i] = bits.RotateLeft8(pattern, -(i%8))&1 == 1
		}
		return data, "pat"
	}
}
