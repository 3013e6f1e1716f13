package bitvec

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/bits-and-blooms/bitset"
)

func BenchmarkOps(b *testing.B) {
	for _, size := range []int{1000, 1000000} {
		data, _ := genRand(size)()
		our, ref := testPair(data)

		b.Run(fmt.Sprintf("push-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := New()
				for _, x := range data {
					v.PushBack(x)
				}
			}
		})

		b.Run(fmt.Sprintf("push-%d-bitset", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				bs := bitset.New(0)
				for j, x := range data {
					bs.SetTo(uint(j), x)
				}
			}
		})

		b.Run(fmt.Sprintf("at-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				our.At(i % size)
			}
		})

		b.Run(fmt.Sprintf("at-%d-bitset", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ref.Test(uint(i % size))
			}
		})

		b.Run(fmt.Sprintf("count-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				our.Count()
			}
		})

		b.Run(fmt.Sprintf("count-%d-bitset", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ref.Count()
			}
		})
	}
}

func BenchmarkShift(b *testing.B) {
	for _, size := range []int{100, 10000} {
		data, _ := genRand(size)()
		v := fromBools(data...)

		b.Run(fmt.Sprintf("insert-remove-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				pos := rand.IntN(size)
				_ = v.Insert(pos, true)
				_ = v.Remove(pos)
			}
		})

		b.Run(fmt.Sprintf("pop-front-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = v.PopFront()
				v.PushBack(true)
			}
		})
	}
}

func BenchmarkRange(b *testing.B) {
	for _, size := range []int{1000, 1000000} {
		data, _ := genRand(size)()
		our := fromBools(data...)
		ref := roaring.New()
		for i, x := range data {
			if x {
				ref.Add(uint32(i))
			}
		}

		b.Run(fmt.Sprintf("rng-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				our.Range(func(int, bool) {})
			}
		})

		b.Run(fmt.Sprintf("rng-%d-roaring", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ref.Iterate(func(uint32) bool { return true })
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	data, _ := genRand(1e6)()
	v := fromBools(data...)
	into := New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v.Clone(into)
	}
}
