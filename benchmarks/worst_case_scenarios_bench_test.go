package dynarray_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/dynarray"
)

// BenchmarkWorstCaseScenarios covers patterns where a contiguous array
// pays for moving its tail. They help identify when NOT to use one.
func BenchmarkWorstCaseScenarios(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		// Every insert at the front moves the whole array
		b.Run(fmt.Sprintf("InsertFront_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var v dynarray.Vector[int64]
				v.Alloc(0, nil)
				for j := 0; j < n; j++ {
					v.Insert(0, int64(j))
				}
				v.Free()
			}
		})

		// Ordered removal from the front is O(n) per call
		b.Run(fmt.Sprintf("RemoveFront_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var v dynarray.Vector[int64]
				v.Alloc(n, nil)
				v.Resize(n)
				for !v.Empty() {
					v.Remove(0)
				}
				v.Free()
			}
		})

		// Unordered removal only moves the removed count
		b.Run(fmt.Sprintf("RemoveUnorderedFront_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var v dynarray.Vector[int64]
				v.Alloc(n, nil)
				v.Resize(n)
				for !v.Empty() {
					v.RemoveUnordered(0)
				}
				v.Free()
			}
		})
	}
}

// BenchmarkArenaInterleaved grows two arrays on one arena so neither block
// stays at the tip and every grow relocates
func BenchmarkArenaInterleaved(b *testing.B) {
	b.Run("Interleaved", func(b *testing.B) {
		ar := dynarray.NewArena(1 << 20)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var x, y dynarray.Array
			x.Alloc(0, nil, dynarray.WithAllocator(ar))
			y.Alloc(0, nil, dynarray.WithAllocator(ar))
			for j := 0; j < 1000; j++ {
				x.Append(8)
				y.Append(8)
			}
			x.Free()
			y.Free()
			ar.Reset()
		}
	})

	b.Run("Sequential", func(b *testing.B) {
		ar := dynarray.NewArena(1 << 20)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var x, y dynarray.Array
			x.Alloc(0, nil, dynarray.WithAllocator(ar))
			for j := 0; j < 1000; j++ {
				x.Append(8)
			}
			y.Alloc(0, nil, dynarray.WithAllocator(ar))
			for j := 0; j < 1000; j++ {
				y.Append(8)
			}
			y.Free()
			x.Free()
			ar.Reset()
		}
	})
}
