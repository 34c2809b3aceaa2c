package dynarray

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares arrays on different allocators with
// builtin slices for common request-scoped patterns
func BenchmarkRealisticUsage(b *testing.B) {
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	// Test 1: Build a batch of records, then drop it
	b.Run("BuildBatch/Heap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[record]
			v.Alloc(0, nil)
			for j := 0; j < 100; j++ {
				v.Append(record{ID: int64(j)})
			}
			v.Free()
		}
	})

	b.Run("BuildBatch/Arena", func(b *testing.B) {
		a := NewArena(64 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var v Vector[record]
			v.Alloc(0, nil, WithAllocator(a))
			for j := 0; j < 100; j++ {
				v.Append(record{ID: int64(j)})
			}
			v.Free()
			// Reclaim relocated blocks (simulates request cleanup)
			a.Reset()
		}
	})

	b.Run("BuildBatch/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []record
			for j := 0; j < 100; j++ {
				s = append(s, record{ID: int64(j)})
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 2: Work set with unordered removal
	b.Run("WorkSet/Vector", func(b *testing.B) {
		var v Vector[int64]
		v.Alloc(1024, nil)
		defer v.Free()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := int64(0); j < 64; j++ {
				v.Append(j)
			}
			for !v.Empty() {
				v.RemoveUnordered(0)
			}
		}
	})

	b.Run("WorkSet/Builtin", func(b *testing.B) {
		s := make([]int64, 0, 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := int64(0); j < 64; j++ {
				s = append(s, j)
			}
			for len(s) > 0 {
				s[0] = s[len(s)-1]
				s = s[:len(s)-1]
			}
		}
	})

	// Test 3: No GC pressure test
	b.Run("NoGCPressure/Mmap", func(b *testing.B) {
		var v Vector[int64]
		v.Alloc(0, nil, WithAllocator(MmapAllocator{}))
		defer v.Free()
		runtime.GC()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v.Append(int64(i))
			if i%100000 == 99999 {
				v.Clear()
			}
		}
	})

	b.Run("NoGCPressure/Builtin", func(b *testing.B) {
		var s []int64
		runtime.GC()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s = append(s, int64(i))
			if i%100000 == 99999 {
				s = s[:0]
			}
		}
	})
}
