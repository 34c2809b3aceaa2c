// Package dynarray implements a growable, contiguous dynamic array whose
// core works on raw byte extents, plus a thin generic wrapper for typed use.
//
// # Overview
//
// An Array owns one backing block obtained from a pluggable Allocator. The
// core never sees element types: callers pass byte offsets and byte counts,
// and an optional Destructor is handed every byte range that leaves logical
// use. This keeps all of the storage logic in one place:
//
//   - Power-of-two capacity growth (amortized O(1) appends)
//   - Explicit shrink-to-fit
//   - Ordered removal (tail shifted down, order kept)
//   - Unordered removal (tail swapped into the gap, O(removed bytes))
//   - Batched finalization on remove, truncating resize, clear and free
//
// # Basic Usage
//
//	var a dynarray.Array            // null handle
//	a.Alloc(0, nil)                 // explicit initialization
//	defer a.Free()                  // explicit destruction
//
//	off := a.Append(8)              // reserve 8 bytes at the end
//	binary.LittleEndian.PutUint64(a.Bytes()[off:], 42)
//	a.Insert(0, 8)                  // open a gap at the front
//	a.Remove(0, 8)                  // close it again
//
// # Typed Usage
//
//	var v dynarray.Vector[int64]
//	v.Alloc(0, func(gone []int64) { ... })
//	defer v.Free()
//
//	v.Append(1)
//	v.Insert(0, 0)
//	v.RemoveUnordered(0)
//	fmt.Println(v.Slice())
//
// Element types must have a non-zero size and must not contain Go pointers.
//
// # Allocators
//
// The allocator is captured by Alloc and used for every later resize and for
// the final free:
//
//   - HeapAllocator: the Go heap (default)
//   - Arena: chunked bump allocator, bulk reclaim via Reset
//   - MmapAllocator: anonymous page mappings
//   - MetricsAllocator: prometheus accounting around any of the above
//
// # Error Handling
//
// Misuse (operating on a null handle, allocating twice, out of range
// offsets) panics with an error wrapping ErrUninitialized,
// ErrAlreadyAllocated or ErrOutOfRange. Checks run before anything is
// mutated. Use Catch to turn such a panic into an error at an API boundary.
//
// # Thread Safety
//
// Array and Vector are not safe for concurrent use. SafeArray wraps an Array
// in a mutex for callers that need to share one.
package dynarray
