package dynarray

// Allocator is the single resize-or-free primitive every Array uses for its
// backing block.
//
//   - Resize(nil, n) with n > 0 returns a fresh block of length n.
//   - Resize(b, n) with n > 0 returns a block of length n holding the first
//     min(len(b), n) bytes of b. It may return b resliced or a new block.
//   - Resize(b, 0) frees b and must return nil.
//
// Allocation failure is not reported: an allocator that cannot satisfy a
// request panics, and the Array does not try to recover.
type Allocator interface {
	Resize(block []byte, size int) []byte
}

// AllocatorFunc adapts an ordinary function to the Allocator interface.
type AllocatorFunc func(block []byte, size int) []byte

// Resize calls f(block, size).
func (f AllocatorFunc) Resize(block []byte, size int) []byte {
	return f(block, size)
}

// HeapAllocator serves blocks from the Go heap. Freed blocks are left to the
// garbage collector. It is the default allocator.
type HeapAllocator struct{}

var _ Allocator = HeapAllocator{}

// Resize implements Allocator.
func (HeapAllocator) Resize(block []byte, size int) []byte {
	if size == 0 {
		return nil
	}
	if size <= cap(block) {
		// Bytes past len(block) may hold stale data from an earlier shrink.
		return block[:size]
	}
	grown := make([]byte, size)
	copy(grown, block)
	return grown
}

// DefaultAllocator is used when no WithAllocator option is given.
var DefaultAllocator Allocator = HeapAllocator{}
