//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package dynarray

// MmapAllocator falls back to the Go heap on platforms without anonymous
// mappings.
type MmapAllocator struct{}

var _ Allocator = MmapAllocator{}

// Resize implements Allocator.
func (MmapAllocator) Resize(block []byte, size int) []byte {
	return HeapAllocator{}.Resize(block, size)
}
