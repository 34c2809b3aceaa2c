//go:build linux || darwin || freebsd || netbsd || openbsd

package dynarray

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// MmapAllocator serves each block from its own anonymous private mapping.
// Lengths are rounded up to whole pages; growing within the mapped length
// and shrinking stay in place.
//
// The mapped memory is invisible to the garbage collector, so arrays using
// this allocator must not store Go pointers in their elements.
type MmapAllocator struct{}

var _ Allocator = MmapAllocator{}

// Resize implements Allocator. Mapping failures panic.
func (m MmapAllocator) Resize(block []byte, size int) []byte {
	if size == 0 {
		m.unmap(block)
		return nil
	}
	if size <= cap(block) {
		return block[:size]
	}
	mapped, err := unix.Mmap(-1, 0, roundToPage(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(errors.Wrapf(err, "dynarray: mmap %d bytes", size))
	}
	copy(mapped, block)
	m.unmap(block)
	return mapped[:size]
}

func (MmapAllocator) unmap(block []byte) {
	if cap(block) == 0 {
		return
	}
	if err := unix.Munmap(block[:cap(block)]); err != nil {
		panic(errors.Wrap(err, "dynarray: munmap"))
	}
}

func roundToPage(n int) int {
	page := unix.Getpagesize()
	return (n + page - 1) / page * page
}
