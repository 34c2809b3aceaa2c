package dynarray

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator usable as an array Allocator. Blocks are
// carved out of large chunks; freeing a block only gives memory back when the
// block is the most recent one in the current chunk. Everything else is
// reclaimed in bulk by Reset or Release.
//
// Arena is not goroutine-safe. Arrays that share an arena must be used from
// one goroutine, and must be freed before the arena is Reset.
type Arena struct {
	chunks       []chunk
	chunkSize    int
	currentChunk *chunk
}

var _ Allocator = (*Arena)(nil)

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// AllocBytes returns n bytes carved from the current chunk, growing the arena
// when it does not fit. Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	a.panicIfReleased()

	c := a.currentChunk
	off := alignPtr(c.offset)
	if off+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
		c = a.currentChunk
		off = 0
	}
	c.offset = off + uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[off])), n)
}

// Resize implements Allocator. A block at the tip of the current chunk is
// grown, shrunk or freed in place; any other block is copied into a fresh
// region and its old bytes stay in the arena until Reset.
func (a *Arena) Resize(block []byte, size int) []byte {
	a.panicIfReleased()

	if block != nil && a.atTip(block) {
		c := a.currentChunk
		start := c.offset - uintptr(cap(block))
		if uintptr(size) <= uintptr(len(c.buf))-start {
			c.offset = start + uintptr(size)
			if size == 0 {
				return nil
			}
			return unsafe.Slice(unsafe.SliceData(block), size)
		}
	}
	if size == 0 {
		return nil
	}
	fresh := a.AllocBytes(size)
	copy(fresh, block)
	return fresh
}

// atTip reports whether block ends exactly at the current chunk's offset.
func (a *Arena) atTip(block []byte) bool {
	c := a.currentChunk
	if c == nil || len(c.buf) == 0 || cap(block) == 0 {
		return false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	return p >= base && p+uintptr(cap(block)) == base+c.offset
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Every block handed out so far becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.currentChunk = &a.chunks[0]
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// SizeInUse returns the bytes handed out across all chunks, including
// alignment padding and blocks abandoned by relocation.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// grow makes a chunk of at least min bytes current. After Reset, chunks that
// are already there are reused before new memory is requested.
func (a *Arena) grow(min int) {
	for i := range a.chunks {
		c := &a.chunks[i]
		if c.offset == 0 && c != a.currentChunk && len(c.buf) >= min {
			a.currentChunk = c
			return
		}
	}
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("dynarray: arena used after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
