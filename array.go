package dynarray

import (
	"bytes"
	"math"

	"go.uber.org/zap"
)

// Array is a handle to a growable, contiguous run of element bytes. The zero
// value is the null handle: it owns no storage and reports zero size and
// capacity. Alloc moves it to the allocated state and Free moves it back.
//
// All offsets and extents are in bytes. Element strides are the caller's
// business; see Vector for a typed wrapper.
//
// Copying an Array copies the reference, not the storage. Array is not safe
// for concurrent use; see SafeArray.
type Array struct {
	h *header
}

// Alloc allocates storage for capacity bytes with size 0. The destructor, if
// not nil, is called on every byte range that later leaves logical use.
// Alloc panics with ErrAlreadyAllocated if the handle already owns storage.
func (a *Array) Alloc(capacity int, destructor Destructor, opts ...Option) {
	check(a.h == nil, ErrAlreadyAllocated, "array == nil")
	check(capacity >= 0, ErrOutOfRange, "capacity >= 0")

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	h := &header{
		allocator:  o.allocator,
		destructor: destructor,
		logger:     o.logger,
		zeroFill:   o.zeroFill,
	}
	if capacity > 0 {
		h.grow(capacity)
	}
	a.h = h
	h.logger.Debug("dynarray alloc", zap.Int("capacity", capacity))
}

// Free finalizes the live range, releases the block through the captured
// allocator and resets the handle to null. Free on a null handle is a no-op.
func (a *Array) Free() {
	h := a.h
	if h == nil {
		return
	}
	h.finalize(h.live())
	h.size = 0
	h.release()
	h.capacity = 0
	a.h = nil
	h.logger.Debug("dynarray free")
}

// Allocated reports whether the handle owns storage.
func (a *Array) Allocated() bool {
	return a.h != nil
}

// Capacity returns the reserved byte extent, 0 for a null handle.
func (a *Array) Capacity() int {
	if a.h == nil {
		return 0
	}
	return a.h.capacity
}

// Size returns the byte extent in logical use, 0 for a null handle.
func (a *Array) Size() int {
	if a.h == nil {
		return 0
	}
	return a.h.size
}

// Empty reports whether Size is 0.
func (a *Array) Empty() bool {
	return a.Size() == 0
}

// Bytes returns the live range [0, Size). The slice aliases the backing block
// and is invalidated by any operation that may reallocate.
func (a *Array) Bytes() []byte {
	if a.h == nil {
		return nil
	}
	return a.h.live()
}

// Data returns the whole reserved block [0, Capacity).
func (a *Array) Data() []byte {
	if a.h == nil {
		return nil
	}
	return a.h.data
}

// Reserve ensures Capacity >= capacity, growing to the next power of two.
// It never shrinks.
func (a *Array) Reserve(capacity int) {
	h := a.mustHeader()
	h.reserve(capacity)
}

func (h *header) reserve(capacity int) {
	if capacity > h.capacity {
		h.grow(growCapacity(capacity))
	}
}

// Resize sets the live extent to size. Shrinking finalizes the discarded tail
// and leaves capacity alone; growing reserves as needed and zero-fills the
// new bytes unless the array was allocated WithoutZeroFill.
func (a *Array) Resize(size int) {
	h := a.mustHeader()
	check(size >= 0, ErrOutOfRange, "size >= 0")

	switch old := h.size; {
	case size < old:
		h.finalize(h.data[size:old])
		h.size = size
	case size > old:
		h.reserve(size)
		if h.zeroFill {
			clear(h.data[old:size])
		}
		h.size = size
	}
}

// ShrinkToFit reallocates the block to exactly Size bytes. It is a no-op on
// a null handle or when capacity already equals size.
func (a *Array) ShrinkToFit() {
	h := a.h
	if h == nil || h.capacity <= h.size {
		return
	}
	old := h.capacity

	var fresh []byte
	if h.size > 0 {
		fresh = h.allocator.Resize(nil, h.size)
		check(len(fresh) == h.size, ErrAllocatorSize, "len(fresh) == size")
		copy(fresh, h.live())
	}
	h.release()
	h.data = fresh
	h.capacity = h.size

	h.logger.Debug("dynarray shrink",
		zap.Int("old capacity", old),
		zap.Int("new capacity", h.capacity),
	)
}

// Append extends the live range by n bytes and returns the offset of the new
// region. The caller fills it; its previous contents are unspecified.
func (a *Array) Append(n int) int {
	h := a.mustHeader()
	check(n >= 0, ErrOutOfRange, "n >= 0")
	check(n <= math.MaxInt-h.size, ErrOutOfRange, "size + n <= MaxInt")

	offset := h.size
	h.reserve(offset + n)
	h.size = offset + n
	return offset
}

// Insert opens an n byte gap at offset, moving [offset, Size) up by n, and
// returns offset. The gap's contents are unspecified.
func (a *Array) Insert(offset, n int) int {
	h := a.mustHeader()
	check(offset >= 0 && offset <= h.size, ErrOutOfRange, "offset <= size")
	check(n >= 0, ErrOutOfRange, "n >= 0")
	check(n <= math.MaxInt-h.size, ErrOutOfRange, "size + n <= MaxInt")

	old := h.size
	h.reserve(old + n)
	copy(h.data[offset+n:old+n], h.data[offset:old])
	h.size = old + n
	return offset
}

// Remove finalizes [offset, offset+n) and closes the gap by moving the tail
// down, keeping the order of the remaining bytes.
func (a *Array) Remove(offset, n int) {
	h := a.mustRange(offset, n)

	h.finalize(h.data[offset : offset+n])
	copy(h.data[offset:], h.data[offset+n:h.size])
	h.size -= n
}

// RemoveUnordered finalizes [offset, offset+n) and fills the gap with the
// last bytes of the array instead of shifting the tail. Order of the
// remaining bytes is not preserved. Cost is O(n), independent of offset.
func (a *Array) RemoveUnordered(offset, n int) {
	h := a.mustRange(offset, n)

	h.finalize(h.data[offset : offset+n])
	newSize := h.size - n
	// Only the part of the tail that lands past newSize has to move.
	from := max(offset+n, newSize)
	copy(h.data[offset:], h.data[from:h.size])
	h.size = newSize
}

// Clear finalizes the live range and sets Size to 0. Capacity is unchanged.
func (a *Array) Clear() {
	h := a.mustHeader()
	h.finalize(h.live())
	h.size = 0
}

// FrontIndex returns the offset of the first element, always 0.
func (a *Array) FrontIndex() int {
	a.mustHeader()
	return 0
}

// BackIndex returns the element index of the last element for the given
// stride. It panics on an empty array.
func (a *Array) BackIndex(stride int) int {
	h := a.mustHeader()
	check(stride > 0, ErrInvalidStride, "stride > 0")
	check(h.size >= stride, ErrOutOfRange, "size >= stride")
	return h.size/stride - 1
}

// Pop removes the last stride bytes.
func (a *Array) Pop(stride int) {
	i := a.BackIndex(stride)
	a.Remove(i*stride, stride)
}

// Compare compares the live bytes of x and y lexicographically. When one is
// a prefix of the other, the shorter sorts first. Null handles compare as
// empty.
func Compare(x, y *Array) int {
	return bytes.Compare(x.Bytes(), y.Bytes())
}

func (a *Array) mustHeader() *header {
	check(a.h != nil, ErrUninitialized, "array != nil")
	return a.h
}

func (a *Array) mustRange(offset, n int) *header {
	h := a.mustHeader()
	check(offset >= 0 && offset <= h.size, ErrOutOfRange, "offset <= size")
	check(n >= 0 && n <= h.size-offset, ErrOutOfRange, "n <= size - offset")
	return h
}
