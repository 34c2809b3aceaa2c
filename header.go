package dynarray

import (
	"math"
	"math/bits"

	"go.uber.org/zap"
)

// Destructor finalizes a contiguous range of element bytes that is leaving
// logical use. It is called once per discarded range, never per element.
type Destructor func(b []byte)

// header is the metadata that travels with the backing block. It is the
// source of truth for capacity and size.
type header struct {
	allocator  Allocator
	destructor Destructor
	logger     *zap.Logger
	zeroFill   bool

	capacity int
	size     int
	data     []byte // len(data) == capacity
}

// live returns the bytes in logical use.
func (h *header) live() []byte {
	return h.data[:h.size]
}

// finalize hands b to the destructor, if any. Empty ranges are skipped.
func (h *header) finalize(b []byte) {
	if h.destructor != nil && len(b) > 0 {
		h.destructor(b)
	}
}

// release frees data through the captured allocator.
func (h *header) release() {
	if h.data == nil {
		return
	}
	leaked := h.allocator.Resize(h.data, 0)
	check(leaked == nil, ErrAllocatorLeak, "leaked == nil")
	h.data = nil
}

// grow moves the block to exactly capacity bytes through the allocator.
func (h *header) grow(capacity int) {
	old := h.capacity
	data := h.allocator.Resize(h.data, capacity)
	check(len(data) == capacity, ErrAllocatorSize, "len(data) == capacity")
	h.data = data
	h.capacity = capacity
	h.logger.Debug("dynarray grow",
		zap.Int("old capacity", old),
		zap.Int("new capacity", capacity),
		zap.Int("size", h.size),
	)
}

// growCapacity returns the smallest power of two >= n. Values above the
// largest representable power of two saturate to math.MaxInt.
func growCapacity(n int) int {
	if n <= 1 {
		return n
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << shift
}
