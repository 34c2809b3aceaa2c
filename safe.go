package dynarray

import (
	"sync"
)

// SafeArray is a mutex-protected wrapper around Array for callers that share
// one array between goroutines. Array itself does no locking.
//
// Offsets returned by Append and Insert are only meaningful while no other
// goroutine mutates the array; use With to fill a region in the same
// critical section that reserved it.
type SafeArray struct {
	mu sync.Mutex
	a  Array
}

// NewSafeArray allocates a SafeArray with the given capacity and destructor.
func NewSafeArray(capacity int, destructor Destructor, opts ...Option) *SafeArray {
	s := &SafeArray{}
	s.a.Alloc(capacity, destructor, opts...)
	return s
}

// With runs fn with exclusive access to the underlying Array.
func (s *SafeArray) With(fn func(a *Array)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.a)
}

// AppendBytes thread-safely appends a copy of b and returns its offset.
func (s *SafeArray) AppendBytes(b []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	off := s.a.Append(len(b))
	copy(s.a.Bytes()[off:], b)
	return off
}

// InsertBytes thread-safely inserts a copy of b at offset.
func (s *SafeArray) InsertBytes(offset int, b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Insert(offset, len(b))
	copy(s.a.Bytes()[offset:], b)
}

// Reserve thread-safely ensures capacity.
func (s *SafeArray) Reserve(capacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reserve(capacity)
}

// Resize thread-safely sets the live extent.
func (s *SafeArray) Resize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Resize(size)
}

// ShrinkToFit thread-safely trims capacity to size.
func (s *SafeArray) ShrinkToFit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.ShrinkToFit()
}

// Remove thread-safely removes [offset, offset+n) preserving order.
func (s *SafeArray) Remove(offset, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Remove(offset, n)
}

// RemoveUnordered thread-safely removes [offset, offset+n) by swapping in the tail.
func (s *SafeArray) RemoveUnordered(offset, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.RemoveUnordered(offset, n)
}

// Clear thread-safely finalizes the live range.
func (s *SafeArray) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Snapshot thread-safely copies the live range.
func (s *SafeArray) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.a.Bytes()...)
}

// Free thread-safely finalizes and releases the storage. Any subsequent
// mutation panics with ErrUninitialized.
func (s *SafeArray) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free()
}
