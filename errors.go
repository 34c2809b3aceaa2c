package dynarray

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrUninitialized indicates a mutator or accessor was called on a null handle.
	ErrUninitialized = errors.New("array uninitialized")

	// ErrAlreadyAllocated indicates Alloc was called on a handle that already owns storage.
	ErrAlreadyAllocated = errors.New("array already allocated")

	// ErrOutOfRange indicates an offset or extent outside the live range.
	ErrOutOfRange = errors.New("array index out of range")

	// ErrAllocatorLeak indicates an allocator returned a block when asked to free.
	ErrAllocatorLeak = errors.New("allocator leaked memory")

	// ErrAllocatorSize indicates an allocator returned a block of the wrong length.
	ErrAllocatorSize = errors.New("allocator returned wrong block size")

	// ErrInvalidStride indicates an element type that cannot be stored in a Vector.
	ErrInvalidStride = errors.New("array element stride invalid")
)

// check panics with an error wrapping sentinel when ok is false. The
// failing condition and the stack of the detecting call are attached, so
// %+v shows where the check failed.
func check(ok bool, sentinel error, cond string) {
	if !ok {
		panic(errors.WrapWithDepthf(1, sentinel, "assert(%s) failed", cond))
	}
}

// IsMisuse reports whether err is one of the precondition violations raised
// by this package.
func IsMisuse(err error) bool {
	return errors.IsAny(err,
		ErrUninitialized,
		ErrAlreadyAllocated,
		ErrOutOfRange,
		ErrAllocatorLeak,
		ErrAllocatorSize,
		ErrInvalidStride,
	)
}

// Catch runs fn and returns the misuse error it panicked with, if any.
// Panics that are not misuse errors are re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && IsMisuse(e) {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
