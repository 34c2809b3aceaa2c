package dynarray

import (
	"math"
	"reflect"
	"unsafe"
)

// Vector is a typed view over an Array. It converts element indexes and
// counts to byte extents using unsafe.Sizeof(T) as the stride; all storage
// management happens in Array.
//
// T must have a non-zero size and must not contain Go pointers (pointers,
// strings, slices, maps, channels, funcs, interfaces): element bytes live in
// allocator-owned memory that the garbage collector does not scan.
//
// The zero value is a null vector; call Alloc before use.
type Vector[T any] struct {
	arr Array
}

// Alloc allocates room for capacity elements. The destructor, if not nil,
// receives every run of elements that leaves the vector.
func (v *Vector[T]) Alloc(capacity int, destructor func([]T), opts ...Option) {
	stride := strideOf[T]()
	check(stride > 0, ErrInvalidStride, "sizeof(T) > 0")
	check(!hasPointers(reflect.TypeOf((*T)(nil)).Elem()), ErrInvalidStride, "T is pointer-free")
	check(capacity >= 0 && capacity <= math.MaxInt/stride, ErrOutOfRange, "capacity * sizeof(T) <= MaxInt")

	var dtor Destructor
	if destructor != nil {
		dtor = func(b []byte) { destructor(bytesAs[T](b)) }
	}
	v.arr.Alloc(capacity*stride, dtor, opts...)
}

// Free finalizes remaining elements and resets the vector to null.
func (v *Vector[T]) Free() { v.arr.Free() }

// Array returns the untyped array backing v.
func (v *Vector[T]) Array() *Array { return &v.arr }

// Allocated reports whether the vector owns storage.
func (v *Vector[T]) Allocated() bool { return v.arr.Allocated() }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return elems[T](v.arr.Size()) }

// Cap returns the number of elements that fit without reallocating.
func (v *Vector[T]) Cap() int { return elems[T](v.arr.Capacity()) }

// Empty reports whether Len is 0.
func (v *Vector[T]) Empty() bool { return v.arr.Empty() }

// Reserve ensures room for capacity elements.
func (v *Vector[T]) Reserve(capacity int) { v.arr.Reserve(v.extent(capacity)) }

// Resize sets the number of elements. New elements are zero unless the
// vector was allocated WithoutZeroFill.
func (v *Vector[T]) Resize(n int) { v.arr.Resize(v.extent(n)) }

// Shrink trims capacity to Len.
func (v *Vector[T]) Shrink() { v.arr.ShrinkToFit() }

// Slice returns the elements as a slice aliasing the backing block. It is
// invalidated by any operation that may reallocate.
func (v *Vector[T]) Slice() []T { return bytesAs[T](v.arr.Bytes()) }

// At returns a pointer to element i.
func (v *Vector[T]) At(i int) *T {
	s := v.Slice()
	check(i >= 0 && i < len(s), ErrOutOfRange, "i < len")
	return &s[i]
}

// Get returns element i.
func (v *Vector[T]) Get(i int) T { return *v.At(i) }

// Set stores x at element i.
func (v *Vector[T]) Set(i int, x T) { *v.At(i) = x }

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() *T { return v.At(v.arr.FrontIndex()) }

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() *T { return v.At(v.arr.BackIndex(strideOf[T]())) }

// Append adds x at the end.
func (v *Vector[T]) Append(x T) {
	v.AppendN(1)[0] = x
}

// AppendN adds n elements at the end and returns them for the caller to
// fill. Their contents are unspecified.
func (v *Vector[T]) AppendN(n int) []T {
	off := v.arr.Append(v.extent(n))
	return v.Slice()[off/strideOf[T]():]
}

// AppendSlice copies xs to the end.
func (v *Vector[T]) AppendSlice(xs ...T) {
	copy(v.AppendN(len(xs)), xs)
}

// Insert places x at index i, shifting later elements up.
func (v *Vector[T]) Insert(i int, x T) {
	v.InsertN(i, 1)[0] = x
}

// InsertN opens n elements at index i and returns them for the caller to
// fill. Their contents are unspecified.
func (v *Vector[T]) InsertN(i, n int) []T {
	off := v.arr.Insert(v.extent(i), v.extent(n))
	return v.Slice()[off/strideOf[T]():][:n]
}

// Remove deletes element i, preserving order.
func (v *Vector[T]) Remove(i int) { v.RemoveN(i, 1) }

// RemoveN deletes n elements starting at i, preserving order.
func (v *Vector[T]) RemoveN(i, n int) {
	v.arr.Remove(v.extent(i), v.extent(n))
}

// RemoveUnordered deletes element i by moving the last element into its place.
func (v *Vector[T]) RemoveUnordered(i int) { v.RemoveUnorderedN(i, 1) }

// RemoveUnorderedN deletes n elements starting at i by moving the last n
// elements into the gap.
func (v *Vector[T]) RemoveUnorderedN(i, n int) {
	v.arr.RemoveUnordered(v.extent(i), v.extent(n))
}

// Clear finalizes every element and empties the vector.
func (v *Vector[T]) Clear() { v.arr.Clear() }

// Push is Append.
func (v *Vector[T]) Push(x T) { v.Append(x) }

// Pop removes the last element.
func (v *Vector[T]) Pop() { v.arr.Pop(strideOf[T]()) }

// Top is Back.
func (v *Vector[T]) Top() *T { return v.Back() }

// CompareVectors compares the raw bytes of a and b, see Compare.
func CompareVectors[T any](a, b *Vector[T]) int {
	return Compare(&a.arr, &b.arr)
}

// extent converts an element count to bytes, rejecting values that would
// overflow.
func (v *Vector[T]) extent(n int) int {
	stride := strideOf[T]()
	check(stride > 0, ErrInvalidStride, "sizeof(T) > 0")
	check(n >= 0 && n <= math.MaxInt/stride, ErrOutOfRange, "n * sizeof(T) <= MaxInt")
	return n * stride
}

// elems converts a byte extent to an element count.
func elems[T any](n int) int {
	if stride := strideOf[T](); stride > 0 {
		return n / stride
	}
	return 0
}

func strideOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesAs reinterprets b as a slice of T. len(b) must be a multiple of the
// stride.
func bytesAs[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/strideOf[T]())
}

// hasPointers reports whether values of t hold anything the garbage
// collector would need to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
