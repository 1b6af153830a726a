package dynarray

import "unsafe"

// Typed layer over the byte-level core. These helpers recover
// compile-time type safety for the common case where every element of an
// Array is the same Go type. The element stride is unsafe.Sizeof(T), so
// T must be a fixed-size, trivially-copyable type and must not contain
// Go pointers (the buffer is untyped memory the garbage collector does
// not scan). Mixing helpers of a type whose size differs from the
// Array's element size panics.

// Of creates an Array whose element size is the size of T, with
// DefaultCapacity slots.
func Of[T any](alloc Allocator) *Array {
	return OfCap[T](DefaultCapacity, alloc)
}

// OfCap creates an Array whose element size is the size of T, with
// capacity slots.
func OfCap[T any](capacity int, alloc Allocator) *Array {
	var zero T
	return New(int(unsafe.Sizeof(zero)), capacity, alloc)
}

// Append copies v into the next free slot of a.
func Append[T any](a *Array, v T) {
	checkStride[T](a.elemSize)
	a.Append(unsafe.Pointer(&v))
}

// Set copies v over slot i. Panics unless 0 <= i < Len.
func Set[T any](a *Array, i int, v T) {
	checkStride[T](a.elemSize)
	a.Set(i, unsafe.Pointer(&v))
}

// At returns a typed pointer to slot i. Like (*Array).At, the bound is
// the capacity, and the pointer is invalidated by any later growth,
// Shrink or Destroy.
func At[T any](a *Array, i int) *T {
	checkStride[T](a.elemSize)
	return (*T)(a.At(i))
}

// Value returns a copy of the logical element at index i. Unlike At, the
// bound is the size: i must address a logically valid element.
func Value[T any](a *Array, i int) T {
	a.panicIfDestroyed()
	checkStride[T](a.elemSize)
	if i < 0 || i >= a.size {
		panic("dynarray: index out of range")
	}
	return *(*T)(unsafe.Pointer(&a.data[i*a.elemSize]))
}

// Sort reorders a's elements in place under a typed three-way
// comparator. Not stable.
func Sort[T any](a *Array, cmp func(x, y T) int) {
	checkStride[T](a.elemSize)
	a.Sort(func(x, y unsafe.Pointer) int {
		return cmp(*(*T)(x), *(*T)(y))
	})
}

// Next returns a typed pointer to the iterator's current element and
// advances it. The second result is false once the iterator is
// exhausted.
func Next[T any](it *Iterator) (*T, bool) {
	checkStride[T](it.elemSize)
	p := it.Next()
	if p == nil {
		return nil, false
	}
	return (*T)(p), true
}

func checkStride[T any](elemSize int) {
	var zero T
	if int(unsafe.Sizeof(zero)) != elemSize {
		panic("dynarray: element size mismatch")
	}
}
