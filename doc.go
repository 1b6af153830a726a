// Package dynarray implements a growable, contiguous-storage container
// parameterized over an arbitrary element layout, with caller-supplied
// memory allocation.
//
// # Overview
//
// An Array owns a single contiguous buffer of capacity × element-size
// bytes and copies opaque, fixed-width elements in and out of it. All
// allocation goes through an injected Allocator capability, so the same
// container works over the Go heap, anonymous memory mappings, or any
// custom region source. This is useful for:
//
//   - Porting C-style vector code that manages raw element bytes
//   - Keeping many small fixed-stride records in one allocation
//   - Controlling exactly when and how buffer memory is obtained and freed
//
// # Basic Usage
//
//	a := dynarray.New(4, dynarray.DefaultCapacity, dynarray.StdAllocator)
//	defer a.Destroy()
//
//	v := int32(42)
//	a.Append(unsafe.Pointer(&v))
//
//	p := (*int32)(a.At(0))
//	fmt.Println(*p) // 42
//
// The typed layer avoids the unsafe plumbing for the common case:
//
//	a := dynarray.Of[int32](dynarray.StdAllocator)
//	defer a.Destroy()
//
//	dynarray.Append(a, int32(42))
//	fmt.Println(dynarray.Value[int32](a, 0)) // 42
//
// # Growth
//
// Append grows a full buffer by amortized doubling (new capacity =
// max(2×capacity, size+1)), so n appends perform O(log n) reallocations.
// Resize grows to exactly the requested size with no headroom. Shrink
// reallocates down to exactly the logical size. No operation shrinks the
// buffer implicitly.
//
// # Ownership
//
// The Array owns only its buffer. Elements are copied in byte-for-byte;
// the container never follows or frees anything an element might point
// to, and Destroy releases the buffer without touching element referents.
// Because the buffer is untyped memory, elements must not contain Go
// pointers - the garbage collector does not scan the buffer.
//
// # Iteration
//
// Iter returns a cursor over the logical elements as they were when the
// cursor was created. Next yields each element pointer in order and then
// returns nil forever. Any operation that can reallocate the buffer
// (Append-triggered growth, Resize to a larger size, Shrink, Destroy)
// invalidates existing iterators and element pointers.
//
// # Error Policy
//
// Every fault is a caller contract violation: zero element size or
// capacity at construction, out-of-bounds indices, use after Destroy, an
// allocator returning an undersized region. All of them panic. There are
// no error returns in this package.
//
// # Thread Safety
//
// None. The caller must not mutate an Array while iterating it, and must
// serialize all access externally if sharing across goroutines.
package dynarray
