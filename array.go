package dynarray

import "unsafe"

// DefaultCapacity is the initial capacity used by the typed convenience
// constructors (16 slots).
const DefaultCapacity = 16

// Array is a growable container of fixed-width elements stored in one
// contiguous buffer. Elements are opaque byte regions of elemSize bytes;
// the Array copies them in and out but never interprets them. Not
// goroutine-safe.
type Array struct {
	size     int
	capacity int
	elemSize int
	data     []byte
	alloc    Allocator
}

// New creates an Array of capacity slots of elemSize bytes each,
// allocating exactly capacity × elemSize bytes through alloc. Panics if
// elemSize or capacity is not positive, or if alloc is nil.
func New(elemSize, capacity int, alloc Allocator) *Array {
	if elemSize <= 0 {
		panic("dynarray: element size must be positive")
	}
	if capacity <= 0 {
		panic("dynarray: capacity must be positive")
	}
	if alloc == nil {
		panic("dynarray: nil allocator")
	}
	return &Array{
		capacity: capacity,
		elemSize: elemSize,
		data:     procure(alloc, capacity*elemSize),
		alloc:    alloc,
	}
}

// Clone returns a new Array with the same size, capacity, element size
// and allocator, holding a byte-for-byte copy of a's logical elements in
// a freshly allocated buffer. The clone is fully independent of a.
func (a *Array) Clone() *Array {
	a.panicIfDestroyed()
	buf := procure(a.alloc, a.capacity*a.elemSize)
	copy(buf, a.data[:a.size*a.elemSize])
	return &Array{
		size:     a.size,
		capacity: a.capacity,
		elemSize: a.elemSize,
		data:     buf,
		alloc:    a.alloc,
	}
}

// Resize sets the logical size to n. If n exceeds the current capacity
// the buffer grows to exactly n slots (no headroom). Otherwise only the
// size changes; the buffer is neither zeroed nor shrunk, so growing the
// size back over previously written slots exposes their old bytes.
func (a *Array) Resize(n int) {
	a.panicIfDestroyed()
	if n < 0 {
		panic("dynarray: negative size")
	}
	if n > a.capacity {
		a.grow(n)
	}
	a.size = n
}

// Append copies elemSize bytes from p into the next free slot and
// increments the size, doubling the capacity first if the buffer is
// full. The caller keeps ownership of the memory at p; the Array never
// aliases it after Append returns.
func (a *Array) Append(p unsafe.Pointer) {
	a.panicIfDestroyed()
	if p == nil {
		panic("dynarray: nil element pointer")
	}
	if a.size == a.capacity {
		a.grow(max(a.capacity*2, a.size+1))
	}
	copy(a.slot(a.size), unsafe.Slice((*byte)(p), a.elemSize))
	a.size++
}

// Set copies elemSize bytes from p over slot i. Panics unless 0 <= i <
// size.
func (a *Array) Set(i int, p unsafe.Pointer) {
	a.panicIfDestroyed()
	if p == nil {
		panic("dynarray: nil element pointer")
	}
	if i < 0 || i >= a.size {
		panic("dynarray: index out of range")
	}
	copy(a.slot(i), unsafe.Slice((*byte)(p), a.elemSize))
}

// At returns a pointer to slot i inside the buffer. The bound is the
// capacity, not the size: reading an allocated but logically unset slot
// is permitted and yields indeterminate bytes. The returned pointer is
// invalidated by any subsequent growth, Shrink or Destroy.
func (a *Array) At(i int) unsafe.Pointer {
	a.panicIfDestroyed()
	if i < 0 || i >= a.capacity {
		panic("dynarray: index out of range")
	}
	return unsafe.Pointer(&a.data[i*a.elemSize])
}

// Len returns the logical element count.
func (a *Array) Len() int {
	return a.size
}

// Cap returns the number of allocated element slots.
func (a *Array) Cap() int {
	return a.capacity
}

// ElemSize returns the fixed byte width of one element.
func (a *Array) ElemSize() int {
	return a.elemSize
}

// Shrink reallocates the buffer to exactly size slots. No-op when
// capacity already equals size. An empty Array keeps one slot, since the
// capacity invariant is capacity >= 1.
func (a *Array) Shrink() {
	a.panicIfDestroyed()
	target := max(a.size, 1)
	if target == a.capacity {
		return
	}
	a.data = reprocure(a.alloc, a.data, a.capacity*a.elemSize, target*a.elemSize)
	a.capacity = target
}

// Destroy releases the buffer through the allocator. Element referents
// are not inspected or released. The Array must not be used afterwards;
// any subsequent operation panics.
func (a *Array) Destroy() {
	a.panicIfDestroyed()
	a.alloc.Free(a.data)
	a.data = nil
	a.size = 0
	a.capacity = 0
}

// Combine appends every logical element of b, in order, to the end of a,
// growing a as needed. b is read-only and unaffected. Panics if the two
// arrays have different element sizes.
func (a *Array) Combine(b *Array) {
	a.panicIfDestroyed()
	b.panicIfDestroyed()
	if a.elemSize != b.elemSize {
		panic("dynarray: element size mismatch")
	}
	need := a.size + b.size
	if need > a.capacity {
		newCap := a.capacity
		for newCap < need {
			newCap = max(newCap*2, newCap+1)
		}
		a.grow(newCap)
	}
	copy(a.data[a.size*a.elemSize:need*a.elemSize], b.data[:b.size*b.elemSize])
	a.size = need
}

// slot returns the byte window of slot i.
func (a *Array) slot(i int) []byte {
	return a.data[i*a.elemSize : (i+1)*a.elemSize]
}

// grow reallocates the buffer to newCap slots.
func (a *Array) grow(newCap int) {
	a.data = reprocure(a.alloc, a.data, a.capacity*a.elemSize, newCap*a.elemSize)
	a.capacity = newCap
}

// panicIfDestroyed panics if the Array has been destroyed.
func (a *Array) panicIfDestroyed() {
	if a.data == nil {
		panic("dynarray: use after Destroy()")
	}
}

// procure allocates n bytes, treating an undersized region as fatal.
func procure(alloc Allocator, n int) []byte {
	buf := alloc.Alloc(n)
	if len(buf) < n {
		panic("dynarray: allocator returned undersized region")
	}
	return buf
}

// reprocure resizes a region, treating an undersized result as fatal.
func reprocure(alloc Allocator, buf []byte, oldSize, newSize int) []byte {
	next := alloc.Realloc(buf, oldSize, newSize)
	if len(next) < newSize {
		panic("dynarray: allocator returned undersized region")
	}
	return next
}
