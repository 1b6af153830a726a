package dynarray

// Allocator is the capability every Array uses for buffer memory. It is
// stored by value inside each Array at construction and must remain valid
// for as long as any Array using it is alive.
//
// Alloc must return a region of at least size bytes. Realloc must return
// a region of at least newSize bytes preserving the first
// min(oldSize, newSize) bytes of buf; the old region must not be used
// afterwards. Free returns a region to the allocator. An undersized
// region from Alloc or Realloc is treated as fatal by the container.
type Allocator interface {
	Alloc(size int) []byte
	Realloc(buf []byte, oldSize, newSize int) []byte
	Free(buf []byte)
}

// StdAllocator is the default Allocator, backed by the Go heap. Free is a
// no-op; released regions are reclaimed by the garbage collector.
var StdAllocator Allocator = stdAllocator{}

type stdAllocator struct{}

func (stdAllocator) Alloc(size int) []byte {
	return make([]byte, size)
}

func (stdAllocator) Realloc(buf []byte, oldSize, newSize int) []byte {
	if newSize <= cap(buf) {
		return buf[:newSize]
	}
	next := make([]byte, newSize)
	copy(next, buf[:min(oldSize, newSize)])
	return next
}

func (stdAllocator) Free([]byte) {}
