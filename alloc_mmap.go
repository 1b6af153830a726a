//go:build unix

package dynarray

import "golang.org/x/sys/unix"

// MmapAllocator sources regions from anonymous memory mappings instead of
// the Go heap. Unlike StdAllocator, Free actually returns memory to the
// operating system. Regions handed to Realloc or Free must be exactly the
// slices previously returned by Alloc or Realloc.
type MmapAllocator struct{}

func (MmapAllocator) Alloc(size int) []byte {
	if size <= 0 {
		size = 1
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		panic("dynarray: mmap failed: " + err.Error())
	}
	return buf
}

func (m MmapAllocator) Realloc(buf []byte, oldSize, newSize int) []byte {
	next := m.Alloc(newSize)
	copy(next, buf[:min(oldSize, newSize)])
	m.Free(buf)
	return next
}

func (MmapAllocator) Free(buf []byte) {
	if err := unix.Munmap(buf); err != nil {
		panic("dynarray: munmap failed: " + err.Error())
	}
}
