package dynarray

import (
	"sort"
	"unsafe"
)

// Sort reorders the logical elements in place according to cmp, a
// three-way comparator over two element pointers (negative, zero or
// positive). The sort is not stable.
func (a *Array) Sort(cmp func(x, y unsafe.Pointer) int) {
	a.panicIfDestroyed()
	if cmp == nil {
		panic("dynarray: nil comparator")
	}
	sort.Sort(&byteSorter{
		data:  a.data,
		n:     a.size,
		width: a.elemSize,
		cmp:   cmp,
		tmp:   make([]byte, a.elemSize),
	})
}

// byteSorter adapts the untyped element buffer to sort.Interface,
// swapping fixed-width byte blocks through a scratch element.
type byteSorter struct {
	data  []byte
	n     int
	width int
	cmp   func(x, y unsafe.Pointer) int
	tmp   []byte
}

func (s *byteSorter) Len() int { return s.n }

func (s *byteSorter) Less(i, j int) bool {
	return s.cmp(
		unsafe.Pointer(&s.data[i*s.width]),
		unsafe.Pointer(&s.data[j*s.width]),
	) < 0
}

func (s *byteSorter) Swap(i, j int) {
	ei := s.data[i*s.width : (i+1)*s.width]
	ej := s.data[j*s.width : (j+1)*s.width]
	copy(s.tmp, ei)
	copy(ei, ej)
	copy(ej, s.tmp)
}
