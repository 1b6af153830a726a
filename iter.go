package dynarray

import "unsafe"

// Iterator is a borrowed cursor over an Array's logical elements. It
// holds no ownership: the window it walks is snapshotted at creation and
// points directly into the Array's buffer. Any operation that can
// reallocate that buffer (Append-triggered growth, Resize to a larger
// size, Shrink, Destroy) invalidates the Iterator.
type Iterator struct {
	rest     []byte
	elemSize int
}

// Iter returns an Iterator positioned at the first logical element. The
// end of the walk is fixed at creation time; elements appended later are
// not visited.
func (a *Array) Iter() Iterator {
	a.panicIfDestroyed()
	return Iterator{
		rest:     a.data[:a.size*a.elemSize],
		elemSize: a.elemSize,
	}
}

// Next returns a pointer to the current element and advances by one
// element stride. Once the cursor is exhausted Next returns nil, and
// keeps returning nil on every later call.
func (it *Iterator) Next() unsafe.Pointer {
	if len(it.rest) == 0 {
		return nil
	}
	p := unsafe.Pointer(&it.rest[0])
	it.rest = it.rest[it.elemSize:]
	return p
}
