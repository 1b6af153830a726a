package dynarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrafisz/dynarray"
)

func TestOf(t *testing.T) {
	a := dynarray.Of[int64](dynarray.StdAllocator)
	defer a.Destroy()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, dynarray.DefaultCapacity, a.Cap())
	assert.Equal(t, 8, a.ElemSize())
}

func TestOfCap(t *testing.T) {
	a := dynarray.OfCap[int16](4, dynarray.StdAllocator)
	defer a.Destroy()

	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 2, a.ElemSize())

	assert.Panics(t, func() { dynarray.OfCap[int16](0, dynarray.StdAllocator) })
}

func TestTypedAppendAtValue(t *testing.T) {
	a := dynarray.OfCap[int32](2, dynarray.StdAllocator)
	defer a.Destroy()

	for i := int32(0); i < 10; i++ {
		dynarray.Append(a, i*3)
	}

	require.Equal(t, 10, a.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, int32(i*3), dynarray.Value[int32](a, i))
		assert.Equal(t, int32(i*3), *dynarray.At[int32](a, i))
	}
}

func TestTypedSet(t *testing.T) {
	a := dynarray.Of[int32](dynarray.StdAllocator)
	defer a.Destroy()

	dynarray.Append(a, int32(1))
	dynarray.Set(a, 0, int32(2))
	assert.Equal(t, int32(2), dynarray.Value[int32](a, 0))

	assert.Panics(t, func() { dynarray.Set(a, 1, int32(3)) }, "Set bounds against size")
}

func TestTypedValueBounds(t *testing.T) {
	a := dynarray.OfCap[int32](8, dynarray.StdAllocator)
	defer a.Destroy()

	dynarray.Append(a, int32(1))

	// At reaches anywhere below capacity; Value stops at the size.
	assert.NotPanics(t, func() { dynarray.At[int32](a, 5) })
	assert.Panics(t, func() { dynarray.Value[int32](a, 5) })
}

func TestTypedStrideMismatch(t *testing.T) {
	a := dynarray.Of[int32](dynarray.StdAllocator)
	defer a.Destroy()

	dynarray.Append(a, int32(1))

	assert.Panics(t, func() { dynarray.Append(a, int64(2)) })
	assert.Panics(t, func() { dynarray.At[int64](a, 0) })
	assert.Panics(t, func() { dynarray.Value[byte](a, 0) })
	assert.Panics(t, func() {
		dynarray.Sort(a, func(x, y int64) int { return 0 })
	})
}

func TestTypedNext(t *testing.T) {
	a := dynarray.Of[int32](dynarray.StdAllocator)
	defer a.Destroy()

	for i := int32(0); i < 4; i++ {
		dynarray.Append(a, i)
	}

	it := a.Iter()
	for want := int32(0); want < 4; want++ {
		p, ok := dynarray.Next[int32](&it)
		require.True(t, ok)
		assert.Equal(t, want, *p)
	}

	for i := 0; i < 3; i++ {
		p, ok := dynarray.Next[int32](&it)
		assert.False(t, ok)
		assert.Nil(t, p)
	}
}

func TestTypedStructRoundTrip(t *testing.T) {
	type vec3 struct {
		X, Y, Z float32
	}

	a := dynarray.Of[vec3](dynarray.StdAllocator)
	defer a.Destroy()

	dynarray.Append(a, vec3{1, 2, 3})
	dynarray.Append(a, vec3{4, 5, 6})

	b := a.Clone()
	defer b.Destroy()

	dynarray.Set(b, 0, vec3{9, 9, 9})
	assert.Equal(t, vec3{1, 2, 3}, dynarray.Value[vec3](a, 0), "clone mutation leaked into source")
	assert.Equal(t, vec3{9, 9, 9}, dynarray.Value[vec3](b, 0))
}
