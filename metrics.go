package dynarray

// BytesInUse returns the number of buffer bytes holding logical elements
// (size × element size).
func (a *Array) BytesInUse() int {
	a.panicIfDestroyed()
	return a.size * a.elemSize
}

// BytesReserved returns the total buffer size in bytes
// (capacity × element size).
func (a *Array) BytesReserved() int {
	a.panicIfDestroyed()
	return a.capacity * a.elemSize
}

// Utilization returns the ratio of logical elements to allocated slots
// (0.0 to 1.0).
func (a *Array) Utilization() float64 {
	a.panicIfDestroyed()
	return float64(a.size) / float64(a.capacity)
}

// Metrics returns a snapshot of the Array's accounting.
func (a *Array) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:           a.Len(),
		Cap:           a.Cap(),
		ElemSize:      a.ElemSize(),
		BytesInUse:    a.BytesInUse(),
		BytesReserved: a.BytesReserved(),
		Utilization:   a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an Array.
type ArrayMetrics struct {
	Len           int     // Logical element count
	Cap           int     // Allocated element slots
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Len × ElemSize
	BytesReserved int     // Cap × ElemSize
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
