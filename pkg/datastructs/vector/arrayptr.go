package vector

// arrayPtr exclusively owns a contiguous block of elements. It is the only
// place backing storage is created and it never leaves the package; the
// vector reaches the elements through ptr() and transfers ownership
// through swap().
type arrayPtr[T any] struct {
	data []T
}

// newArrayPtr obtains storage for exactly n elements, zero-valued.
// A zero n yields an empty handle whose ptr() view is nil.
func newArrayPtr[T any](n int) arrayPtr[T] {
	if n == 0 {
		return arrayPtr[T]{}
	}
	return arrayPtr[T]{data: make([]T, n)}
}

// allocArray is newArrayPtr guarded by an optional element limit
// (0 = unbounded). On failure no storage is obtained.
func allocArray[T any](n, limit int) (arrayPtr[T], error) {
	if limit > 0 && n > limit {
		return arrayPtr[T]{}, errAlloc(n, limit)
	}
	return newArrayPtr[T](n), nil
}

// capacity returns the number of elements the block holds.
func (p *arrayPtr[T]) capacity() int {
	return len(p.data)
}

// ptr returns the element block, nil when the capacity is zero.
func (p *arrayPtr[T]) ptr() []T {
	return p.data
}

// swap exchanges ownership with other.
func (p *arrayPtr[T]) swap(other *arrayPtr[T]) {
	p.data, other.data = other.data, p.data
}

// release drops the block.
func (p *arrayPtr[T]) release() {
	p.data = nil
}
