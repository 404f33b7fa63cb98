package vector

import "iter"

// Iterator is a cursor over a vector's logical sequence. Position 0 is
// the first element; position Len() is past-the-end. Cursors are
// invalidated by any operation that reallocates or shifts the backing
// storage.
type Iterator[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns a cursor at the first element. For an empty vector it
// compares equal to End().
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v}
}

// End returns the past-the-end cursor.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, pos: v.size}
}

// Valid reports whether the cursor points at a dereferenceable element.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.pos >= 0 && it.pos < it.vec.size
}

// Value dereferences the cursor.
func (it Iterator[T]) Value() T {
	return it.vec.Get(it.pos)
}

// Ptr returns a pointer to the element for in-place mutation.
func (it Iterator[T]) Ptr() *T {
	return &it.vec.items.ptr()[it.pos]
}

// Pos returns the cursor's offset within the logical sequence.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next returns a cursor advanced by one position.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns a cursor moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns a cursor advanced by k positions (k may be negative).
func (it Iterator[T]) Add(k int) Iterator[T] {
	return Iterator[T]{vec: it.vec, pos: it.pos + k}
}

// Sub returns a cursor moved back by k positions.
func (it Iterator[T]) Sub(k int) Iterator[T] {
	return it.Add(-k)
}

// Equal reports whether two cursors address the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.pos == other.pos
}

// Distance returns the number of positions from it to other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.pos - it.pos
}

// Each walks the logical sequence in order and calls fn for each element.
// It stops at the first error, which is returned.
func (v *Vector[T]) Each(fn func(x T) error) error {
	data := v.items.ptr()
	for i := 0; i < v.size; i++ {
		if err := fn(data[i]); err != nil {
			return err
		}
	}
	return nil
}

// Values returns an iterator over the logical sequence for use with
// range-over-func.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		data := v.items.ptr()
		for i := 0; i < v.size; i++ {
			if !yield(data[i]) {
				return
			}
		}
	}
}
