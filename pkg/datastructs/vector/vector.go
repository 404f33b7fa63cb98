// Package vector implements a generic resizable contiguous-sequence
// container with amortized constant-time append, random access and
// explicit capacity management.
//
// The logical sequence lives at offsets [0, Len()); storage between Len()
// and Cap() is allocated but holds unspecified residue. A Vector is NOT
// thread-safe.
package vector

// Vector is a growable contiguous sequence of T backed by a single
// exclusively-owned storage block.
type Vector[T any] struct {
	items arrayPtr[T]
	size  int
	// max is the hard limit for capacity growth (0 = unlimited).
	// Growth paths that would exceed it fail with ErrAllocationFailure.
	max int
}

// New creates an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized creates a vector of n zero-valued elements with
// Len() == Cap() == n. n must be non-negative.
func NewSized[T any](n int) *Vector[T] {
	return &Vector[T]{items: newArrayPtr[T](n), size: n}
}

// NewFilled creates a vector of n elements, each set to fill.
func NewFilled[T any](n int, fill T) *Vector[T] {
	v := NewSized[T](n)
	data := v.items.ptr()
	for i := range data {
		data[i] = fill
	}
	return v
}

// Reservation asks a constructor to pre-allocate capacity without
// creating logical elements.
type Reservation struct {
	Capacity int
}

// Reserve builds a Reservation for NewReserved.
func Reserve(capacity int) Reservation {
	return Reservation{Capacity: capacity}
}

// NewReserved creates an empty vector with Cap() == r.Capacity.
func NewReserved[T any](r Reservation) *Vector[T] {
	return &Vector[T]{items: newArrayPtr[T](r.Capacity)}
}

// Of creates a vector holding elems in order, with Len() == Cap().
func Of[T any](elems ...T) *Vector[T] {
	v := NewSized[T](len(elems))
	copy(v.items.ptr(), elems)
	return v
}

// WithMaxCapacity sets the hard limit for capacity growth.
func (v *Vector[T]) WithMaxCapacity(max int) *Vector[T] {
	v.max = max
	return v
}

// Len returns the number of elements in the logical sequence.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the current storage can hold.
func (v *Vector[T]) Cap() int {
	return v.items.capacity()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index without a range check against the
// logical size. The caller must guarantee index < Len(); offsets in
// [Len(), Cap()) read allocated residue.
func (v *Vector[T]) Get(index int) T {
	return v.items.ptr()[index]
}

// Set stores x at index without a range check against the logical size.
// The caller must guarantee index < Len().
func (v *Vector[T]) Set(index int, x T) {
	v.items.ptr()[index] = x
}

// At returns the element at index, or ErrOutOfRange when index is not
// within [0, Len()).
func (v *Vector[T]) At(index int) (T, error) {
	if index < 0 || index >= v.size {
		var zero T
		return zero, errIndex(index, v.size)
	}
	return v.items.ptr()[index], nil
}

// SetAt stores x at index, or returns ErrOutOfRange when index is not
// within [0, Len()).
func (v *Vector[T]) SetAt(index int, x T) error {
	if index < 0 || index >= v.size {
		return errIndex(index, v.size)
	}
	v.items.ptr()[index] = x
	return nil
}

// Slice returns the logical sequence as a view over the backing storage.
// The view is invalidated by any reallocation.
func (v *Vector[T]) Slice() []T {
	return v.items.ptr()[:v.size]
}

// grownCapacity applies the growth policy: at least need, at least double
// the current capacity, never less than one. A doubled capacity is
// clamped back to the limit as long as need itself still fits.
func (v *Vector[T]) grownCapacity(need int) int {
	next := v.Cap() * growthFactor
	if next < minCapacity {
		next = minCapacity
	}
	if next < need {
		next = need
	}
	if v.max > 0 && next > v.max && need <= v.max {
		next = v.max
	}
	return next
}

// reallocate moves the first keep elements into a fresh block of newCap
// elements and adopts it. The old block is discarded only after the new
// one is fully populated, so a failed allocation leaves the vector
// untouched.
func (v *Vector[T]) reallocate(newCap, keep int) error {
	items, err := allocArray[T](newCap, v.max)
	if err != nil {
		return err
	}
	copy(items.ptr(), v.items.ptr()[:keep])
	v.items.swap(&items)
	items.release()
	return nil
}

// Reserve grows the capacity to exactly newCapacity, moving the existing
// elements. It never shrinks: a request at or below the current capacity
// is a no-op. Len() is unchanged.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity <= v.Cap() {
		return nil
	}
	return v.reallocate(newCapacity, v.size)
}

// Resize sets the logical size to newSize. Shrinking truncates without
// reallocating; growing fills the new offsets with zero values,
// reallocating with the doubling policy when newSize exceeds Cap().
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		panic("vector: negative size")
	}
	switch {
	case newSize <= v.size:
		v.size = newSize
	case newSize <= v.Cap():
		// Slots past the old size may hold residue from an earlier shrink.
		clear(v.items.ptr()[v.size:newSize])
		v.size = newSize
	default:
		if err := v.reallocate(v.grownCapacity(newSize), v.size); err != nil {
			return err
		}
		v.size = newSize
	}
	return nil
}

// PushBack appends x. Amortized O(1): a full vector grows through the
// Resize path, which applies the doubling policy.
func (v *Vector[T]) PushBack(x T) error {
	index := v.size
	if v.size == v.Cap() {
		if err := v.Resize(v.size + 1); err != nil {
			return err
		}
	} else {
		v.size++
	}
	v.items.ptr()[index] = x
	return nil
}

// Insert places x at position pos, shifting later elements one slot
// right. pos must be within [0, Len()]; pos == Len() appends. Returns the
// offset of the inserted element. Prior views and cursors are invalidated
// whenever reallocation occurs.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if pos < 0 || pos > v.size {
		panic("vector: insert position out of range")
	}
	if v.size < v.Cap() {
		data := v.items.ptr()
		// copy has memmove semantics, so the overlapping backward shift
		// cannot overwrite elements before reading them.
		copy(data[pos+1:v.size+1], data[pos:v.size])
		data[pos] = x
		v.size++
		return pos, nil
	}

	// No headroom: build the replacement storage in full, then adopt it.
	items, err := allocArray[T](v.grownCapacity(v.size+1), v.max)
	if err != nil {
		return 0, err
	}
	data := items.ptr()
	copy(data[:pos], v.items.ptr()[:pos])
	data[pos] = x
	copy(data[pos+1:v.size+1], v.items.ptr()[pos:v.size])
	v.items.swap(&items)
	items.release()
	v.size++
	return pos, nil
}

// Erase removes the element at pos, shifting later elements one slot
// left. pos must be within [0, Len()). Returns the offset where the next
// element now resides. Capacity is unchanged.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic("vector: erase position out of range")
	}
	data := v.items.ptr()
	copy(data[pos:v.size-1], data[pos+1:v.size])
	v.size--
	return pos
}

// PopBack drops the last element. Popping an empty vector is a no-op.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Clear resets the size to zero. Capacity is retained.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Swap exchanges the full state with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.swap(&other.items)
	v.size, other.size = other.size, v.size
	v.max, other.max = other.max, v.max
}

// Clone returns a deep copy preserving both the logical sequence and the
// source's capacity headroom.
func (v *Vector[T]) Clone() *Vector[T] {
	c, _ := v.cloneWithLimit(0)
	return c
}

func (v *Vector[T]) cloneWithLimit(limit int) (*Vector[T], error) {
	items, err := allocArray[T](v.Cap(), limit)
	if err != nil {
		return nil, err
	}
	copy(items.ptr(), v.items.ptr()[:v.size])
	return &Vector[T]{items: items, size: v.size, max: limit}, nil
}

// CopyFrom replaces the contents with a copy of other, preserving
// other's capacity. Strong guarantee: the copy is built in full before
// any state is exchanged, so a failed allocation leaves the vector
// untouched. Self-assignment is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp, err := other.cloneWithLimit(v.max)
	if err != nil {
		return err
	}
	v.Swap(tmp)
	return nil
}

// MoveFrom adopts other's storage and contents, leaving other valid and
// empty (Len() == Cap() == 0). Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.items.swap(&other.items)
	other.items.release()
	v.size = other.size
	other.size = 0
}
