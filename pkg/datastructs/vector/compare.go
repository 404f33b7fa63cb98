package vector

import "cmp"

// Equal reports whether a and b hold the same logical sequence.
// Capacity never participates in comparisons.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// Compare lexicographically compares the logical sequences, returning
// -1 when a orders before b, 0 when they are equal and +1 otherwise.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	as, bs := a.Slice(), b.Slice()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := cmp.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
