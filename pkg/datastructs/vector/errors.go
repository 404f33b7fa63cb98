package vector

import (
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned by checked access when the requested index is
// not within [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// ErrAllocationFailure is returned when a growth operation would exceed the
// vector's configured capacity limit. The vector is left exactly as it was
// before the failed call.
var ErrAllocationFailure = errors.New("vector: allocation failure")

func errIndex(index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, size)
}

func errAlloc(requested, limit int) error {
	return errors.Wrapf(ErrAllocationFailure, "requested %d elements, limit %d", requested, limit)
}
