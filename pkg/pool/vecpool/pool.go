// Package vecpool provides a reuse pool for vectors. Pooled vectors are
// handed out empty with at least the requested capacity, so hot paths can
// skip the growth sequence entirely.
package vecpool

import (
	"github.com/huynhanx03/go-collections/pkg/datastructs/vector"
	"github.com/huynhanx03/go-collections/pkg/pool/internal/calibrated"
	"github.com/huynhanx03/go-collections/pkg/utils"
)

// Pool hands out vectors of E from capacity-bucketed storage.
type Pool[E any] struct {
	inner *calibrated.Pool[*vector.Vector[E]]
}

// New creates a vector pool.
func New[E any]() *Pool[E] {
	return &Pool[E]{
		inner: calibrated.New(
			// newFunc: empty vector with the bucket's capacity pre-reserved
			func(capacity int) *vector.Vector[E] {
				return vector.NewReserved[E](vector.Reserve(capacity))
			},
			// capFunc: bucket by storage capacity
			func(v *vector.Vector[E]) int {
				return v.Cap()
			},
			// resetFunc: drop the logical contents, keep the storage
			func(v *vector.Vector[E]) {
				v.Clear()
			},
		),
	}
}

// Get returns an empty vector with capacity of at least n elements.
// Requests are rounded up to the bucket grid so every pooled item
// satisfies the capacity it is handed out for.
func (p *Pool[E]) Get(n int) *vector.Vector[E] {
	if n <= 0 {
		n = calibrated.MinSize
	}
	return p.inner.Get(utils.CeilToPowerOfTwo(n))
}

// Put returns a vector to the pool. Vectors whose capacity is off the
// bucket grid are dropped: a smaller-than-bucket item must never be
// handed out for the bucket's capacity.
func (p *Pool[E]) Put(v *vector.Vector[E]) {
	if v == nil || v.Cap() < calibrated.MinSize {
		return
	}
	if !utils.IsPowerOfTwo(v.Cap()) {
		return
	}
	p.inner.Put(v)
}

// DefaultCap returns the calibrated default capacity.
func (p *Pool[E]) DefaultCap() uint64 {
	return p.inner.DefaultCap()
}

// MaxCap returns the calibrated max capacity (95th percentile).
func (p *Pool[E]) MaxCap() uint64 {
	return p.inner.MaxCap()
}

// Stats returns demand counts per bucket.
func (p *Pool[E]) Stats() [calibrated.Steps]uint64 {
	return p.inner.Stats()
}
